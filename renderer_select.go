package prism

import (
	"fmt"
	"reflect"
)

// RendererName identifies a concrete renderer module.
// Keep names aligned with ensureSingleRenderer tags.
type RendererName string

const (
	RendererWGPU    RendererName = "wgpu"
	RendererPreview RendererName = "preview"
)

// RendererTag records which renderer owns the frame. Installing a second,
// different renderer is a wiring mistake and panics early.
type RendererTag struct {
	Name string
}

func ensureSingleRenderer(app *App, name string) {
	t := reflect.TypeOf((*RendererTag)(nil)).Elem()
	if res, ok := app.resources[t]; ok {
		tag := res.(*RendererTag)
		if tag.Name != name {
			msg := fmt.Sprintf("Multiple renderers installed: %s and %s", tag.Name, name)
			app.Logger().Errorf("%s", msg)
			panic(msg)
		}
		return
	}
	app.addResources(&RendererTag{Name: name})
}

// UseWGPU selects the interactive renderer. It installs the shared window
// and GPU surface, input polling, the viewer rig and the scene renderer.
// Equivalent to UseModule with the full interactive module set.
func (builder *AppBuilder) UseWGPU(width, height int, title string) *AppBuilder {
	ensureSingleRenderer(builder.app, string(RendererWGPU))
	return builder.UseModule(
		WindowModule{Width: width, Height: height, Title: title},
		InputModule{},
		ViewerRigModule{},
		RendererModule{},
	)
}

// UsePreview selects the headless CPU renderer, which rasterizes a single
// frame to outputPath and exits. Scale upsamples the written image.
func (builder *AppBuilder) UsePreview(outputPath string, width, height, scale int) *AppBuilder {
	ensureSingleRenderer(builder.app, string(RendererPreview))
	return builder.UseModule(PreviewModule{
		OutputPath: outputPath,
		Width:      width,
		Height:     height,
		Scale:      scale,
	})
}
