package prism

import (
	"time"

	"github.com/prism3d/prism/render/preview"
)

// PreviewModule renders a single frame on the CPU and writes it to a
// PNG, then exits. It needs no window and no GPU, which makes it usable
// on headless machines.
type PreviewModule struct {
	OutputPath string
	Width      int
	Height     int
	Scale      int
}

func (mod PreviewModule) Install(app *App, cmd *Commands) {
	out := mod.OutputPath
	if out == "" {
		out = "snapshot.png"
	}
	width, height, scale := mod.Width, mod.Height, mod.Scale
	if width <= 0 {
		width = 960
	}
	if height <= 0 {
		height = 540
	}
	if scale <= 0 {
		scale = 1
	}
	app.Logger().Infof("Renderer selected: %s", RendererPreview)

	render := func(cmd *Commands) {
		log := app.Logger()
		start := time.Now()

		scene := snapshotScene(cmd, float32(width)/float32(height))

		e := preview.NewEvaluator()
		defer e.Close()

		img := preview.RenderSnapshot(e, scene, width, height)
		if err := preview.WritePNG(img, out, scale); err != nil {
			log.Errorf("Preview write failed: %v", err)
		} else {
			log.Infof("Preview written to %s (%dx%d, scale %d) in %s",
				out, width, height, scale, time.Since(start).Round(time.Millisecond))
		}

		cmd.Exit()
	}
	app.UseSystem(System(render).InStage(Render).RunOnce())
}

// snapshotScene captures the spawned scene entities into a flat preview
// description. Entities missing from the world leave the stock values in
// place.
func snapshotScene(cmd *Commands, aspect float32) preview.Scene {
	scene := preview.DefaultScene()

	MakeQuery1[GridComponent](cmd).Map(func(eid EntityId, grid *GridComponent) bool {
		scene.Side = grid.Side
		scene.Layout = grid.Layout
		scene.Shading = grid.Shading
		return false
	})

	MakeQuery1[BallComponent](cmd).Map(func(eid EntityId, ball *BallComponent) bool {
		scene.Ball = ball.Placement
		scene.BallRadius = ball.Radius
		scene.BallPolyCount = ball.PolyCount
		return false
	})

	MakeQuery1[AxesComponent](cmd).Map(func(eid EntityId, axes *AxesComponent) bool {
		scene.Axes = axes.Placement
		return false
	})

	MakeQuery1[DirectionalLightComponent](cmd).Map(func(eid EntityId, light *DirectionalLightComponent) bool {
		scene.Light = light.Direction
		return false
	})

	MakeQuery1[ClearColorComponent](cmd).Map(func(eid EntityId, cc *ClearColorComponent) bool {
		scene.Background = cc.Color
		return false
	})

	MakeQuery2[CameraComponent, ViewerRigComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, rig *ViewerRigComponent) bool {
		scene.Camera = cameraStateFor(cam, rig, aspect)
		return false
	}, ViewerRigComponent{})

	return scene
}
