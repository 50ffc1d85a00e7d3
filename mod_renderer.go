package prism

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
	"github.com/prism3d/prism/render/gpu"
	"github.com/prism3d/prism/render/mesh"
)

// RendererModule draws the scene through wgpu. The instanced grid, the
// lit ball and the axis lines record into a single render pass sharing
// one depth buffer.
type RendererModule struct {
	ClearColor mgl32.Vec4
}

type renderState struct {
	ctx  *gpu.Context
	grid *gpu.GridPass
	ball *gpu.BallPass
	axes *gpu.LinePass

	cubeMesh AssetId
	ballMesh AssetId

	gridLayout  core.CellLayout
	gridShading core.GridShading

	clearColor   wgpu.Color
	surfaceReady bool
}

func (mod RendererModule) Install(app *App, cmd *Commands) {
	clear := mod.ClearColor
	if clear == (mgl32.Vec4{}) {
		clear = core.SkyColor
	}

	cmd.AddResources(&renderState{
		clearColor: wgpu.Color{
			R: float64(clear[0]),
			G: float64(clear[1]),
			B: float64(clear[2]),
			A: float64(clear[3]),
		},
	})
	app.UseSystem(System(prepareScenePasses).InStage(PreRender))
	app.UseSystem(System(renderSceneSystem).InStage(Render))
	app.Logger().Infof("Renderer selected: %s", RendererWGPU)
}

// prepareScenePasses keeps the GPU passes in sync with the scene: builds
// them on first use, rebuilds the grid pipeline when its variant toggles
// and uploads the per-frame uniforms.
func prepareScenePasses(cmd *Commands, win *WindowState, gpuState *GpuState, rs *renderState, assets *AssetServer, prof *Profiler) {
	prof.BeginScope("prepare")
	defer prof.EndScope("prepare")

	if rs.ctx == nil {
		rs.ctx = gpu.NewContext(gpuState.device, gpuState.queue, gpuState.surfaceConfig.Format)
	}

	width, height := win.windowGlfw.GetSize()
	rs.surfaceReady = gpuState.ensureSurfaceSize(width, height)
	if !rs.surfaceReady {
		return
	}
	if err := rs.ctx.EnsureDepth(gpuState.surfaceConfig.Width, gpuState.surfaceConfig.Height); err != nil {
		panic(err)
	}

	var cam core.CameraState
	haveCamera := false
	MakeQuery2[CameraComponent, ViewerRigComponent](cmd).Map(func(eid EntityId, c *CameraComponent, rig *ViewerRigComponent) bool {
		aspect := float32(gpuState.surfaceConfig.Width) / float32(gpuState.surfaceConfig.Height)
		cam = cameraStateFor(c, rig, aspect)
		haveCamera = true
		return false
	}, ViewerRigComponent{})
	if !haveCamera {
		return
	}

	light := mgl32.Vec3{1, -1, 1}
	MakeQuery1[DirectionalLightComponent](cmd).Map(func(eid EntityId, l *DirectionalLightComponent) bool {
		light = l.Direction
		return false
	})

	MakeQuery1[ClearColorComponent](cmd).Map(func(eid EntityId, cc *ClearColorComponent) bool {
		rs.clearColor = wgpu.Color{
			R: float64(cc.Color[0]),
			G: float64(cc.Color[1]),
			B: float64(cc.Color[2]),
			A: float64(cc.Color[3]),
		}
		return false
	})

	MakeQuery1[GridComponent](cmd).Map(func(eid EntityId, grid *GridComponent) bool {
		if rs.grid == nil || rs.gridLayout != grid.Layout || rs.gridShading != grid.Shading {
			rs.rebuildGridPass(assets, grid.Layout, grid.Shading)
		}
		rs.grid.Update(gpuState.queue, cam, grid.Side)
		prof.SetCount("grid_instances", int(grid.Side*grid.Side*grid.Side))
		return false
	})

	MakeQuery1[BallComponent](cmd).Map(func(eid EntityId, ball *BallComponent) bool {
		if rs.ball == nil || rs.ballMesh != ball.Mesh {
			verts, indices := meshGeometry[mesh.ShadedVertex](assets, ball.Mesh)
			pass, err := gpu.NewBallPass(rs.ctx, verts, indices)
			if err != nil {
				panic(err)
			}
			if rs.ball != nil {
				rs.ball.Release()
			}
			rs.ball = pass
			rs.ballMesh = ball.Mesh
		}
		rs.ball.Update(gpuState.queue, cam, light, ball.Placement.ModelMatrix())
		return false
	})

	MakeQuery1[AxesComponent](cmd).Map(func(eid EntityId, axes *AxesComponent) bool {
		if rs.axes == nil {
			verts, _ := meshGeometry[mesh.ColorVertex](assets, axes.Mesh)
			pass, err := gpu.NewLinePass(rs.ctx, verts)
			if err != nil {
				panic(err)
			}
			rs.axes = pass
		}
		rs.axes.Update(gpuState.queue, cam, axes.Placement.ModelMatrix())
		return false
	})
}

func (rs *renderState) rebuildGridPass(assets *AssetServer, layout core.CellLayout, shading core.GridShading) {
	if rs.cubeMesh == "" {
		rs.cubeMesh = assets.CreateCubeMesh()
	}
	verts, indices := meshGeometry[mesh.Vertex](assets, rs.cubeMesh)

	pass, err := gpu.NewGridPass(rs.ctx, layout, shading, verts, indices)
	if err != nil {
		panic(err)
	}
	if rs.grid != nil {
		rs.grid.Release()
	}
	rs.grid = pass
	rs.gridLayout = layout
	rs.gridShading = shading
}

// meshGeometry pulls a typed vertex slice back out of the asset server.
func meshGeometry[V any](assets *AssetServer, id AssetId) ([]V, []uint16) {
	asset, ok := assets.Mesh(id)
	if !ok {
		panic(fmt.Sprintf("mesh asset %s not found", id))
	}
	verts, ok := asset.vertices.Interface().([]V)
	if !ok {
		panic(fmt.Sprintf("mesh asset %q holds %s", asset.name, asset.vertices.ElementType()))
	}
	return verts, asset.indices
}

func renderSceneSystem(gpuState *GpuState, rs *renderState, prof *Profiler) {
	if rs.ctx == nil || !rs.surfaceReady {
		return
	}

	prof.BeginScope("render")
	defer prof.EndScope("render")

	nextTexture, err := gpuState.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()

	encoder, err := gpuState.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: rs.clearColor,
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            rs.ctx.DepthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	})
	defer renderPass.Release()

	if rs.grid != nil {
		rs.grid.Draw(renderPass)
	}
	if rs.ball != nil {
		rs.ball.Draw(renderPass)
	}
	if rs.axes != nil {
		rs.axes.Draw(renderPass)
	}

	if err := renderPass.End(); err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	gpuState.queue.Submit(cmdBuffer)
	gpuState.surface.Present()
}
