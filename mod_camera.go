package prism

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
)

// CameraComponent holds the view and projection parameters. Zero fields
// are replaced with stock values before use, so an empty component is a
// valid starting point.
type CameraComponent struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
	Up       mgl32.Vec3
	Fov      float32 // vertical, degrees
	Near     float32
	Far      float32
}

// ViewerRigComponent is the fixed-step keyboard rig:
//
//	A/D  strafe along X
//	Q/Z  raise and lower along Y
//	W/S  dolly along Z
//	R/L  yaw about +Y
//
// Steps are per frame at 60fps and scaled by dt to stay rate independent.
type ViewerRigComponent struct {
	MoveStep float32 // world units
	TurnStep float32 // degrees
	Yaw      float32 // accumulated, degrees
}

type ViewerRigModule struct{}

func (m ViewerRigModule) Install(app *App, cmd *Commands) {
	app.UseSystem(System(viewerRigSystem).InStage(Update))
	app.UseSystem(System(viewerExitSystem).InStage(Update))
	app.UseSystem(System(gridToggleSystem).InStage(Update))
}

func viewerRigSystem(input *Input, time *Time, cmd *Commands) {
	dtScale := float32(time.Dt.Seconds()) * 60
	if dtScale <= 0 {
		return
	}

	MakeQuery2[CameraComponent, ViewerRigComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, rig *ViewerRigComponent) bool {
		applyCameraDefaults(cam)
		if rig.MoveStep == 0 {
			rig.MoveStep = 0.01
		}
		if rig.TurnStep == 0 {
			rig.TurnStep = 0.1
		}

		var move mgl32.Vec3
		if input.Pressed[KeyA] {
			move[0] -= 1
		}
		if input.Pressed[KeyD] {
			move[0] += 1
		}
		if input.Pressed[KeyQ] {
			move[1] += 1
		}
		if input.Pressed[KeyZ] {
			move[1] -= 1
		}
		if input.Pressed[KeyW] {
			move[2] -= 1
		}
		if input.Pressed[KeyS] {
			move[2] += 1
		}

		if move.Len() > 0 {
			delta := move.Mul(rig.MoveStep * dtScale)
			cam.Position = cam.Position.Add(delta)
			cam.LookAt = cam.LookAt.Add(delta)
		}

		if input.Pressed[KeyR] {
			rig.Yaw += rig.TurnStep * dtScale
		}
		if input.Pressed[KeyL] {
			rig.Yaw -= rig.TurnStep * dtScale
		}

		return true
	})
}

func viewerExitSystem(input *Input, cmd *Commands) {
	if input.JustPressed[KeyEscape] {
		cmd.Exit()
	}
}

// gridToggleSystem flips the grid variants at runtime: G cycles the
// shading, C cycles the cell layout.
func gridToggleSystem(input *Input, cmd *Commands) {
	toggleShading := input.JustPressed[KeyG]
	toggleLayout := input.JustPressed[KeyC]
	if !toggleShading && !toggleLayout {
		return
	}

	MakeQuery1[GridComponent](cmd).Map(func(eid EntityId, grid *GridComponent) bool {
		if toggleShading {
			if grid.Shading == core.ShadingConstant {
				grid.Shading = core.ShadingGradient
			} else {
				grid.Shading = core.ShadingConstant
			}
		}
		if toggleLayout {
			if grid.Layout == core.LayoutCollapsed {
				grid.Layout = core.LayoutRowMajor
			} else {
				grid.Layout = core.LayoutCollapsed
			}
		}
		return true
	})
}

func applyCameraDefaults(cam *CameraComponent) {
	if cam.Fov == 0 {
		cam.Fov = 120
	}
	if cam.Near == 0 {
		cam.Near = 0.1
	}
	if cam.Far == 0 {
		cam.Far = 100
	}
	if cam.Up == (mgl32.Vec3{}) {
		cam.Up = mgl32.Vec3{0, 1, 0}
	}
	if cam.Position == cam.LookAt {
		// Degenerate view, fall back to the stock eye just in front of
		// the NDC cube.
		cam.Position = mgl32.Vec3{0, 0, 1}
	}
}

// cameraStateFor resolves the camera entity into concrete matrices. The
// rig's yaw spins the world about +Y underneath the camera rather than
// turning the camera itself. A nil rig means headless rendering.
func cameraStateFor(cam *CameraComponent, rig *ViewerRigComponent, aspect float32) core.CameraState {
	applyCameraDefaults(cam)

	view := core.BuildView(cam.Position, cam.LookAt, cam.Up)
	if rig != nil && rig.Yaw != 0 {
		view = view.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rig.Yaw)))
	}

	return core.CameraState{
		View:        view,
		Perspective: core.BuildPerspective(cam.Fov, aspect, cam.Near, cam.Far),
	}
}
