package prism

import (
	"testing"
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
)

const rigEps = 1e-4

func spawnRigCamera(app *App, cam CameraComponent) {
	cmd := app.Commands()
	cmd.AddEntity(&cam, &ViewerRigComponent{})
	app.FlushCommands()
}

func rigState(cmd *Commands) (CameraComponent, ViewerRigComponent) {
	var cam CameraComponent
	var rig ViewerRigComponent
	MakeQuery2[CameraComponent, ViewerRigComponent](cmd).Map(func(eid EntityId, c *CameraComponent, r *ViewerRigComponent) bool {
		cam, rig = *c, *r
		return false
	})
	return cam, rig
}

func TestViewerRig_MoveKeys(t *testing.T) {
	app := NewAppBuilder().Build()
	spawnRigCamera(app, CameraComponent{Position: mgl32.Vec3{0, 0, 1}, Fov: 120})
	cmd := app.Commands()

	input := &Input{}
	input.Pressed[KeyD] = true
	input.Pressed[KeyQ] = true
	input.Pressed[KeyW] = true
	tm := &Time{Dt: time.Second / 60}

	viewerRigSystem(input, tm, cmd)

	cam, _ := rigState(cmd)
	if math32.Abs(cam.Position[0]-0.01) > rigEps ||
		math32.Abs(cam.Position[1]-0.01) > rigEps ||
		math32.Abs(cam.Position[2]-0.99) > rigEps {
		t.Errorf("Unexpected position after move keys: %v", cam.Position)
	}
	// LookAt pans with the eye so the view direction is preserved.
	if math32.Abs(cam.LookAt[0]-0.01) > rigEps || math32.Abs(cam.LookAt[1]-0.01) > rigEps {
		t.Errorf("LookAt did not pan with the eye: %v", cam.LookAt)
	}
}

func TestViewerRig_OpposedKeysCancel(t *testing.T) {
	app := NewAppBuilder().Build()
	spawnRigCamera(app, CameraComponent{Position: mgl32.Vec3{0, 0, 1}, Fov: 120})
	cmd := app.Commands()

	input := &Input{}
	input.Pressed[KeyA] = true
	input.Pressed[KeyD] = true
	tm := &Time{Dt: time.Second / 60}

	viewerRigSystem(input, tm, cmd)

	cam, _ := rigState(cmd)
	if cam.Position != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Opposed keys should cancel, got %v", cam.Position)
	}
}

func TestViewerRig_YawKeys(t *testing.T) {
	app := NewAppBuilder().Build()
	spawnRigCamera(app, CameraComponent{Position: mgl32.Vec3{0, 0, 1}, Fov: 120})
	cmd := app.Commands()

	tm := &Time{Dt: time.Second / 60}

	right := &Input{}
	right.Pressed[KeyR] = true
	viewerRigSystem(right, tm, cmd)

	_, rig := rigState(cmd)
	if math32.Abs(rig.Yaw-0.1) > rigEps {
		t.Errorf("Expected yaw near 0.1 after R, got %v", rig.Yaw)
	}

	left := &Input{}
	left.Pressed[KeyL] = true
	viewerRigSystem(left, tm, cmd)

	_, rig = rigState(cmd)
	if math32.Abs(rig.Yaw) > rigEps {
		t.Errorf("Expected yaw back near 0 after L, got %v", rig.Yaw)
	}
}

func TestViewerRig_ZeroDtIsIdle(t *testing.T) {
	app := NewAppBuilder().Build()
	spawnRigCamera(app, CameraComponent{Position: mgl32.Vec3{0, 0, 1}, Fov: 120})
	cmd := app.Commands()

	input := &Input{}
	input.Pressed[KeyD] = true
	input.Pressed[KeyR] = true
	tm := &Time{}

	viewerRigSystem(input, tm, cmd)

	cam, rig := rigState(cmd)
	if cam.Position != (mgl32.Vec3{0, 0, 1}) || rig.Yaw != 0 {
		t.Errorf("Zero dt frame must not move the rig, got %v yaw %v", cam.Position, rig.Yaw)
	}
}

func TestViewerRig_FillsDefaults(t *testing.T) {
	app := NewAppBuilder().Build()
	spawnRigCamera(app, CameraComponent{})
	cmd := app.Commands()

	viewerRigSystem(&Input{}, &Time{Dt: time.Second / 60}, cmd)

	cam, rig := rigState(cmd)
	if cam.Fov != 120 || cam.Near != 0.1 || cam.Far != 100 {
		t.Errorf("Projection defaults missing: %+v", cam)
	}
	if cam.Up != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected default up vector, got %v", cam.Up)
	}
	if cam.Position != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Expected stock eye for a degenerate view, got %v", cam.Position)
	}
	if rig.MoveStep != 0.01 || rig.TurnStep != 0.1 {
		t.Errorf("Rig step defaults missing: %+v", rig)
	}
}

func TestGridToggle_Keys(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()
	cmd.AddEntity(&GridComponent{Side: 5})
	app.FlushCommands()

	input := &Input{}
	input.JustPressed[KeyG] = true
	input.JustPressed[KeyC] = true

	gridToggleSystem(input, cmd)

	MakeQuery1[GridComponent](cmd).Map(func(eid EntityId, grid *GridComponent) bool {
		if grid.Shading != core.ShadingGradient {
			t.Errorf("G should flip shading to gradient, got %v", grid.Shading)
		}
		if grid.Layout != core.LayoutRowMajor {
			t.Errorf("C should flip layout to rowmajor, got %v", grid.Layout)
		}
		return false
	})

	gridToggleSystem(input, cmd)

	MakeQuery1[GridComponent](cmd).Map(func(eid EntityId, grid *GridComponent) bool {
		if grid.Shading != core.ShadingConstant || grid.Layout != core.LayoutCollapsed {
			t.Errorf("Second toggle should restore the defaults, got %v/%v", grid.Layout, grid.Shading)
		}
		return false
	})
}

func TestViewerExit_Escape(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	input := &Input{}
	input.JustPressed[KeyEscape] = true

	viewerExitSystem(input, cmd)

	if !app.quitting {
		t.Errorf("Escape should request exit")
	}
}

func TestCameraStateFor_YawSpinsWorld(t *testing.T) {
	cam := &CameraComponent{Position: mgl32.Vec3{0, 0, 1}, Fov: 120}
	rig := &ViewerRigComponent{Yaw: 90}

	yawed := cameraStateFor(cam, rig, 1.0)
	straight := cameraStateFor(cam, nil, 1.0)

	// A quarter turn about +Y carries the world +X axis onto -Z.
	got := yawed.View.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := straight.View.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	if got.Sub(want).Len() > rigEps {
		t.Errorf("Yawed view mismatch: got %v, want %v", got, want)
	}
}

func TestCameraStateFor_HeadlessDefaults(t *testing.T) {
	cam := &CameraComponent{Position: mgl32.Vec3{0, 0, 1}, Fov: 120}

	state := cameraStateFor(cam, nil, 16.0/9.0)

	wantProj := core.BuildPerspective(120, 16.0/9.0, 0.1, 100)
	if !state.Perspective.ApproxEqualThreshold(wantProj, rigEps) {
		t.Errorf("Perspective mismatch for headless camera")
	}
	wantView := core.BuildView(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	if !state.View.ApproxEqualThreshold(wantView, rigEps) {
		t.Errorf("View mismatch for headless camera")
	}
}
