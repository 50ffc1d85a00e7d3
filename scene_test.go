package prism

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
)

func TestLoadScene_SpawnsStockEntities(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()
	server := newTestAssetServer()

	LoadScene(cmd, server, NewNopLogger(), DefaultScenePreset())
	app.FlushCommands()

	if app.ecs.entityCount() != 5 {
		t.Fatalf("Expected 5 scene entities, got %d", app.ecs.entityCount())
	}

	grids := 0
	MakeQuery1[GridComponent](cmd).Map(func(eid EntityId, grid *GridComponent) bool {
		grids++
		if grid.Side != 5 || grid.Layout != core.LayoutCollapsed || grid.Shading != core.ShadingConstant {
			t.Errorf("Unexpected grid: %+v", grid)
		}
		return true
	})
	if grids != 1 {
		t.Errorf("Expected exactly one grid entity, got %d", grids)
	}

	MakeQuery1[BallComponent](cmd).Map(func(eid EntityId, ball *BallComponent) bool {
		if ball.Placement.Offset != (mgl32.Vec3{4, 0, 0}) || ball.Placement.Scale != 1 {
			t.Errorf("Unexpected ball placement: %+v", ball.Placement)
		}
		if asset, ok := server.Mesh(ball.Mesh); !ok || asset.vertices.Len() != 676 {
			t.Errorf("Ball mesh missing from the asset server")
		}
		return true
	})

	MakeQuery1[AxesComponent](cmd).Map(func(eid EntityId, axes *AxesComponent) bool {
		if axes.Placement.Scale != 50 {
			t.Errorf("Expected axes scale 50, got %v", axes.Placement.Scale)
		}
		if _, ok := server.Mesh(axes.Mesh); !ok {
			t.Errorf("Axes mesh missing from the asset server")
		}
		return true
	})

	MakeQuery1[DirectionalLightComponent](cmd).Map(func(eid EntityId, light *DirectionalLightComponent) bool {
		if light.Direction != (mgl32.Vec3{1, -1, 1}) {
			t.Errorf("Unexpected light direction: %v", light.Direction)
		}
		return true
	})

	MakeQuery2[CameraComponent, ViewerRigComponent](cmd).Map(func(eid EntityId, cam *CameraComponent, rig *ViewerRigComponent) bool {
		if cam.Position != (mgl32.Vec3{0, 0, 1}) || cam.Fov != 120 {
			t.Errorf("Unexpected camera: %+v", cam)
		}
		return true
	})

	MakeQuery1[ClearColorComponent](cmd).Map(func(eid EntityId, cc *ClearColorComponent) bool {
		if cc.Color != core.SkyColor {
			t.Errorf("Expected the sky clear color, got %v", cc.Color)
		}
		return true
	})
}

func TestLoadScene_BadVariantNamesFallBack(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()
	server := newTestAssetServer()

	preset := DefaultScenePreset()
	preset.Layout = "diagonal"
	preset.Shading = "disco"
	LoadScene(cmd, server, NewNopLogger(), preset)
	app.FlushCommands()

	MakeQuery1[GridComponent](cmd).Map(func(eid EntityId, grid *GridComponent) bool {
		if grid.Layout != core.LayoutCollapsed || grid.Shading != core.ShadingConstant {
			t.Errorf("Bad variant names should fall back to defaults, got %+v", grid)
		}
		return true
	})
}

func TestLoadScene_ZeroClearColorFallsBackToSky(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()
	server := newTestAssetServer()

	preset := DefaultScenePreset()
	preset.ClearColor = [4]float32{}
	LoadScene(cmd, server, NewNopLogger(), preset)
	app.FlushCommands()

	MakeQuery1[ClearColorComponent](cmd).Map(func(eid EntityId, cc *ClearColorComponent) bool {
		if cc.Color != core.SkyColor {
			t.Errorf("Zero clear color should fall back to the sky, got %v", cc.Color)
		}
		return true
	})
}

func TestSceneModule_SpawnsOnFirstFrame(t *testing.T) {
	app := NewAppBuilder().UseModule(
		AssetServerModule{},
		SceneModule{Preset: DefaultScenePreset()},
	).Build()

	app.runFrame()
	if app.ecs.entityCount() != 5 {
		t.Fatalf("Expected the scene after the first frame, got %d entities", app.ecs.entityCount())
	}

	// The spawn is a one-shot; further frames must not duplicate the scene.
	app.runFrame()
	if app.ecs.entityCount() != 5 {
		t.Errorf("Scene spawned again on a later frame, got %d entities", app.ecs.entityCount())
	}
}
