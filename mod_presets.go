package prism

import (
	"encoding/json"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
)

// SaveScenePreset writes the preset as indented JSON.
func SaveScenePreset(filename string, preset ScenePreset) error {
	bytes, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}

// LoadScenePreset reads a preset file. Fields absent from the file keep
// their default values, so partial presets are valid.
func LoadScenePreset(filename string) (ScenePreset, error) {
	preset := DefaultScenePreset()

	bytes, err := os.ReadFile(filename)
	if err != nil {
		return preset, err
	}
	if err := json.Unmarshal(bytes, &preset); err != nil {
		return preset, err
	}
	return preset, nil
}

// snapshotScenePreset collects the live scene back into a preset.
func snapshotScenePreset(cmd *Commands) ScenePreset {
	preset := DefaultScenePreset()

	MakeQuery1[GridComponent](cmd).Map(func(eid EntityId, grid *GridComponent) bool {
		preset.Side = grid.Side
		preset.Layout = grid.Layout.String()
		preset.Shading = grid.Shading.String()
		return false
	})
	MakeQuery1[BallComponent](cmd).Map(func(eid EntityId, ball *BallComponent) bool {
		preset.BallOffset = [3]float32(ball.Placement.Offset)
		preset.BallRadius = ball.Radius
		preset.BallPolyCount = ball.PolyCount
		return false
	})
	MakeQuery1[AxesComponent](cmd).Map(func(eid EntityId, axes *AxesComponent) bool {
		preset.AxesScale = axes.Placement.Scale
		return false
	})
	MakeQuery1[DirectionalLightComponent](cmd).Map(func(eid EntityId, light *DirectionalLightComponent) bool {
		preset.Light = [3]float32(light.Direction)
		return false
	})
	MakeQuery1[CameraComponent](cmd).Map(func(eid EntityId, camera *CameraComponent) bool {
		preset.CameraPos = [3]float32(camera.Position)
		if camera.Fov != 0 {
			preset.CameraFov = camera.Fov
		}
		return false
	})
	MakeQuery1[ClearColorComponent](cmd).Map(func(eid EntityId, cc *ClearColorComponent) bool {
		preset.ClearColor = [4]float32(cc.Color)
		return false
	})

	return preset
}

// applyScenePreset pushes a loaded preset onto the live scene entities.
// The ball mesh is regenerated only when its shape parameters changed;
// the renderer picks up the new asset id on the next frame.
func applyScenePreset(cmd *Commands, assets *AssetServer, log Logger, preset ScenePreset) {
	layout, err := core.ParseCellLayout(preset.Layout)
	if err != nil {
		log.Warnf("Scene preset: %v, using %q", err, layout)
	}
	shading, err := core.ParseGridShading(preset.Shading)
	if err != nil {
		log.Warnf("Scene preset: %v, using %q", err, shading)
	}
	clear := mgl32.Vec4(preset.ClearColor)
	if clear == (mgl32.Vec4{}) {
		clear = core.SkyColor
	}

	MakeQuery1[GridComponent](cmd).Map(func(eid EntityId, grid *GridComponent) bool {
		grid.Side = preset.Side
		grid.Layout = layout
		grid.Shading = shading
		return false
	})
	MakeQuery1[BallComponent](cmd).Map(func(eid EntityId, ball *BallComponent) bool {
		if ball.Radius != preset.BallRadius || ball.PolyCount != preset.BallPolyCount {
			ball.Mesh = assets.CreateBallMesh(preset.BallRadius, preset.BallPolyCount)
			ball.Radius = preset.BallRadius
			ball.PolyCount = preset.BallPolyCount
		}
		ball.Placement.Offset = mgl32.Vec3(preset.BallOffset)
		return false
	})
	MakeQuery1[AxesComponent](cmd).Map(func(eid EntityId, axes *AxesComponent) bool {
		axes.Placement.Scale = preset.AxesScale
		return false
	})
	MakeQuery1[DirectionalLightComponent](cmd).Map(func(eid EntityId, light *DirectionalLightComponent) bool {
		light.Direction = mgl32.Vec3(preset.Light)
		return false
	})
	MakeQuery2[CameraComponent, ViewerRigComponent](cmd).Map(func(eid EntityId, camera *CameraComponent, rig *ViewerRigComponent) bool {
		camera.Position = mgl32.Vec3(preset.CameraPos)
		camera.LookAt = mgl32.Vec3{}
		camera.Fov = preset.CameraFov
		if rig != nil {
			rig.Yaw = 0
		}
		return false
	}, ViewerRigComponent{})
	MakeQuery1[ClearColorComponent](cmd).Map(func(eid EntityId, cc *ClearColorComponent) bool {
		cc.Color = clear
		return false
	})
}

// PresetsModule binds runtime preset hotkeys: F5 writes the current scene
// to Path, F9 reads it back in.
type PresetsModule struct {
	Path string
}

func (mod PresetsModule) Install(app *App, cmd *Commands) {
	path := mod.Path
	if path == "" {
		path = "scene_preset.json"
	}

	hotkeys := func(cmd *Commands, input *Input, assets *AssetServer) {
		if input.JustPressed[KeyF5] {
			if err := SaveScenePreset(path, snapshotScenePreset(cmd)); err != nil {
				app.Logger().Errorf("Preset save failed: %v", err)
			} else {
				app.Logger().Infof("Preset saved to %s", path)
			}
		}
		if input.JustPressed[KeyF9] {
			preset, err := LoadScenePreset(path)
			if err != nil {
				app.Logger().Errorf("Preset load failed: %v", err)
				return
			}
			applyScenePreset(cmd, assets, app.Logger(), preset)
			app.Logger().Infof("Preset loaded from %s", path)
		}
	}
	app.UseSystem(System(hotkeys).InStage(Update))
}
