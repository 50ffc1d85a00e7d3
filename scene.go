package prism

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
)

// GridComponent describes the instanced cube lattice. One entity carries
// it; the renderer draws Side³ instances from it.
type GridComponent struct {
	Side    int32
	Layout  core.CellLayout
	Shading core.GridShading
}

// BallComponent is the lit sphere next to the grid.
type BallComponent struct {
	Mesh      AssetId
	Radius    float32
	PolyCount int
	Placement core.Placement
}

// AxesComponent is the RGB axis line set.
type AxesComponent struct {
	Mesh      AssetId
	Placement core.Placement
}

// DirectionalLightComponent is the single scene light. Only the direction
// matters; shading normalizes it before use.
type DirectionalLightComponent struct {
	Direction mgl32.Vec3
}

// ClearColorComponent overrides the sky background. Both backends fall
// back to core.SkyColor when no entity carries it.
type ClearColorComponent struct {
	Color mgl32.Vec4
}

// ScenePreset defines the initial state of the demo scene. Field names
// double as the on-disk preset format, see SaveScenePreset.
type ScenePreset struct {
	Side          int32      `json:"side"`
	Layout        string     `json:"layout"`
	Shading       string     `json:"shading"`
	BallOffset    [3]float32 `json:"ball_offset"`
	BallRadius    float32    `json:"ball_radius"`
	BallPolyCount int        `json:"ball_poly_count"`
	AxesScale     float32    `json:"axes_scale"`
	Light         [3]float32 `json:"light"`
	CameraPos     [3]float32 `json:"camera_pos"`
	CameraFov     float32    `json:"camera_fov"`
	ClearColor    [4]float32 `json:"clear_color"`
}

func DefaultScenePreset() ScenePreset {
	return ScenePreset{
		Side:          5,
		Layout:        core.LayoutCollapsed.String(),
		Shading:       core.ShadingConstant.String(),
		BallOffset:    [3]float32{4, 0, 0},
		BallRadius:    1,
		BallPolyCount: 25,
		AxesScale:     50,
		Light:         [3]float32{1, -1, 1},
		CameraPos:     [3]float32{0, 0, 1},
		CameraFov:     120,
		ClearColor:    [4]float32(core.SkyColor),
	}
}

// SceneModule spawns the preset scene on the first frame.
type SceneModule struct {
	Preset ScenePreset
}

func (mod SceneModule) Install(app *App, cmd *Commands) {
	preset := mod.Preset
	spawn := func(cmd *Commands, assets *AssetServer) {
		LoadScene(cmd, assets, app.Logger(), preset)
	}
	app.UseSystem(System(spawn).InStage(Prelude).RunOnce())
}

// LoadScene spawns the grid, ball, axes, light and camera entities
// described by the preset. Unknown layout or shading names fall back to
// the defaults with a warning rather than failing the whole scene.
func LoadScene(cmd *Commands, assets *AssetServer, log Logger, preset ScenePreset) {
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

	cmd.AddEntity(&GridComponent{
		Side:    preset.Side,
		Layout:  layout,
		Shading: shading,
	})

	ballMesh := assets.CreateBallMesh(preset.BallRadius, preset.BallPolyCount)
	cmd.AddEntity(&BallComponent{
		Mesh:      ballMesh,
		Radius:    preset.BallRadius,
		PolyCount: preset.BallPolyCount,
		Placement: core.Placement{
			Offset: mgl32.Vec3{preset.BallOffset[0], preset.BallOffset[1], preset.BallOffset[2]},
			Scale:  1,
		},
	})

	axesMesh := assets.CreateAxesMesh(1.0)
	cmd.AddEntity(&AxesComponent{
		Mesh:      axesMesh,
		Placement: core.Placement{Scale: preset.AxesScale},
	})

	cmd.AddEntity(&DirectionalLightComponent{
		Direction: mgl32.Vec3{preset.Light[0], preset.Light[1], preset.Light[2]},
	})

	cmd.AddEntity(
		&CameraComponent{
			Position: mgl32.Vec3{preset.CameraPos[0], preset.CameraPos[1], preset.CameraPos[2]},
			Fov:      preset.CameraFov,
		},
		&ViewerRigComponent{},
		&ClearColorComponent{Color: clear},
	)

	log.Infof("Scene spawned: side=%d layout=%s shading=%s", preset.Side, layout, shading)
}
