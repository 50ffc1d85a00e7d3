package preview

import (
	"image"
	"image/png"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"

	"github.com/prism3d/prism/render/core"
	"github.com/prism3d/prism/render/mesh"
)

// Scene is everything one preview frame needs.
type Scene struct {
	Camera        core.CameraState
	Side          int32
	Layout        core.CellLayout
	Shading       core.GridShading
	Light         mgl32.Vec3
	Ball          core.Placement
	Axes          core.Placement
	BallRadius    float32
	BallPolyCount int
	Background    mgl32.Vec4
}

// DefaultScene mirrors the stock demo: a 5^3 grid, the ball carried off
// to the side, axes through the origin and the camera one unit back.
func DefaultScene() Scene {
	return Scene{
		Camera: core.CameraState{
			View:        core.BuildView(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}),
			Perspective: core.BuildPerspective(120, 16.0/9.0, 0.1, 100),
		},
		Side:          5,
		Layout:        core.LayoutCollapsed,
		Shading:       core.ShadingConstant,
		Light:         mgl32.Vec3{1, -1, 1},
		Ball:          core.BallPlacement(),
		Axes:          core.AxesPlacement(),
		BallRadius:    1,
		BallPolyCount: 25,
		Background:    core.SkyColor,
	}
}

// RenderSnapshot draws the scene into a fresh framebuffer and returns
// the image. Identical scenes produce identical images.
func RenderSnapshot(e *Evaluator, scene Scene, width, height int) *image.RGBA {
	fb := NewFramebuffer(width, height)
	fb.Clear(scene.Background)

	drawGrid(e, fb, scene)
	drawBall(e, fb, scene)
	drawAxes(fb, scene)

	return fb.Color
}

func drawGrid(e *Evaluator, fb *Framebuffer, scene Scene) {
	if scene.Side <= 0 {
		return
	}
	instances := e.GridInstances(scene.Side, scene.Layout)
	colors := e.GridColors(instances, scene.Side, scene.Shading)
	cubeVerts, cubeIndices := mesh.UnitCube()

	var clip [8]mgl32.Vec4
	for n, inst := range instances {
		for i, v := range cubeVerts {
			world := inst.NDC.Add(mgl32.Vec3(v.Pos).Mul(inst.Scale))
			clip[i] = core.ToClipSpace(scene.Camera.Perspective, scene.Camera.View, world.Vec4(1))
		}
		c := colors[n]
		for i := 0; i+2 < len(cubeIndices); i += 3 {
			fb.FillTriangle(
				[3]mgl32.Vec4{clip[cubeIndices[i]], clip[cubeIndices[i+1]], clip[cubeIndices[i+2]]},
				[3]mgl32.Vec4{c, c, c},
			)
		}
	}
}

func drawBall(e *Evaluator, fb *Framebuffer, scene Scene) {
	if scene.BallPolyCount < 2 {
		return
	}
	verts, indices := mesh.Sphere(scene.BallRadius, scene.BallPolyCount)
	colors := e.ShadeBall(verts, scene.Light)

	model := scene.Ball.ModelMatrix()
	points := make([]mgl32.Vec4, len(verts))
	for i, v := range verts {
		points[i] = model.Mul4x1(mgl32.Vec3(v.Pos).Vec4(1))
	}
	clip := e.Transform(scene.Camera, points)

	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		fb.FillTriangle(
			[3]mgl32.Vec4{clip[a], clip[b], clip[c]},
			[3]mgl32.Vec4{colors[a], colors[b], colors[c]},
		)
	}
}

func drawAxes(fb *Framebuffer, scene Scene) {
	verts := mesh.Axes(1.0)
	model := scene.Axes.ModelMatrix()
	for i := 0; i+1 < len(verts); i += 2 {
		a, b := verts[i], verts[i+1]
		ca := core.ToClipSpace(scene.Camera.Perspective, scene.Camera.View, model.Mul4x1(mgl32.Vec3(a.Pos).Vec4(1)))
		cb := core.ToClipSpace(scene.Camera.Perspective, scene.Camera.View, model.Mul4x1(mgl32.Vec3(b.Pos).Vec4(1)))
		fb.DrawLine(ca, cb, core.LineColor(mgl32.Vec4(a.Color)), core.LineColor(mgl32.Vec4(b.Color)))
	}
}

// WritePNG encodes img to path, upscaling by the integer factor first
// when scale > 1.
func WritePNG(img image.Image, path string, scale int) error {
	out := img
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		out = dst
	}

	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fd.Close()
	return png.Encode(fd, out)
}
