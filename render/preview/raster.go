package preview

import (
	"image"
	"image/color"
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Framebuffer is a color image with a float depth buffer, addressed in
// pixel coordinates with the origin at the top left.
type Framebuffer struct {
	Color  *image.RGBA
	depth  []float32
	width  int
	height int
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Color:  image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:  make([]float32, width*height),
		width:  width,
		height: height,
	}
}

// Clear fills the color buffer and resets depth to the far plane.
func (f *Framebuffer) Clear(c mgl32.Vec4) {
	rgba := toRGBA(c)
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			f.Color.SetRGBA(x, y, rgba)
		}
	}
	for i := range f.depth {
		f.depth[i] = math.MaxFloat32
	}
}

type screenVertex struct {
	x, y, z float32
	color   mgl32.Vec4
}

// project runs the perspective divide and viewport map. ok is false for
// vertices on or behind the camera plane.
func (f *Framebuffer) project(clip mgl32.Vec4, c mgl32.Vec4) (screenVertex, bool) {
	if clip.W() <= 0 {
		return screenVertex{}, false
	}
	inv := 1.0 / clip.W()
	return screenVertex{
		x:     (clip.X()*inv*0.5 + 0.5) * float32(f.width),
		y:     (1 - (clip.Y()*inv*0.5 + 0.5)) * float32(f.height),
		z:     clip.Z() * inv,
		color: c,
	}, true
}

func edge(a, b screenVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// FillTriangle rasterizes one depth-tested triangle with vertex colors
// interpolated in screen space. Triangles touching the camera plane are
// dropped rather than clipped.
func (f *Framebuffer) FillTriangle(clip [3]mgl32.Vec4, colors [3]mgl32.Vec4) {
	var sv [3]screenVertex
	for i := 0; i < 3; i++ {
		v, ok := f.project(clip[i], colors[i])
		if !ok {
			return
		}
		sv[i] = v
	}

	area := edge(sv[0], sv[1], sv[2].x, sv[2].y)
	if area == 0 {
		return
	}

	minX := clampInt(int(math32.Floor(min3(sv[0].x, sv[1].x, sv[2].x))), 0, f.width-1)
	maxX := clampInt(int(math32.Ceil(max3(sv[0].x, sv[1].x, sv[2].x))), 0, f.width-1)
	minY := clampInt(int(math32.Floor(min3(sv[0].y, sv[1].y, sv[2].y))), 0, f.height-1)
	maxY := clampInt(int(math32.Ceil(max3(sv[0].y, sv[1].y, sv[2].y))), 0, f.height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float32(x)+0.5, float32(y)+0.5
			w0 := edge(sv[1], sv[2], px, py)
			w1 := edge(sv[2], sv[0], px, py)
			w2 := edge(sv[0], sv[1], px, py)
			if area > 0 {
				if w0 < 0 || w1 < 0 || w2 < 0 {
					continue
				}
			} else {
				if w0 > 0 || w1 > 0 || w2 > 0 {
					continue
				}
			}

			b0, b1, b2 := w0/area, w1/area, w2/area
			z := b0*sv[0].z + b1*sv[1].z + b2*sv[2].z
			idx := y*f.width + x
			if z >= f.depth[idx] {
				continue
			}
			f.depth[idx] = z

			c := sv[0].color.Mul(b0).Add(sv[1].color.Mul(b1)).Add(sv[2].color.Mul(b2))
			f.Color.SetRGBA(x, y, toRGBA(c))
		}
	}
}

// DrawLine steps a depth-tested line between two clip-space points.
func (f *Framebuffer) DrawLine(a, b mgl32.Vec4, ca, cb mgl32.Vec4) {
	va, okA := f.project(a, ca)
	vb, okB := f.project(b, cb)
	if !okA || !okB {
		return
	}

	dx, dy := vb.x-va.x, vb.y-va.y
	steps := int(math32.Max(math32.Abs(dx), math32.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		x, y := int(va.x+dx*t), int(va.y+dy*t)
		if x < 0 || x >= f.width || y < 0 || y >= f.height {
			continue
		}
		z := va.z + (vb.z-va.z)*t
		idx := y*f.width + x
		if z >= f.depth[idx] {
			continue
		}
		f.depth[idx] = z
		c := va.color.Mul(1 - t).Add(vb.color.Mul(t))
		f.Color.SetRGBA(x, y, toRGBA(c))
	}
}

// toRGBA clamps to [0,1] and quantizes, the same way presenting an
// unclamped shader output to an 8 bit swapchain does.
func toRGBA(c mgl32.Vec4) color.RGBA {
	return color.RGBA{channel(c.X()), channel(c.Y()), channel(c.Z()), channel(c.W())}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func min3(a, b, c float32) float32 {
	return math32.Min(a, math32.Min(b, c))
}

func max3(a, b, c float32) float32 {
	return math32.Max(a, math32.Max(b, c))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
