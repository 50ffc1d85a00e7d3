package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GridShading selects the fragment color source for grid cubes.
type GridShading uint8

const (
	// ShadingConstant paints every cube opaque magenta. The grid
	// shipped drawing this constant and it remains the default.
	ShadingConstant GridShading = iota

	// ShadingGradient colors each cube from its cell coordinate
	// normalized by the side length, remapped by c*0.6 + 0.2 per
	// channel.
	ShadingGradient
)

func (s GridShading) String() string {
	switch s {
	case ShadingConstant:
		return "constant"
	case ShadingGradient:
		return "gradient"
	}
	return fmt.Sprintf("GridShading(%d)", uint8(s))
}

// ParseGridShading resolves a shading name from config or preset files.
func ParseGridShading(s string) (GridShading, error) {
	switch s {
	case "", "constant":
		return ShadingConstant, nil
	case "gradient":
		return ShadingGradient, nil
	}
	return ShadingConstant, fmt.Errorf("unknown grid shading %q", s)
}

// GridMagenta is the constant grid cube color.
var GridMagenta = mgl32.Vec4{1.0, 0.0, 1.0, 1.0}

// SkyColor is the clear color behind the scene.
var SkyColor = mgl32.Vec4{0.54, 0.82, 1.0, 1.0}

// BallBaseColor is the unlit ball surface color.
var BallBaseColor = mgl32.Vec3{1.0, 0.85, 0.82}

// GridColor evaluates the fragment color for a grid cell.
func GridColor(cell [3]int32, side int32, shading GridShading) mgl32.Vec4 {
	if shading == ShadingGradient {
		inv := 1.0 / float32(side)
		return mgl32.Vec4{
			float32(cell[0])*inv*0.6 + 0.2,
			float32(cell[1])*inv*0.6 + 0.2,
			float32(cell[2])*inv*0.6 + 0.2,
			1.0,
		}
	}
	return GridMagenta
}

// BallColor evaluates a single Lambert term against the given surface
// normal. The light direction is normalized here; the normal is used
// as supplied. The dot product is not clamped, so surfaces facing away
// from the light go to negative RGB rather than black.
func BallColor(normal, lightDir mgl32.Vec3) mgl32.Vec4 {
	intensity := normal.Dot(lightDir.Normalize())
	rgb := BallBaseColor.Mul(intensity)
	return mgl32.Vec4{rgb[0], rgb[1], rgb[2], 1.0}
}

// LineColor passes the vertex color through untouched, out-of-range
// components included.
func LineColor(c mgl32.Vec4) mgl32.Vec4 {
	return c
}
