package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform slot assignment shared by every pipeline. In WGSL the slots
// are the fields of the scene uniform struct, declared in this order.
const (
	SlotPerspective = 0
	SlotView        = 1
	SlotParam       = 2 // grid: side length, ball: light direction
)

// Placement positions an object in world space: a translation followed
// by a uniform scale. The grid ignores placement entirely; its cells
// are laid out directly in clip space by the decoder.
type Placement struct {
	Offset mgl32.Vec3
	Scale  float32
}

// ModelMatrix builds the world transform, translation on the left.
func (p Placement) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(p.Offset.X(), p.Offset.Y(), p.Offset.Z()).
		Mul4(mgl32.Scale3D(p.Scale, p.Scale, p.Scale))
}

// BallPlacement is the stock ball position, off to the side of the
// grid on +X.
func BallPlacement() Placement {
	return Placement{Offset: mgl32.Vec3{4.0, 0.0, 0.0}, Scale: 1.0}
}

// AxesPlacement is the stock axis-line transform. The axis geometry is
// unit length and blown up far past the frustum so the lines read as
// infinite.
func AxesPlacement() Placement {
	return Placement{Scale: 50.0}
}

// GridPlacement is the identity: grid cells carry their own clip-space
// position from the decoder.
func GridPlacement() Placement {
	return Placement{Scale: 1.0}
}
