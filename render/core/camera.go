package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// CameraState carries the two matrices every pipeline consumes.
// Column-vector convention: matrices multiply points from the left.
type CameraState struct {
	View        mgl32.Mat4
	Perspective mgl32.Mat4
}

// ToClipSpace maps a homogeneous point into clip space, applying the
// view transform first and the perspective transform second. No
// validation is performed; NaN and Inf inputs propagate through.
func ToClipSpace(perspective, view mgl32.Mat4, p mgl32.Vec4) mgl32.Vec4 {
	return perspective.Mul4x1(view.Mul4x1(p))
}

// ViewProj collapses the camera into a single matrix. Applying it to a
// point gives the same result as ToClipSpace on that point.
func (c CameraState) ViewProj() mgl32.Mat4 {
	return c.Perspective.Mul4(c.View)
}

// BuildPerspective builds a projection matrix from a vertical field of
// view in degrees.
func BuildPerspective(fovyDeg, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovyDeg), aspect, near, far)
}

// BuildView builds a right-handed look-at view matrix.
func BuildView(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}
