package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlacementModelMatrix(t *testing.T) {
	p := Placement{Offset: mgl32.Vec3{4, 0, 0}, Scale: 2}
	m := p.ModelMatrix()

	// Scale applies before the offset.
	got := m.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	vec4Near(t, got, mgl32.Vec4{6, 2, 2, 1}, "scale then translate")

	origin := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	vec4Near(t, origin, mgl32.Vec4{4, 0, 0, 1}, "origin lands on offset")
}

func TestStockPlacements(t *testing.T) {
	ball := BallPlacement()
	if ball.Offset != (mgl32.Vec3{4, 0, 0}) || ball.Scale != 1 {
		t.Errorf("ball placement: got %+v", ball)
	}

	axes := AxesPlacement()
	if axes.Offset != (mgl32.Vec3{}) || axes.Scale != 50 {
		t.Errorf("axes placement: got %+v", axes)
	}

	// An axis endpoint at unit distance ends up 50 units out.
	tip := axes.ModelMatrix().Mul4x1(mgl32.Vec4{0, 0, 1, 1})
	vec4Near(t, tip, mgl32.Vec4{0, 0, 50, 1}, "axis tip")

	grid := GridPlacement()
	if grid.ModelMatrix() != mgl32.Ident4() {
		t.Errorf("grid placement is not the identity: %+v", grid)
	}
}
