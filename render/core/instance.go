package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// CellLayout selects how a flat instance id is unraveled into a 3D
// grid cell.
type CellLayout uint8

const (
	// LayoutCollapsed divides the id by the side length before every
	// component extraction:
	//
	//	x = (id / side) % side
	//	y = ((id / side) * side) % side
	//	z = ((id / side) * side * side) % side
	//
	// For side > 1 the y and z expressions are multiples of side taken
	// modulo side, so both collapse to zero: all instances land in the
	// y=0, z=0 row and each x cell is hit side times. This is the
	// behavior the grid shipped with and remains the default.
	LayoutCollapsed CellLayout = iota

	// LayoutRowMajor is the conventional row-major unraveling. It maps
	// ids in [0, side³) onto the full grid bijectively.
	LayoutRowMajor
)

func (l CellLayout) String() string {
	switch l {
	case LayoutCollapsed:
		return "collapsed"
	case LayoutRowMajor:
		return "rowmajor"
	}
	return fmt.Sprintf("CellLayout(%d)", uint8(l))
}

// ParseCellLayout resolves a layout name from config or preset files.
func ParseCellLayout(s string) (CellLayout, error) {
	switch s {
	case "", "collapsed":
		return LayoutCollapsed, nil
	case "rowmajor":
		return LayoutRowMajor, nil
	}
	return LayoutCollapsed, fmt.Errorf("unknown cell layout %q", s)
}

// Instance is one decoded grid cell: its integer coordinate, the
// clip-space corner the cell's cube is anchored at, and the cube's
// edge length in NDC units.
type Instance struct {
	Cell  [3]int32
	NDC   mgl32.Vec3
	Scale float32
}

// DecodeCell maps a flat instance id to its grid cell. Ids outside
// [0, side³) are not rejected; the arithmetic result stands.
func DecodeCell(side, id int32, layout CellLayout) [3]int32 {
	if layout == LayoutRowMajor {
		return [3]int32{
			id % side,
			(id / side) % side,
			id / (side * side),
		}
	}
	return [3]int32{
		(id / side) % side,
		((id / side) * side) % side,
		((id / side) * side * side) % side,
	}
}

// CellScale is the edge length of one cell's cube in NDC units. The
// division is a float division: side 0 yields +Inf and propagates.
func CellScale(side int32) float32 {
	return 2.0 / float32(side)
}

// CellToNDC maps a cell to the clip-space corner of its cube. Cell
// coordinates in [0, side) cover [-1, 1) per axis.
func CellToNDC(cell [3]int32, side int32) mgl32.Vec3 {
	scale := CellScale(side)
	return mgl32.Vec3{
		float32(cell[0])*scale - 1.0,
		float32(cell[1])*scale - 1.0,
		float32(cell[2])*scale - 1.0,
	}
}

// DecodeInstance decodes a flat id into a fully positioned instance.
func DecodeInstance(side, id int32, layout CellLayout) Instance {
	cell := DecodeCell(side, id, layout)
	return Instance{
		Cell:  cell,
		NDC:   CellToNDC(cell, side),
		Scale: CellScale(side),
	}
}
