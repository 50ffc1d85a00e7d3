package mesh

// UnitCube returns the instanced grid template: a cube spanning
// [0,1] on every axis, so an instance placed at a cell corner and
// scaled by the cell size fills exactly one cell.
func UnitCube() ([]Vertex, []uint16) {
	verts := []Vertex{
		{Pos: [3]float32{0, 0, 0}},
		{Pos: [3]float32{1, 0, 0}},
		{Pos: [3]float32{1, 1, 0}},
		{Pos: [3]float32{0, 1, 0}},
		{Pos: [3]float32{0, 0, 1}},
		{Pos: [3]float32{1, 0, 1}},
		{Pos: [3]float32{1, 1, 1}},
		{Pos: [3]float32{0, 1, 1}},
	}
	indices := []uint16{
		0, 3, 2, 0, 2, 1, // back
		4, 5, 6, 4, 6, 7, // front
		0, 1, 5, 0, 5, 4, // bottom
		3, 7, 6, 3, 6, 2, // top
		0, 4, 7, 0, 7, 3, // left
		1, 2, 6, 1, 6, 5, // right
	}
	return verts, indices
}

// Axes returns three line segments from the origin along +X, +Y and +Z,
// colored red, green and blue in that order. Each vertex pair forms one
// segment of a line list.
func Axes(extent float32) []ColorVertex {
	red := [4]float32{1, 0, 0, 1}
	green := [4]float32{0, 1, 0, 1}
	blue := [4]float32{0, 0, 1, 1}
	return []ColorVertex{
		{Pos: [3]float32{0, 0, 0}, Color: red},
		{Pos: [3]float32{extent, 0, 0}, Color: red},
		{Pos: [3]float32{0, 0, 0}, Color: green},
		{Pos: [3]float32{0, extent, 0}, Color: green},
		{Pos: [3]float32{0, 0, 0}, Color: blue},
		{Pos: [3]float32{0, 0, extent}, Color: blue},
	}
}
