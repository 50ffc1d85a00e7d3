package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCubeSpansUnitVolume(t *testing.T) {
	verts, indices := UnitCube()
	require.Len(t, verts, 8)
	require.Len(t, indices, 36)

	for _, v := range verts {
		for axis := 0; axis < 3; axis++ {
			assert.Contains(t, []float32{0, 1}, v.Pos[axis])
		}
	}
	for _, idx := range indices {
		assert.Less(t, int(idx), len(verts))
	}

	// Every corner of the cube appears exactly once.
	seen := map[[3]float32]int{}
	for _, v := range verts {
		seen[v.Pos]++
	}
	assert.Len(t, seen, 8)
}

func TestAxesSegments(t *testing.T) {
	const extent = float32(50)
	verts := Axes(extent)
	require.Len(t, verts, 6)

	wantTips := [][3]float32{
		{extent, 0, 0},
		{0, extent, 0},
		{0, 0, extent},
	}
	wantColors := [][4]float32{
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 1},
	}
	for seg := 0; seg < 3; seg++ {
		start, end := verts[seg*2], verts[seg*2+1]
		assert.Equal(t, [3]float32{0, 0, 0}, start.Pos, "segment %d start", seg)
		assert.Equal(t, wantTips[seg], end.Pos, "segment %d tip", seg)
		assert.Equal(t, wantColors[seg], start.Color, "segment %d start color", seg)
		assert.Equal(t, wantColors[seg], end.Color, "segment %d end color", seg)
	}
}
