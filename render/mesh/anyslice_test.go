package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnySliceVertexData(t *testing.T) {
	verts := []ShadedVertex{
		{Pos: [3]float32{1, 2, 3}, Normal: [3]float32{0, 0, 1}},
		{Pos: [3]float32{4, 5, 6}, Normal: [3]float32{0, 1, 0}},
	}
	s := MakeAnySlice(verts)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 24, s.ElementSize())

	raw := s.Bytes()
	require.Len(t, raw, 48)

	back, ok := s.Interface().([]ShadedVertex)
	require.True(t, ok)
	assert.Equal(t, verts, back)
}

func TestAnySliceIndexData(t *testing.T) {
	indices := []uint16{0, 1, 2, 2, 3, 0}
	s := MakeAnySlice(indices)

	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 2, s.ElementSize())
	assert.Len(t, s.Bytes(), 12)
}

func TestAnySliceEmpty(t *testing.T) {
	s := MakeAnySlice([]Vertex{})
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Bytes())
}

func TestAnySliceRejectsNonSlice(t *testing.T) {
	assert.Panics(t, func() {
		MakeAnySlice(42)
	})
}
