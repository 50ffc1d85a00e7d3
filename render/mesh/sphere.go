package mesh

import (
	"github.com/chewxy/math32"
)

// Sphere tessellates a stacks/sectors sphere of the given radius with
// polyCount subdivisions along both latitude and longitude. Vertices
// carry outward unit normals; the index list triangulates every band,
// with the polar bands emitting a single fan triangle per sector.
func Sphere(radius float32, polyCount int) ([]ShadedVertex, []uint16) {
	stacks, sectors := polyCount, polyCount

	verts := make([]ShadedVertex, 0, (stacks+1)*(sectors+1))
	inv := 1.0 / radius
	for i := 0; i <= stacks; i++ {
		stackAngle := math32.Pi/2 - math32.Pi*float32(i)/float32(stacks)
		xy := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)
		for j := 0; j <= sectors; j++ {
			sectorAngle := 2 * math32.Pi * float32(j) / float32(sectors)
			x := xy * math32.Cos(sectorAngle)
			y := xy * math32.Sin(sectorAngle)
			verts = append(verts, ShadedVertex{
				Pos:    [3]float32{x, y, z},
				Normal: [3]float32{x * inv, y * inv, z * inv},
			})
		}
	}

	indices := make([]uint16, 0, 6*sectors*(stacks-1))
	for i := 0; i < stacks; i++ {
		k1 := uint16(i * (sectors + 1))
		k2 := k1 + uint16(sectors) + 1
		for j := 0; j < sectors; j++ {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stacks-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
			k1++
			k2++
		}
	}
	return verts, indices
}
