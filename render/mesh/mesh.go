// Package mesh builds the procedural geometry the viewer draws:
// a unit cube template for grid instancing, a stacks/sectors sphere,
// and colored axis lines.
package mesh

// Vertex is the bare position-only layout used by instanced templates.
type Vertex struct {
	Pos [3]float32 `prism:"layout" location:"0" format:"float3"`
}

// ShadedVertex carries a surface normal for lit meshes.
type ShadedVertex struct {
	Pos    [3]float32 `prism:"layout" location:"0" format:"float3"`
	Normal [3]float32 `prism:"layout" location:"1" format:"float3"`
}

// ColorVertex carries a per-vertex color for line geometry.
type ColorVertex struct {
	Pos   [3]float32 `prism:"layout" location:"0" format:"float3"`
	Color [4]float32 `prism:"layout" location:"1" format:"float4"`
}
