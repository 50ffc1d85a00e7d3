package gpu

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/cogentcore/webgpu/wgpu"
)

type formatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

var vertexFormats = map[string]formatInfo{
	"float":  {wgpu.VertexFormatFloat32, 4},
	"float2": {wgpu.VertexFormatFloat32x2, 8},
	"float3": {wgpu.VertexFormatFloat32x3, 12},
	"float4": {wgpu.VertexFormatFloat32x4, 16},
	"int":    {wgpu.VertexFormatSint32, 4},
	"uint":   {wgpu.VertexFormatUint32, 4},
}

// VertexLayout builds a buffer layout from the struct tags of a vertex
// type. Fields opt in with `prism:"layout"` and declare a shader
// location and format; offsets accumulate in field order:
//
//	type ColorVertex struct {
//		Pos   [3]float32 `prism:"layout" location:"0" format:"float3"`
//		Color [4]float32 `prism:"layout" location:"1" format:"float4"`
//	}
func VertexLayout(vertex any) (wgpu.VertexBufferLayout, error) {
	t := reflect.TypeOf(vertex)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return wgpu.VertexBufferLayout{}, fmt.Errorf("vertex layout needs a struct, got %s", t.Kind())
	}

	var attrs []wgpu.VertexAttribute
	var offset uint64
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("prism") != "layout" {
			continue
		}

		location, err := strconv.ParseUint(field.Tag.Get("location"), 10, 32)
		if err != nil {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("field %s.%s: bad location tag: %w", t.Name(), field.Name, err)
		}
		info, ok := vertexFormats[field.Tag.Get("format")]
		if !ok {
			return wgpu.VertexBufferLayout{}, fmt.Errorf("field %s.%s: unknown format %q", t.Name(), field.Name, field.Tag.Get("format"))
		}

		attrs = append(attrs, wgpu.VertexAttribute{
			Format:         info.format,
			Offset:         offset,
			ShaderLocation: uint32(location),
		})
		offset += info.size
	}
	if len(attrs) == 0 {
		return wgpu.VertexBufferLayout{}, fmt.Errorf("type %s declares no layout fields", t.Name())
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}, nil
}
