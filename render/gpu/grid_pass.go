package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
	"github.com/prism3d/prism/render/mesh"
	"github.com/prism3d/prism/render/shaders"
)

// gridUniform mirrors SceneUniform in grid.wgsl. The trailing pad keeps
// the block at a 16 byte multiple.
type gridUniform struct {
	Perspective mgl32.Mat4
	View        mgl32.Mat4
	Side        int32
	Pad         [3]int32
}

// GridPass draws side^3 instanced unit cubes. The cell each instance
// lands in is decoded in the vertex shader from the instance index, so
// the pass uploads no per-instance data at all.
type GridPass struct {
	Pipeline      *wgpu.RenderPipeline
	BindGroup     *wgpu.BindGroup
	UniformBuffer *wgpu.Buffer
	VertexBuffer  *wgpu.Buffer
	IndexBuffer   *wgpu.Buffer
	IndexCount    uint32
	InstanceCount uint32
}

// NewGridPass compiles the pipeline for one layout and shading pair.
// Switching variants at runtime means building a fresh pass; entry points
// are baked into the pipeline.
func NewGridPass(ctx *Context, layout core.CellLayout, shading core.GridShading, verts []mesh.Vertex, indices []uint16) (*GridPass, error) {
	module, err := ctx.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "GridShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.GridWGSL},
	})
	if err != nil {
		return nil, err
	}

	vertexEntry := "vs_collapsed"
	if layout == core.LayoutRowMajor {
		vertexEntry = "vs_rowmajor"
	}
	fragmentEntry := "fs_constant"
	if shading == core.ShadingGradient {
		fragmentEntry = "fs_gradient"
	}

	uniformSize := uint64(unsafe.Sizeof(gridUniform{}))
	bgl, err := ctx.uniformLayout("GridSceneBGL", uniformSize, wgpu.ShaderStageVertex)
	if err != nil {
		return nil, err
	}
	pipelineLayout, err := ctx.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		return nil, err
	}

	vertexLayout, err := VertexLayout(mesh.Vertex{})
	if err != nil {
		return nil, err
	}

	pipeline, err := ctx.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "GridPipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: vertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: fragmentEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    ctx.Format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: depthState(),
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, err
	}

	vertexBuffer, err := ctx.newVertexBuffer("GridCubeVertexBuffer", mesh.MakeAnySlice(verts).Bytes())
	if err != nil {
		return nil, err
	}
	indexBuffer, err := ctx.newIndexBuffer("GridCubeIndexBuffer", mesh.MakeAnySlice(indices).Bytes())
	if err != nil {
		return nil, err
	}

	uniformBuffer, err := ctx.newUniformBuffer("GridUniformBuffer", uniformSize)
	if err != nil {
		return nil, err
	}
	bindGroup, err := ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "GridSceneBG",
		Layout: pipeline.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  uniformBuffer,
				Size:    uniformSize,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return &GridPass{
		Pipeline:      pipeline,
		BindGroup:     bindGroup,
		UniformBuffer: uniformBuffer,
		VertexBuffer:  vertexBuffer,
		IndexBuffer:   indexBuffer,
		IndexCount:    uint32(len(indices)),
	}, nil
}

// Update uploads the camera matrices and grid size for the next frame.
func (p *GridPass) Update(queue *wgpu.Queue, cam core.CameraState, side int32) {
	u := gridUniform{
		Perspective: cam.Perspective,
		View:        cam.View,
		Side:        side,
	}
	queue.WriteBuffer(p.UniformBuffer, 0, uniformBytes(&u))
	p.InstanceCount = 0
	if side > 0 {
		p.InstanceCount = uint32(side * side * side)
	}
}

func (p *GridPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.InstanceCount == 0 {
		return
	}
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)
	pass.SetVertexBuffer(0, p.VertexBuffer, 0, p.VertexBuffer.GetSize())
	pass.SetIndexBuffer(p.IndexBuffer, wgpu.IndexFormatUint16, 0, p.IndexBuffer.GetSize())
	pass.DrawIndexed(p.IndexCount, p.InstanceCount, 0, 0, 0)
}

func (p *GridPass) Release() {
	p.BindGroup.Release()
	p.UniformBuffer.Release()
	p.IndexBuffer.Release()
	p.VertexBuffer.Release()
	p.Pipeline.Release()
}
