package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
	"github.com/prism3d/prism/render/mesh"
	"github.com/prism3d/prism/render/shaders"
)

// lineUniform mirrors LineUniform in lines.wgsl.
type lineUniform struct {
	Perspective mgl32.Mat4
	View        mgl32.Mat4
	Model       mgl32.Mat4
}

// LinePass draws a line list with per-vertex colors passed through
// unmodified. The viewer feeds it the coordinate axes.
type LinePass struct {
	Pipeline      *wgpu.RenderPipeline
	BindGroup     *wgpu.BindGroup
	UniformBuffer *wgpu.Buffer
	VertexBuffer  *wgpu.Buffer
	VertexCount   uint32
}

func NewLinePass(ctx *Context, verts []mesh.ColorVertex) (*LinePass, error) {
	module, err := ctx.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "LineShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.LinesWGSL},
	})
	if err != nil {
		return nil, err
	}

	uniformSize := uint64(unsafe.Sizeof(lineUniform{}))
	bgl, err := ctx.uniformLayout("LineBGL", uniformSize, wgpu.ShaderStageVertex)
	if err != nil {
		return nil, err
	}
	pipelineLayout, err := ctx.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		return nil, err
	}

	vertexLayout, err := VertexLayout(mesh.ColorVertex{})
	if err != nil {
		return nil, err
	}

	pipeline, err := ctx.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "LinePipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    ctx.Format,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyLineList,
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

	vertexBuffer, err := ctx.newVertexBuffer("LineVertexBuffer", mesh.MakeAnySlice(verts).Bytes())
	if err != nil {
		return nil, err
	}

	uniformBuffer, err := ctx.newUniformBuffer("LineUniformBuffer", uniformSize)
	if err != nil {
		return nil, err
	}
	bindGroup, err := ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "LineBG",
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

	return &LinePass{
		Pipeline:      pipeline,
		BindGroup:     bindGroup,
		UniformBuffer: uniformBuffer,
		VertexBuffer:  vertexBuffer,
		VertexCount:   uint32(len(verts)),
	}, nil
}

// Update uploads the camera and model transform.
func (p *LinePass) Update(queue *wgpu.Queue, cam core.CameraState, model mgl32.Mat4) {
	u := lineUniform{
		Perspective: cam.Perspective,
		View:        cam.View,
		Model:       model,
	}
	queue.WriteBuffer(p.UniformBuffer, 0, uniformBytes(&u))
}

func (p *LinePass) Draw(pass *wgpu.RenderPassEncoder) {
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)
	pass.SetVertexBuffer(0, p.VertexBuffer, 0, p.VertexBuffer.GetSize())
	pass.Draw(p.VertexCount, 1, 0, 0)
}

func (p *LinePass) Release() {
	p.BindGroup.Release()
	p.UniformBuffer.Release()
	p.VertexBuffer.Release()
	p.Pipeline.Release()
}
