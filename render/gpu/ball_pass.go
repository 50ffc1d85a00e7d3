package gpu

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
	"github.com/prism3d/prism/render/mesh"
	"github.com/prism3d/prism/render/shaders"
)

// ballUniform mirrors BallUniform in ball.wgsl. Light is a vec4 so the
// block needs no extra padding.
type ballUniform struct {
	Perspective mgl32.Mat4
	View        mgl32.Mat4
	Light       mgl32.Vec4
	Model       mgl32.Mat4
}

// BallPass draws a single lit sphere.
type BallPass struct {
	Pipeline      *wgpu.RenderPipeline
	BindGroup     *wgpu.BindGroup
	UniformBuffer *wgpu.Buffer
	VertexBuffer  *wgpu.Buffer
	IndexBuffer   *wgpu.Buffer
	IndexCount    uint32
}

func NewBallPass(ctx *Context, verts []mesh.ShadedVertex, indices []uint16) (*BallPass, error) {
	module, err := ctx.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "BallShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.BallWGSL},
	})
	if err != nil {
		return nil, err
	}

	uniformSize := uint64(unsafe.Sizeof(ballUniform{}))
	bgl, err := ctx.uniformLayout("BallBGL", uniformSize, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment)
	if err != nil {
		return nil, err
	}
	pipelineLayout, err := ctx.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		return nil, err
	}

	vertexLayout, err := VertexLayout(mesh.ShadedVertex{})
	if err != nil {
		return nil, err
	}

	pipeline, err := ctx.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "BallPipeline",
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

	vertexBuffer, err := ctx.newVertexBuffer("BallVertexBuffer", mesh.MakeAnySlice(verts).Bytes())
	if err != nil {
		return nil, err
	}
	indexBuffer, err := ctx.newIndexBuffer("BallIndexBuffer", mesh.MakeAnySlice(indices).Bytes())
	if err != nil {
		return nil, err
	}

	uniformBuffer, err := ctx.newUniformBuffer("BallUniformBuffer", uniformSize)
	if err != nil {
		return nil, err
	}
	bindGroup, err := ctx.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "BallBG",
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

	return &BallPass{
		Pipeline:      pipeline,
		BindGroup:     bindGroup,
		UniformBuffer: uniformBuffer,
		VertexBuffer:  vertexBuffer,
		IndexBuffer:   indexBuffer,
		IndexCount:    uint32(len(indices)),
	}, nil
}

// Update uploads the camera, light direction and model transform.
func (p *BallPass) Update(queue *wgpu.Queue, cam core.CameraState, light mgl32.Vec3, model mgl32.Mat4) {
	u := ballUniform{
		Perspective: cam.Perspective,
		View:        cam.View,
		Light:       light.Vec4(0),
		Model:       model,
	}
	queue.WriteBuffer(p.UniformBuffer, 0, uniformBytes(&u))
}

func (p *BallPass) Draw(pass *wgpu.RenderPassEncoder) {
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)
	pass.SetVertexBuffer(0, p.VertexBuffer, 0, p.VertexBuffer.GetSize())
	pass.SetIndexBuffer(p.IndexBuffer, wgpu.IndexFormatUint16, 0, p.IndexBuffer.GetSize())
	pass.DrawIndexed(p.IndexCount, 1, 0, 0, 0)
}

func (p *BallPass) Release() {
	p.BindGroup.Release()
	p.UniformBuffer.Release()
	p.IndexBuffer.Release()
	p.VertexBuffer.Release()
	p.Pipeline.Release()
}
