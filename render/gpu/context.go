// Package gpu owns the webgpu pipelines behind the viewer: an instanced
// grid pass, a lit ball pass and a line pass, all sharing one depth
// buffer and fed through per-pass uniform blocks.
package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// Context bundles the device handles the passes allocate against, plus
// the shared depth attachment which tracks the surface size.
type Context struct {
	Device *wgpu.Device
	Queue  *wgpu.Queue
	Format wgpu.TextureFormat

	DepthView    *wgpu.TextureView
	depthTexture *wgpu.Texture
	width        uint32
	height       uint32
}

func NewContext(device *wgpu.Device, queue *wgpu.Queue, format wgpu.TextureFormat) *Context {
	return &Context{
		Device: device,
		Queue:  queue,
		Format: format,
	}
}

// EnsureDepth recreates the depth attachment when the surface size
// changes. Cheap to call every frame.
func (c *Context) EnsureDepth(width, height uint32) error {
	if c.DepthView != nil && c.width == width && c.height == height {
		return nil
	}
	if c.DepthView != nil {
		c.DepthView.Release()
		c.DepthView = nil
	}
	if c.depthTexture != nil {
		c.depthTexture.Release()
		c.depthTexture = nil
	}

	tex, err := c.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "ViewerDepthTexture",
		Size: wgpu.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return err
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return err
	}

	c.depthTexture = tex
	c.DepthView = view
	c.width = width
	c.height = height
	return nil
}

func (c *Context) newUniformBuffer(label string, size uint64) (*wgpu.Buffer, error) {
	return c.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  size,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
}

func (c *Context) newVertexBuffer(label string, data []byte) (*wgpu.Buffer, error) {
	buf, err := c.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	c.Queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

func (c *Context) newIndexBuffer(label string, data []byte) (*wgpu.Buffer, error) {
	buf, err := c.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	c.Queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// uniformLayout builds the single-entry bind group layout every pass
// uses for its uniform block.
func (c *Context) uniformLayout(label string, size uint64, visibility wgpu.ShaderStage) (*wgpu.BindGroupLayout, error) {
	return c.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: label,
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: visibility,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					MinBindingSize:   size,
					HasDynamicOffset: false,
				},
			},
		},
	})
}

// depthState is shared by all pipelines so they can record into the
// same render pass against the common depth attachment.
func depthState() *wgpu.DepthStencilState {
	return &wgpu.DepthStencilState{
		Format:            wgpu.TextureFormatDepth24Plus,
		DepthWriteEnabled: true,
		DepthCompare:      wgpu.CompareFunctionLess,
		StencilFront: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
		StencilBack: wgpu.StencilFaceState{
			Compare: wgpu.CompareFunctionAlways,
		},
	}
}
