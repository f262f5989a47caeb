package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
	"github.com/lovepotion/love/renderstate"
)

// DepthStencilFormat is the depth-stencil attachment format assumed by
// PipelineState.
const DepthStencilFormat = gputypes.TextureFormatDepth24PlusStencil8

// PipelineState is the pipeline-relevant state accumulated by a Backend.
type PipelineState struct {
	// Blend is nil when blending is disabled.
	Blend        *gputypes.BlendState
	WriteMask    gputypes.ColorWriteMask
	DepthStencil hal.DepthStencilState

	// Scissor is only meaningful when ScissorEnabled is set.
	Scissor        renderstate.Rect
	ScissorEnabled bool

	StencilReference uint32
}

// ColorTarget returns the color target description for format.
func (p PipelineState) ColorTarget(format gputypes.TextureFormat) gputypes.ColorTargetState {
	t := gputypes.ColorTargetState{Format: format, WriteMask: p.WriteMask}
	if p.Blend != nil {
		b := *p.Blend
		t.Blend = &b
	}
	return t
}

// Backend implements backend.Backend for WebGPU.
type Backend struct {
	device Device

	state   PipelineState
	depth   renderstate.DepthState
	stencil renderstate.StencilState
}

var _ backend.Backend = (*Backend)(nil)

// New returns a backend creating samplers on device. The initial state is
// the renderstate defaults.
func New(device Device) *Backend {
	b := &Backend{
		device:  device,
		depth:   renderstate.DefaultDepthState(),
		stencil: renderstate.DefaultStencilState(),
	}
	b.state.WriteMask = gputypes.ColorWriteMaskAll
	b.updateDepthStencil()
	return b
}

// Name returns "wgpu".
func (b *Backend) Name() string { return backend.NameWGPU }

// State returns a snapshot of the current pipeline state.
func (b *Backend) State() PipelineState {
	s := b.state
	if s.Blend != nil {
		blend := *s.Blend
		s.Blend = &blend
	}
	return s
}

// ApplyBlendState records the blend part of the color target.
func (b *Backend) ApplyBlendState(s renderstate.BlendState) {
	blend, ok := Blend(s)
	if !ok {
		love.Logger().Warn("wgpu: unsupported blend state", "state", s)
		return
	}
	b.state.Blend = blend
}

// ApplyDepthState records the depth part of the depth-stencil state.
func (b *Backend) ApplyDepthState(d renderstate.DepthState) {
	b.depth = d
	b.updateDepthStencil()
}

// ApplyColorMask records the color target write mask.
func (b *Backend) ApplyColorMask(m renderstate.ColorMask) {
	b.state.WriteMask = WriteMask(m)
}

// ApplyScissor records the scissor rectangle for the next render pass.
func (b *Backend) ApplyScissor(s renderstate.ScissorState) {
	b.state.Scissor = s.Rect
	b.state.ScissorEnabled = s.Enabled
}

// ApplyStencil records the stencil test and reference value.
func (b *Backend) ApplyStencil(s renderstate.StencilState) {
	b.stencil = s
	b.state.StencilReference = uint32(s.Value)
	b.updateDepthStencil()
}

func (b *Backend) updateDepthStencil() {
	depthFn, ok1 := Compare(b.depth.Compare)
	stencilFn, ok2 := Compare(b.stencil.Compare)
	if !ok1 || !ok2 {
		love.Logger().Warn("wgpu: unsupported compare", "depth", b.depth.Compare, "stencil", b.stencil.Compare)
		return
	}
	face := hal.StencilFaceState{
		Compare:     stencilFn,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      hal.StencilOperationKeep,
	}
	b.state.DepthStencil = hal.DepthStencilState{
		Format:            DepthStencilFormat,
		DepthWriteEnabled: b.depth.Write,
		DepthCompare:      depthFn,
		StencilFront:      face,
		StencilBack:       face,
		StencilReadMask:   0xFF,
		StencilWriteMask:  0xFF,
	}
}
