// Package deko3d translates portable render state for the Nintendo Switch
// GPU as driven by deko3d.
//
// deko3d is a thin command-buffer API: every state change is recorded as a
// bind command into the current CmdBuf. Samplers live in a descriptor heap
// whose slots can run out, which is the one failure this backend reports.
package deko3d

import (
	"fmt"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

// Default framebuffer size in handheld mode.
const (
	FramebufferWidth  = 1280
	FramebufferHeight = 720
)

// Image is an image descriptor index.
type Image uint32

// BlendState is DkBlendState.
type BlendState struct {
	ColorBlendOp        BlendOp
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
}

// DepthStencilState is DkDepthStencilState. Both faces share one
// configuration.
type DepthStencilState struct {
	DepthTestEnable   bool
	DepthWriteEnable  bool
	StencilTestEnable bool
	DepthCompareOp    CompareOp

	StencilFailOp      StencilOp
	StencilPassOp      StencilOp
	StencilDepthFailOp StencilOp
	StencilCompareOp   CompareOp
}

// Scissor is DkScissor.
type Scissor struct {
	X, Y, Width, Height uint32
}

// Sampler is DkSampler.
type Sampler struct {
	MinFilter     Filter
	MagFilter     Filter
	MipFilter     MipFilter
	WrapMode      [3]WrapMode
	MaxAnisotropy float32
}

// DefaultSampler matches dkSamplerDefaults.
func DefaultSampler() Sampler {
	return Sampler{
		MinFilter:     FilterNearest,
		MagFilter:     FilterNearest,
		MipFilter:     MipFilterNone,
		WrapMode:      [3]WrapMode{WrapModeRepeat, WrapModeRepeat, WrapModeRepeat},
		MaxAnisotropy: 1,
	}
}

// CmdBuf records state commands.
type CmdBuf interface {
	BindBlendState(s BlendState)
	// BindColorState sets the per-target blend enable mask.
	BindColorState(blendEnableMask uint32)
	BindColorWriteState(mask ColorMask)
	BindDepthStencilState(s DepthStencilState)
	SetStencilReference(ref uint8)
	SetScissor(s Scissor)
}

// DescriptorHeap stores sampler descriptors, one per image.
type DescriptorHeap interface {
	WriteSampler(img Image, s Sampler) error
}

// Backend implements backend.Backend and texture.Sampler[Image] for deko3d.
type Backend struct {
	cmd  CmdBuf
	heap DescriptorHeap

	width, height uint32

	depth   renderstate.DepthState
	stencil renderstate.StencilState

	// samplers keeps the last descriptor written per image so filter and
	// wrap can be changed independently.
	samplers map[Image]Sampler
}

var _ backend.Backend = (*Backend)(nil)
var _ texture.Sampler[Image] = (*Backend)(nil)

// New returns a backend recording into cmd with samplers stored in heap.
func New(cmd CmdBuf, heap DescriptorHeap) *Backend {
	return &Backend{
		cmd:      cmd,
		heap:     heap,
		width:    FramebufferWidth,
		height:   FramebufferHeight,
		depth:    renderstate.DefaultDepthState(),
		stencil:  renderstate.DefaultStencilState(),
		samplers: make(map[Image]Sampler),
	}
}

// Name returns "deko3d".
func (b *Backend) Name() string { return backend.NameDeko3D }

// SetFramebufferSize changes the area a disabled scissor covers
// (1920x1080 when docked).
func (b *Backend) SetFramebufferSize(w, h int) {
	b.width, b.height = uint32(w), uint32(h)
}

// ApplyBlendState records the blend state and the enable mask.
func (b *Backend) ApplyBlendState(s renderstate.BlendState) {
	if !s.Enabled {
		b.cmd.BindColorState(0)
		return
	}
	colorOp, ok1 := Op(s.OperationRGB)
	alphaOp, ok2 := Op(s.OperationA)
	srcColor, ok3 := Factor(s.SrcFactorRGB)
	dstColor, ok4 := Factor(s.DstFactorRGB)
	srcAlpha, ok5 := Factor(s.SrcFactorA)
	dstAlpha, ok6 := Factor(s.DstFactorA)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		love.Logger().Warn("deko3d: unsupported blend state", "state", s)
		return
	}
	b.cmd.BindColorState(1)
	b.cmd.BindBlendState(BlendState{
		ColorBlendOp:        colorOp,
		SrcColorBlendFactor: srcColor,
		DstColorBlendFactor: dstColor,
		AlphaBlendOp:        alphaOp,
		SrcAlphaBlendFactor: srcAlpha,
		DstAlphaBlendFactor: dstAlpha,
	})
}

// ApplyDepthState records the depth part of the depth-stencil state.
func (b *Backend) ApplyDepthState(d renderstate.DepthState) {
	b.depth = d
	b.bindDepthStencil()
}

// ApplyColorMask records the color write mask.
func (b *Backend) ApplyColorMask(m renderstate.ColorMask) {
	b.cmd.BindColorWriteState(Mask(m))
}

// ApplyScissor records the scissor rectangle. A disabled scissor covers
// the whole framebuffer.
func (b *Backend) ApplyScissor(s renderstate.ScissorState) {
	if !s.Enabled {
		b.cmd.SetScissor(Scissor{0, 0, b.width, b.height})
		return
	}
	r := s.Rect
	b.cmd.SetScissor(Scissor{
		X:      uint32(max(r.X, 0)),
		Y:      uint32(max(r.Y, 0)),
		Width:  uint32(max(r.W, 0)),
		Height: uint32(max(r.H, 0)),
	})
}

// ApplyStencil records the stencil part of the depth-stencil state and
// the reference value.
func (b *Backend) ApplyStencil(s renderstate.StencilState) {
	b.stencil = s
	b.bindDepthStencil()
	b.cmd.SetStencilReference(uint8(s.Value))
}

func (b *Backend) bindDepthStencil() {
	depthOp, ok1 := Compare(b.depth.Compare)
	stencilOp, ok2 := Compare(b.stencil.Compare)
	if !ok1 || !ok2 {
		love.Logger().Warn("deko3d: unsupported compare", "depth", b.depth.Compare, "stencil", b.stencil.Compare)
		return
	}
	b.cmd.BindDepthStencilState(DepthStencilState{
		DepthTestEnable:    b.depth.Enabled(),
		DepthWriteEnable:   b.depth.Write,
		StencilTestEnable:  b.stencil.Enabled(),
		DepthCompareOp:     depthOp,
		StencilFailOp:      StencilOpKeep,
		StencilPassOp:      StencilOpKeep,
		StencilDepthFailOp: StencilOpKeep,
		StencilCompareOp:   stencilOp,
	})
}

func (b *Backend) sampler(img Image) Sampler {
	if s, ok := b.samplers[img]; ok {
		return s
	}
	return DefaultSampler()
}

func (b *Backend) writeSampler(img Image, s Sampler) error {
	if err := b.heap.WriteSampler(img, s); err != nil {
		return fmt.Errorf("deko3d: write sampler descriptor: %w: %w", love.ErrResourceExhausted, err)
	}
	b.samplers[img] = s
	return nil
}

// ApplyFilter writes a sampler descriptor with the new filters.
func (b *Backend) ApplyFilter(img Image, f texture.Filter) error {
	minFilter, okMin := FilterFor(f.Min)
	magFilter, okMag := FilterFor(f.Mag)
	if !okMin || !okMag {
		return fmt.Errorf("deko3d: invalid filter %v/%v", f.Min, f.Mag)
	}
	s := b.sampler(img)
	s.MinFilter, s.MagFilter = minFilter, magFilter
	s.MipFilter = Mip(f.Mip())
	s.MaxAnisotropy = max(f.Anisotropy, 1)
	return b.writeSampler(img, s)
}

// ApplyWrap writes a sampler descriptor with the new wrap modes.
func (b *Backend) ApplyWrap(img Image, w texture.Wrap) error {
	s := b.sampler(img)
	for i, mode := range [3]texture.WrapMode{w.S, w.T, w.R} {
		v, ok := Wrap(mode)
		if !ok {
			return fmt.Errorf("deko3d: invalid wrap %v", mode)
		}
		s.WrapMode[i] = v
	}
	return b.writeSampler(img, s)
}

// Release forgets the sampler descriptor cached for img.
func (b *Backend) Release(img Image) {
	delete(b.samplers, img)
}
