// Package gx2 translates portable render state for the Nintendo Wii U GPU
// as driven by GX2.
//
// The Wii U draws to two targets, the TV and the GamePad (DRC) screen.
// Register state is shared; only the scissor default depends on which
// target is bound.
package gx2

import (
	"fmt"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

// Render target sizes.
const (
	TVWidth   = 1280
	TVHeight  = 720
	DRCWidth  = 854
	DRCHeight = 480
)

// Texture identifies a GX2Texture and its GX2Sampler.
type Texture uint32

// BlendControl is the argument list of GX2SetBlendControl for target 0.
type BlendControl struct {
	ColorSrc     BlendMode
	ColorDst     BlendMode
	ColorCombine BlendCombineMode
	AlphaSrc     BlendMode
	AlphaDst     BlendMode
	AlphaCombine BlendCombineMode
}

// DepthStencilControl is the argument list of GX2SetDepthStencilControl.
// Front and back faces share one configuration.
type DepthStencilControl struct {
	DepthTest    bool
	DepthWrite   bool
	DepthCompare CompareFunction
	StencilTest  bool
	StencilFunc  CompareFunction
	ZPass        StencilFunction
	ZFail        StencilFunction
	Fail         StencilFunction
}

// Sampler is the content of a GX2Sampler.
type Sampler struct {
	ClampX, ClampY, ClampZ ClampMode
	MagFilter, MinFilter   XYFilter
	MipFilter              MipFilter
	MaxAniso               AnisoRatio
}

// DefaultSampler matches GX2InitSampler(clamp, linear).
func DefaultSampler() Sampler {
	return Sampler{
		ClampX: ClampClamp, ClampY: ClampClamp, ClampZ: ClampClamp,
		MagFilter: XYFilterLinear, MinFilter: XYFilterLinear,
		MipFilter: MipFilterNone,
		MaxAniso:  Aniso1To1,
	}
}

// Context is the subset of GX2 this backend drives.
type Context interface {
	SetBlendControl(c BlendControl)
	// SetColorControl sets the per-target blend enable mask.
	SetColorControl(blendEnableMask uint8)
	SetDepthStencilControl(c DepthStencilControl)
	SetStencilMask(preMask, writeMask, ref uint8)
	SetTargetChannelMasks(mask ChannelMask)
	SetScissor(x, y, w, h uint32)
	// InitSampler writes a GX2Sampler held in user memory.
	InitSampler(tex Texture, s Sampler)
}

// Backend implements backend.Backend and texture.Sampler[Texture] for GX2.
type Backend struct {
	ctx Context

	width, height uint32

	depth   renderstate.DepthState
	stencil renderstate.StencilState

	samplers map[Texture]Sampler
}

var _ backend.Backend = (*Backend)(nil)
var _ texture.Sampler[Texture] = (*Backend)(nil)

// New returns a backend drawing to the TV target.
func New(ctx Context) *Backend {
	return &Backend{
		ctx:      ctx,
		width:    TVWidth,
		height:   TVHeight,
		depth:    renderstate.DefaultDepthState(),
		stencil:  renderstate.DefaultStencilState(),
		samplers: make(map[Texture]Sampler),
	}
}

// Name returns "gx2".
func (b *Backend) Name() string { return backend.NameGX2 }

// SetTargetSize changes the area a disabled scissor covers.
func (b *Backend) SetTargetSize(w, h int) {
	b.width, b.height = uint32(w), uint32(h)
}

// ApplyBlendState programs blend control for target 0.
func (b *Backend) ApplyBlendState(s renderstate.BlendState) {
	if !s.Enabled {
		b.ctx.SetColorControl(0)
		return
	}
	colorSrc, ok1 := Factor(s.SrcFactorRGB)
	colorDst, ok2 := Factor(s.DstFactorRGB)
	colorOp, ok3 := Combine(s.OperationRGB)
	alphaSrc, ok4 := Factor(s.SrcFactorA)
	alphaDst, ok5 := Factor(s.DstFactorA)
	alphaOp, ok6 := Combine(s.OperationA)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		love.Logger().Warn("gx2: unsupported blend state", "state", s)
		return
	}
	b.ctx.SetColorControl(1)
	b.ctx.SetBlendControl(BlendControl{
		ColorSrc: colorSrc, ColorDst: colorDst, ColorCombine: colorOp,
		AlphaSrc: alphaSrc, AlphaDst: alphaDst, AlphaCombine: alphaOp,
	})
}

// ApplyDepthState programs the depth part of depth-stencil control.
func (b *Backend) ApplyDepthState(d renderstate.DepthState) {
	b.depth = d
	b.setDepthStencil()
}

// ApplyColorMask programs the channel mask of target 0.
func (b *Backend) ApplyColorMask(m renderstate.ColorMask) {
	b.ctx.SetTargetChannelMasks(Channels(m))
}

// ApplyScissor programs the scissor box. A disabled scissor covers the
// bound target.
func (b *Backend) ApplyScissor(s renderstate.ScissorState) {
	if !s.Enabled {
		b.ctx.SetScissor(0, 0, b.width, b.height)
		return
	}
	r := s.Rect
	b.ctx.SetScissor(uint32(max(r.X, 0)), uint32(max(r.Y, 0)), uint32(max(r.W, 0)), uint32(max(r.H, 0)))
}

// ApplyStencil programs the stencil part of depth-stencil control and
// the reference value.
func (b *Backend) ApplyStencil(s renderstate.StencilState) {
	b.stencil = s
	b.setDepthStencil()
	b.ctx.SetStencilMask(0xFF, 0xFF, uint8(s.Value))
}

func (b *Backend) setDepthStencil() {
	depthFn, ok1 := Compare(b.depth.Compare)
	stencilFn, ok2 := Compare(b.stencil.Compare)
	if !ok1 || !ok2 {
		love.Logger().Warn("gx2: unsupported compare", "depth", b.depth.Compare, "stencil", b.stencil.Compare)
		return
	}
	b.ctx.SetDepthStencilControl(DepthStencilControl{
		DepthTest:    b.depth.Enabled(),
		DepthWrite:   b.depth.Write,
		DepthCompare: depthFn,
		StencilTest:  b.stencil.Enabled(),
		StencilFunc:  stencilFn,
		ZPass:        StencilKeep,
		ZFail:        StencilKeep,
		Fail:         StencilKeep,
	})
}

func (b *Backend) sampler(tex Texture) Sampler {
	if s, ok := b.samplers[tex]; ok {
		return s
	}
	return DefaultSampler()
}

// ApplyFilter rewrites the texture's sampler with new filters. GX2
// samplers live in user memory, so this cannot run out of resources.
func (b *Backend) ApplyFilter(tex Texture, f texture.Filter) error {
	minFilter, okMin := Filter(f.Min)
	magFilter, okMag := Filter(f.Mag)
	if !okMin || !okMag {
		return fmt.Errorf("gx2: invalid filter %v/%v", f.Min, f.Mag)
	}
	s := b.sampler(tex)
	s.MinFilter, s.MagFilter = minFilter, magFilter
	s.MipFilter = Mip(f.Mip())
	s.MaxAniso = Aniso(f.Anisotropy)
	b.samplers[tex] = s
	b.ctx.InitSampler(tex, s)
	return nil
}

// ApplyWrap rewrites the texture's sampler with new clamp modes.
func (b *Backend) ApplyWrap(tex Texture, w texture.Wrap) error {
	x, okX := Clamp(w.S)
	y, okY := Clamp(w.T)
	z, okZ := Clamp(w.R)
	if !okX || !okY || !okZ {
		return fmt.Errorf("gx2: invalid wrap %v/%v/%v", w.S, w.T, w.R)
	}
	s := b.sampler(tex)
	s.ClampX, s.ClampY, s.ClampZ = x, y, z
	b.samplers[tex] = s
	b.ctx.InitSampler(tex, s)
	return nil
}

// Release forgets the sampler kept for tex.
func (b *Backend) Release(tex Texture) {
	delete(b.samplers, tex)
}
