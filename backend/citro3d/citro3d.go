// Package citro3d translates portable render state for the Nintendo 3DS
// PICA200 GPU as driven by citro3d.
//
// The 3DS framebuffers are stored rotated by 90 degrees, so scissor
// rectangles are transformed into the rotated space before they reach the
// GPU. Screen height is fixed at 240 pixels; width depends on the target
// screen (400 top, 320 bottom).
package citro3d

import (
	"fmt"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

// ScreenHeight is the height shared by both 3DS screens.
const ScreenHeight = 240

// Screen widths.
const (
	TopScreenWidth    = 400
	BottomScreenWidth = 320
)

// Tex is an opaque C3D_Tex handle.
type Tex uintptr

// GPU is the subset of citro3d this backend drives.
type GPU interface {
	AlphaBlend(colorEq, alphaEq BlendEquation, srcColor, dstColor, srcAlpha, dstAlpha BlendFactor)
	DepthTest(enable bool, fn TestFunc, mask WriteMask)
	SetScissor(mode ScissorMode, left, top, right, bottom int)
	StencilTest(enable bool, fn TestFunc, ref int, inputMask, writeMask uint32)
	StencilOp(fail, depthFail, pass StencilOp)

	TexSetFilter(tex Tex, mag, minFilter FilterParam)
	TexSetFilterMipmap(tex Tex, filter FilterParam)
	TexSetWrap(tex Tex, s, t WrapParam)
}

// Backend implements backend.Backend and texture.Sampler[Tex] for citro3d.
type Backend struct {
	gpu         GPU
	screenWidth int

	// The PICA200 write mask register holds depth write and color
	// channels together, so both are kept to rebuild it.
	depth renderstate.DepthState
	mask  renderstate.ColorMask
}

var _ backend.Backend = (*Backend)(nil)
var _ texture.Sampler[Tex] = (*Backend)(nil)

// New returns a backend drawing to the top screen.
func New(gpu GPU) *Backend {
	return &Backend{
		gpu:         gpu,
		screenWidth: TopScreenWidth,
		depth:       renderstate.DefaultDepthState(),
		mask:        renderstate.ColorMaskAll(),
	}
}

// Name returns "citro3d".
func (b *Backend) Name() string { return backend.NameCitro3D }

// SetScreenWidth selects the width used by the scissor transform.
func (b *Backend) SetScreenWidth(w int) { b.screenWidth = w }

// ApplyBlendState programs the blend unit. The PICA200 cannot switch
// blending off, so a disabled state is programmed as a replace.
func (b *Backend) ApplyBlendState(s renderstate.BlendState) {
	if !s.Enabled {
		s = renderstate.ComputeBlendState(renderstate.BlendReplace, renderstate.AlphaPremultiplied)
	}

	colorEq, ok1 := Equation(s.OperationRGB)
	alphaEq, ok2 := Equation(s.OperationA)
	srcColor, ok3 := Factor(s.SrcFactorRGB)
	dstColor, ok4 := Factor(s.DstFactorRGB)
	srcAlpha, ok5 := Factor(s.SrcFactorA)
	dstAlpha, ok6 := Factor(s.DstFactorA)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		love.Logger().Warn("citro3d: unsupported blend state", "state", s)
		return
	}
	b.gpu.AlphaBlend(colorEq, alphaEq, srcColor, dstColor, srcAlpha, dstAlpha)
}

// ApplyDepthState programs the depth test and the write mask.
func (b *Backend) ApplyDepthState(d renderstate.DepthState) {
	b.depth = d
	b.applyDepthAndMask()
}

// ApplyColorMask programs the write mask.
func (b *Backend) ApplyColorMask(m renderstate.ColorMask) {
	b.mask = m
	b.applyDepthAndMask()
}

func (b *Backend) applyDepthAndMask() {
	fn, ok := Test(b.depth.Compare)
	if !ok {
		love.Logger().Warn("citro3d: unsupported depth compare", "compare", b.depth.Compare)
		return
	}
	b.gpu.DepthTest(b.depth.Enabled(), fn, Mask(b.mask, b.depth.Write))
}

// ScissorRect transforms a rectangle in screen space into the rotated
// framebuffer space, returning left, top, right and bottom.
func ScissorRect(r renderstate.Rect, screenWidth int) (left, top, right, bottom int) {
	return ScreenHeight - (r.Y + r.H), screenWidth - (r.X + r.W), ScreenHeight - r.Y, screenWidth - r.X
}

// ApplyScissor programs the scissor rectangle.
func (b *Backend) ApplyScissor(s renderstate.ScissorState) {
	if !s.Enabled {
		b.gpu.SetScissor(ScissorDisable, 0, 0, 0, 0)
		return
	}
	l, t, r, bt := ScissorRect(s.Rect, b.screenWidth)
	b.gpu.SetScissor(ScissorNormal, l, t, r, bt)
}

// ApplyStencil programs the stencil test. Every stencil operation keeps
// the buffer contents.
func (b *Backend) ApplyStencil(s renderstate.StencilState) {
	fn, ok := Test(s.Compare)
	if !ok {
		love.Logger().Warn("citro3d: unsupported stencil compare", "compare", s.Compare)
		return
	}
	b.gpu.StencilTest(s.Enabled(), fn, s.Value, 0xFFFFFFFF, 0xFFFFFFFF)
	b.gpu.StencilOp(StencilKeep, StencilKeep, StencilKeep)
}

// ApplyFilter programs a texture's min, mag and mip filters. Sampler
// state lives in the texture registers, so nothing is allocated.
func (b *Backend) ApplyFilter(tex Tex, f texture.Filter) error {
	minParam, okMin := Filter(f.Min)
	magParam, okMag := Filter(f.Mag)
	if !okMin || !okMag {
		return fmt.Errorf("citro3d: invalid filter %v/%v", f.Min, f.Mag)
	}
	b.gpu.TexSetFilter(tex, magParam, minParam)
	if mip, ok := MipFilter(f.Mip()); ok {
		b.gpu.TexSetFilterMipmap(tex, mip)
	}
	return nil
}

// ApplyWrap programs a texture's S and T wrap. The PICA200 has no R
// coordinate.
func (b *Backend) ApplyWrap(tex Tex, w texture.Wrap) error {
	s, okS := Wrap(w.S)
	t, okT := Wrap(w.T)
	if !okS || !okT {
		return fmt.Errorf("citro3d: invalid wrap %v/%v", w.S, w.T)
	}
	b.gpu.TexSetWrap(tex, s, t)
	return nil
}
