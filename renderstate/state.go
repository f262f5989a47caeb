package renderstate

import "fmt"

// DepthState is the depth test configuration.
type DepthState struct {
	Compare CompareMode
	Write   bool
}

// DefaultDepthState passes every fragment and leaves the depth buffer alone.
func DefaultDepthState() DepthState {
	return DepthState{Compare: CompareAlways}
}

// Enabled reports whether the depth unit has any effect.
func (d DepthState) Enabled() bool {
	return d.Compare != CompareAlways || d.Write
}

// ColorMask holds per-channel framebuffer write flags.
type ColorMask struct {
	R, G, B, A bool
}

// Channel bits of ColorMask.Bits.
const (
	MaskRed uint8 = 1 << iota
	MaskGreen
	MaskBlue
	MaskAlpha

	MaskAll = MaskRed | MaskGreen | MaskBlue | MaskAlpha
)

// ColorMaskAll writes every channel.
func ColorMaskAll() ColorMask {
	return ColorMask{R: true, G: true, B: true, A: true}
}

// Bits packs the mask with red in bit 0 and alpha in bit 3.
func (m ColorMask) Bits() uint8 {
	var bits uint8
	if m.R {
		bits |= MaskRed
	}
	if m.G {
		bits |= MaskGreen
	}
	if m.B {
		bits |= MaskBlue
	}
	if m.A {
		bits |= MaskAlpha
	}
	return bits
}

// ColorMaskFromBits is the inverse of ColorMask.Bits. Bits above 3 are ignored.
func ColorMaskFromBits(bits uint8) ColorMask {
	return ColorMask{
		R: bits&MaskRed != 0,
		G: bits&MaskGreen != 0,
		B: bits&MaskBlue != 0,
		A: bits&MaskAlpha != 0,
	}
}

func (m ColorMask) String() string {
	return fmt.Sprintf("ColorMask{%t, %t, %t, %t}", m.R, m.G, m.B, m.A)
}

// Rect is an axis-aligned integer rectangle in framebuffer pixels.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ScissorState clips rasterization to Rect when Enabled.
type ScissorState struct {
	Rect    Rect
	Enabled bool
}

// StencilState is the stencil test configuration. The operations on
// pass and fail are always keep; only the test itself is configurable.
type StencilState struct {
	Compare CompareMode
	Value   int
}

// DefaultStencilState disables the stencil test.
func DefaultStencilState() StencilState {
	return StencilState{Compare: CompareAlways}
}

// Enabled reports whether the test can reject fragments.
func (s StencilState) Enabled() bool {
	return s.Compare != CompareAlways
}
