package citro3d

import (
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

// PICA200 register values as exposed by libctru's gpu.h.

// BlendFactor is GPU_BLENDFACTOR.
type BlendFactor uint8

const (
	BlendZero                  BlendFactor = 0
	BlendOne                   BlendFactor = 1
	BlendSrcColor              BlendFactor = 2
	BlendOneMinusSrcColor      BlendFactor = 3
	BlendDstColor              BlendFactor = 4
	BlendOneMinusDstColor      BlendFactor = 5
	BlendSrcAlpha              BlendFactor = 6
	BlendOneMinusSrcAlpha      BlendFactor = 7
	BlendDstAlpha              BlendFactor = 8
	BlendOneMinusDstAlpha      BlendFactor = 9
	BlendConstantColor         BlendFactor = 10
	BlendOneMinusConstantColor BlendFactor = 11
	BlendConstantAlpha         BlendFactor = 12
	BlendOneMinusConstantAlpha BlendFactor = 13
	BlendSrcAlphaSaturate      BlendFactor = 14
)

// BlendEquation is GPU_BLENDEQUATION.
type BlendEquation uint8

const (
	EquationAdd             BlendEquation = 0
	EquationSubtract        BlendEquation = 1
	EquationReverseSubtract BlendEquation = 2
	EquationMin             BlendEquation = 3
	EquationMax             BlendEquation = 4
)

// TestFunc is GPU_TESTFUNC.
type TestFunc uint8

const (
	TestNever    TestFunc = 0
	TestAlways   TestFunc = 1
	TestEqual    TestFunc = 2
	TestNotEqual TestFunc = 3
	TestLess     TestFunc = 4
	TestLEqual   TestFunc = 5
	TestGreater  TestFunc = 6
	TestGEqual   TestFunc = 7
)

// WriteMask is GPU_WRITEMASK. The depth write bit shares the register
// with the color channels.
type WriteMask uint8

const (
	WriteRed   WriteMask = 0x01
	WriteGreen WriteMask = 0x02
	WriteBlue  WriteMask = 0x04
	WriteAlpha WriteMask = 0x08
	WriteDepth WriteMask = 0x10
	WriteColor WriteMask = 0x0F
	WriteAll   WriteMask = 0x1F
)

// StencilOp is GPU_STENCILOP.
type StencilOp uint8

// StencilKeep keeps the current stencil value.
const StencilKeep StencilOp = 0

// ScissorMode is GPU_SCISSORMODE.
type ScissorMode uint8

const (
	ScissorDisable ScissorMode = 0
	ScissorInvert  ScissorMode = 1
	ScissorNormal  ScissorMode = 3
)

// FilterParam is GPU_TEXTURE_FILTER_PARAM.
type FilterParam uint8

const (
	FilterNearest FilterParam = 0
	FilterLinear  FilterParam = 1
)

// WrapParam is GPU_TEXTURE_WRAP_PARAM.
type WrapParam uint8

const (
	WrapClampToEdge    WrapParam = 0
	WrapClampToBorder  WrapParam = 1
	WrapRepeat         WrapParam = 2
	WrapMirroredRepeat WrapParam = 3
)

// Factor translates a portable blend factor.
func Factor(f renderstate.BlendFactor) (BlendFactor, bool) {
	switch f {
	case renderstate.FactorZero:
		return BlendZero, true
	case renderstate.FactorOne:
		return BlendOne, true
	case renderstate.FactorSrcColor:
		return BlendSrcColor, true
	case renderstate.FactorOneMinusSrcColor:
		return BlendOneMinusSrcColor, true
	case renderstate.FactorSrcAlpha:
		return BlendSrcAlpha, true
	case renderstate.FactorOneMinusSrcAlpha:
		return BlendOneMinusSrcAlpha, true
	case renderstate.FactorDstColor:
		return BlendDstColor, true
	case renderstate.FactorOneMinusDstColor:
		return BlendOneMinusDstColor, true
	case renderstate.FactorDstAlpha:
		return BlendDstAlpha, true
	case renderstate.FactorOneMinusDstAlpha:
		return BlendOneMinusDstAlpha, true
	case renderstate.FactorSrcAlphaSaturated:
		return BlendSrcAlphaSaturate, true
	}
	return 0, false
}

// Equation translates a portable blend operation.
func Equation(o renderstate.BlendOperation) (BlendEquation, bool) {
	switch o {
	case renderstate.OpAdd:
		return EquationAdd, true
	case renderstate.OpSubtract:
		return EquationSubtract, true
	case renderstate.OpReverseSubtract:
		return EquationReverseSubtract, true
	case renderstate.OpMin:
		return EquationMin, true
	case renderstate.OpMax:
		return EquationMax, true
	}
	return 0, false
}

// Test translates a portable comparison predicate.
func Test(c renderstate.CompareMode) (TestFunc, bool) {
	switch c {
	case renderstate.CompareLess:
		return TestLess, true
	case renderstate.CompareLEqual:
		return TestLEqual, true
	case renderstate.CompareEqual:
		return TestEqual, true
	case renderstate.CompareGEqual:
		return TestGEqual, true
	case renderstate.CompareGreater:
		return TestGreater, true
	case renderstate.CompareNotEqual:
		return TestNotEqual, true
	case renderstate.CompareAlways:
		return TestAlways, true
	case renderstate.CompareNever:
		return TestNever, true
	}
	return 0, false
}

// Mask builds the combined color and depth write mask.
func Mask(m renderstate.ColorMask, depthWrite bool) WriteMask {
	w := WriteMask(m.Bits())
	if depthWrite {
		w |= WriteDepth
	}
	return w
}

// Filter translates a min or mag filter. FilterNone has no native value.
func Filter(f texture.FilterMode) (FilterParam, bool) {
	switch f {
	case texture.FilterNearest:
		return FilterNearest, true
	case texture.FilterLinear:
		return FilterLinear, true
	}
	return 0, false
}

// MipFilter translates the combined mip tri-state. MipNone reports false:
// mipmapping stays off and no mip filter is programmed.
func MipFilter(m texture.MipMode) (FilterParam, bool) {
	switch m {
	case texture.MipNearest:
		return FilterNearest, true
	case texture.MipLinear:
		return FilterLinear, true
	}
	return 0, false
}

// Wrap translates a portable wrap mode.
func Wrap(w texture.WrapMode) (WrapParam, bool) {
	switch w {
	case texture.WrapClamp:
		return WrapClampToEdge, true
	case texture.WrapClampZero:
		return WrapClampToBorder, true
	case texture.WrapRepeat:
		return WrapRepeat, true
	case texture.WrapMirroredRepeat:
		return WrapMirroredRepeat, true
	}
	return 0, false
}
