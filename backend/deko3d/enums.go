package deko3d

import (
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

// BlendFactor is DkBlendFactor.
type BlendFactor uint32

const (
	BlendFactorZero             BlendFactor = 1
	BlendFactorOne              BlendFactor = 2
	BlendFactorSrcColor         BlendFactor = 3
	BlendFactorInvSrcColor      BlendFactor = 4
	BlendFactorSrcAlpha         BlendFactor = 5
	BlendFactorInvSrcAlpha      BlendFactor = 6
	BlendFactorDstAlpha         BlendFactor = 7
	BlendFactorInvDstAlpha      BlendFactor = 8
	BlendFactorDstColor         BlendFactor = 9
	BlendFactorInvDstColor      BlendFactor = 10
	BlendFactorSrcAlphaSaturate BlendFactor = 11
)

// BlendOp is DkBlendOp.
type BlendOp uint32

const (
	BlendOpAdd    BlendOp = 1
	BlendOpSub    BlendOp = 2
	BlendOpRevSub BlendOp = 3
	BlendOpMin    BlendOp = 4
	BlendOpMax    BlendOp = 5
)

// CompareOp is DkCompareOp.
type CompareOp uint32

const (
	CompareOpNever    CompareOp = 1
	CompareOpLess     CompareOp = 2
	CompareOpEqual    CompareOp = 3
	CompareOpLequal   CompareOp = 4
	CompareOpGreater  CompareOp = 5
	CompareOpNotEqual CompareOp = 6
	CompareOpGequal   CompareOp = 7
	CompareOpAlways   CompareOp = 8
)

// StencilOp is DkStencilOp.
type StencilOp uint32

// StencilOpKeep keeps the current stencil value.
const StencilOpKeep StencilOp = 1

// ColorMask is DkColorMask.
type ColorMask uint32

const (
	ColorMaskR    ColorMask = 1
	ColorMaskG    ColorMask = 2
	ColorMaskB    ColorMask = 4
	ColorMaskA    ColorMask = 8
	ColorMaskRGBA ColorMask = 0xF
)

// Filter is DkFilter.
type Filter uint32

const (
	FilterNearest Filter = 1
	FilterLinear  Filter = 2
)

// MipFilter is DkMipFilter.
type MipFilter uint32

const (
	MipFilterNone    MipFilter = 1
	MipFilterNearest MipFilter = 2
	MipFilterLinear  MipFilter = 3
)

// WrapMode is DkWrapMode.
type WrapMode uint32

const (
	WrapModeRepeat         WrapMode = 0
	WrapModeMirroredRepeat WrapMode = 1
	WrapModeClampToEdge    WrapMode = 2
	WrapModeClampToBorder  WrapMode = 3
)

var factors = map[renderstate.BlendFactor]BlendFactor{
	renderstate.FactorZero:              BlendFactorZero,
	renderstate.FactorOne:               BlendFactorOne,
	renderstate.FactorSrcColor:          BlendFactorSrcColor,
	renderstate.FactorOneMinusSrcColor:  BlendFactorInvSrcColor,
	renderstate.FactorSrcAlpha:          BlendFactorSrcAlpha,
	renderstate.FactorOneMinusSrcAlpha:  BlendFactorInvSrcAlpha,
	renderstate.FactorDstColor:          BlendFactorDstColor,
	renderstate.FactorOneMinusDstColor:  BlendFactorInvDstColor,
	renderstate.FactorDstAlpha:          BlendFactorDstAlpha,
	renderstate.FactorOneMinusDstAlpha:  BlendFactorInvDstAlpha,
	renderstate.FactorSrcAlphaSaturated: BlendFactorSrcAlphaSaturate,
}

var ops = map[renderstate.BlendOperation]BlendOp{
	renderstate.OpAdd:             BlendOpAdd,
	renderstate.OpSubtract:        BlendOpSub,
	renderstate.OpReverseSubtract: BlendOpRevSub,
	renderstate.OpMin:             BlendOpMin,
	renderstate.OpMax:             BlendOpMax,
}

var compares = map[renderstate.CompareMode]CompareOp{
	renderstate.CompareLess:     CompareOpLess,
	renderstate.CompareLEqual:   CompareOpLequal,
	renderstate.CompareEqual:    CompareOpEqual,
	renderstate.CompareGEqual:   CompareOpGequal,
	renderstate.CompareGreater:  CompareOpGreater,
	renderstate.CompareNotEqual: CompareOpNotEqual,
	renderstate.CompareAlways:   CompareOpAlways,
	renderstate.CompareNever:    CompareOpNever,
}

var wraps = map[texture.WrapMode]WrapMode{
	texture.WrapClamp:          WrapModeClampToEdge,
	texture.WrapClampZero:      WrapModeClampToBorder,
	texture.WrapRepeat:         WrapModeRepeat,
	texture.WrapMirroredRepeat: WrapModeMirroredRepeat,
}

// Factor translates a portable blend factor.
func Factor(f renderstate.BlendFactor) (BlendFactor, bool) {
	v, ok := factors[f]
	return v, ok
}

// Op translates a portable blend operation.
func Op(o renderstate.BlendOperation) (BlendOp, bool) {
	v, ok := ops[o]
	return v, ok
}

// Compare translates a portable comparison predicate.
func Compare(c renderstate.CompareMode) (CompareOp, bool) {
	v, ok := compares[c]
	return v, ok
}

// Mask translates a color mask. DkColorMask uses the same bit order.
func Mask(m renderstate.ColorMask) ColorMask {
	return ColorMask(m.Bits())
}

// FilterFor translates a min or mag filter.
func FilterFor(f texture.FilterMode) (Filter, bool) {
	switch f {
	case texture.FilterNearest:
		return FilterNearest, true
	case texture.FilterLinear:
		return FilterLinear, true
	}
	return 0, false
}

// Mip translates the combined mip tri-state.
func Mip(m texture.MipMode) MipFilter {
	switch m {
	case texture.MipNone:
		return MipFilterNone
	case texture.MipNearest:
		return MipFilterNearest
	default:
		return MipFilterLinear
	}
}

// Wrap translates a portable wrap mode.
func Wrap(w texture.WrapMode) (WrapMode, bool) {
	v, ok := wraps[w]
	return v, ok
}
