package gx2

import (
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

// BlendMode is GX2BlendMode, a blend factor.
type BlendMode uint32

const (
	BlendModeZero        BlendMode = 0
	BlendModeOne         BlendMode = 1
	BlendModeSrcColor    BlendMode = 2
	BlendModeInvSrcColor BlendMode = 3
	BlendModeSrcAlpha    BlendMode = 4
	BlendModeInvSrcAlpha BlendMode = 5
	BlendModeDstAlpha    BlendMode = 6
	BlendModeInvDstAlpha BlendMode = 7
	BlendModeDstColor    BlendMode = 8
	BlendModeInvDstColor BlendMode = 9
	BlendModeSrcAlphaSat BlendMode = 10
)

// BlendCombineMode is GX2BlendCombineMode.
type BlendCombineMode uint32

const (
	CombineAdd    BlendCombineMode = 0
	CombineSub    BlendCombineMode = 1
	CombineMin    BlendCombineMode = 2
	CombineMax    BlendCombineMode = 3
	CombineRevSub BlendCombineMode = 4
)

// CompareFunction is GX2CompareFunction.
type CompareFunction uint32

const (
	CompareNever    CompareFunction = 0
	CompareLess     CompareFunction = 1
	CompareEqual    CompareFunction = 2
	CompareLEqual   CompareFunction = 3
	CompareGreater  CompareFunction = 4
	CompareNotEqual CompareFunction = 5
	CompareGEqual   CompareFunction = 6
	CompareAlways   CompareFunction = 7
)

// StencilFunction is GX2StencilFunction.
type StencilFunction uint32

// StencilKeep keeps the current stencil value.
const StencilKeep StencilFunction = 0

// ChannelMask is GX2ChannelMask.
type ChannelMask uint8

const (
	ChannelR    ChannelMask = 1
	ChannelG    ChannelMask = 2
	ChannelB    ChannelMask = 4
	ChannelA    ChannelMask = 8
	ChannelRGBA ChannelMask = 0xF
)

// XYFilter is GX2TexXYFilterMode.
type XYFilter uint32

const (
	XYFilterPoint  XYFilter = 0
	XYFilterLinear XYFilter = 1
)

// MipFilter is GX2TexMipFilterMode.
type MipFilter uint32

const (
	MipFilterNone   MipFilter = 0
	MipFilterPoint  MipFilter = 1
	MipFilterLinear MipFilter = 2
)

// ClampMode is GX2TexClampMode.
type ClampMode uint32

const (
	ClampWrap   ClampMode = 0
	ClampMirror ClampMode = 1
	ClampClamp  ClampMode = 2
	ClampBorder ClampMode = 6
)

// AnisoRatio is GX2TexAnisoRatio.
type AnisoRatio uint32

const (
	Aniso1To1  AnisoRatio = 0
	Aniso2To1  AnisoRatio = 1
	Aniso4To1  AnisoRatio = 2
	Aniso8To1  AnisoRatio = 3
	Aniso16To1 AnisoRatio = 4
)

// Factor translates a portable blend factor.
func Factor(f renderstate.BlendFactor) (BlendMode, bool) {
	switch f {
	case renderstate.FactorZero:
		return BlendModeZero, true
	case renderstate.FactorOne:
		return BlendModeOne, true
	case renderstate.FactorSrcColor:
		return BlendModeSrcColor, true
	case renderstate.FactorOneMinusSrcColor:
		return BlendModeInvSrcColor, true
	case renderstate.FactorSrcAlpha:
		return BlendModeSrcAlpha, true
	case renderstate.FactorOneMinusSrcAlpha:
		return BlendModeInvSrcAlpha, true
	case renderstate.FactorDstColor:
		return BlendModeDstColor, true
	case renderstate.FactorOneMinusDstColor:
		return BlendModeInvDstColor, true
	case renderstate.FactorDstAlpha:
		return BlendModeDstAlpha, true
	case renderstate.FactorOneMinusDstAlpha:
		return BlendModeInvDstAlpha, true
	case renderstate.FactorSrcAlphaSaturated:
		return BlendModeSrcAlphaSat, true
	}
	return 0, false
}

// Combine translates a portable blend operation.
func Combine(o renderstate.BlendOperation) (BlendCombineMode, bool) {
	switch o {
	case renderstate.OpAdd:
		return CombineAdd, true
	case renderstate.OpSubtract:
		return CombineSub, true
	case renderstate.OpReverseSubtract:
		return CombineRevSub, true
	case renderstate.OpMin:
		return CombineMin, true
	case renderstate.OpMax:
		return CombineMax, true
	}
	return 0, false
}

// Compare translates a portable comparison predicate.
func Compare(c renderstate.CompareMode) (CompareFunction, bool) {
	switch c {
	case renderstate.CompareLess:
		return CompareLess, true
	case renderstate.CompareLEqual:
		return CompareLEqual, true
	case renderstate.CompareEqual:
		return CompareEqual, true
	case renderstate.CompareGEqual:
		return CompareGEqual, true
	case renderstate.CompareGreater:
		return CompareGreater, true
	case renderstate.CompareNotEqual:
		return CompareNotEqual, true
	case renderstate.CompareAlways:
		return CompareAlways, true
	case renderstate.CompareNever:
		return CompareNever, true
	}
	return 0, false
}

// Channels translates a color mask.
func Channels(m renderstate.ColorMask) ChannelMask {
	return ChannelMask(m.Bits())
}

// Filter translates a min or mag filter.
func Filter(f texture.FilterMode) (XYFilter, bool) {
	switch f {
	case texture.FilterNearest:
		return XYFilterPoint, true
	case texture.FilterLinear:
		return XYFilterLinear, true
	}
	return 0, false
}

// Mip translates the combined mip tri-state.
func Mip(m texture.MipMode) MipFilter {
	switch m {
	case texture.MipNone:
		return MipFilterNone
	case texture.MipNearest:
		return MipFilterPoint
	default:
		return MipFilterLinear
	}
}

// Clamp translates a portable wrap mode.
func Clamp(w texture.WrapMode) (ClampMode, bool) {
	switch w {
	case texture.WrapClamp:
		return ClampClamp, true
	case texture.WrapClampZero:
		return ClampBorder, true
	case texture.WrapRepeat:
		return ClampWrap, true
	case texture.WrapMirroredRepeat:
		return ClampMirror, true
	}
	return 0, false
}

// Aniso rounds a maximum anisotropy down to the nearest supported ratio.
func Aniso(a float32) AnisoRatio {
	switch {
	case a >= 16:
		return Aniso16To1
	case a >= 8:
		return Aniso8To1
	case a >= 4:
		return Aniso4To1
	case a >= 2:
		return Aniso2To1
	default:
		return Aniso1To1
	}
}
