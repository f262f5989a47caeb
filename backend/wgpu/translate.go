package wgpu

import (
	"github.com/gogpu/gputypes"

	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

var blendFactors = map[renderstate.BlendFactor]gputypes.BlendFactor{
	renderstate.FactorZero:              gputypes.BlendFactorZero,
	renderstate.FactorOne:               gputypes.BlendFactorOne,
	renderstate.FactorSrcColor:          gputypes.BlendFactorSrc,
	renderstate.FactorOneMinusSrcColor:  gputypes.BlendFactorOneMinusSrc,
	renderstate.FactorSrcAlpha:          gputypes.BlendFactorSrcAlpha,
	renderstate.FactorOneMinusSrcAlpha:  gputypes.BlendFactorOneMinusSrcAlpha,
	renderstate.FactorDstColor:          gputypes.BlendFactorDst,
	renderstate.FactorOneMinusDstColor:  gputypes.BlendFactorOneMinusDst,
	renderstate.FactorDstAlpha:          gputypes.BlendFactorDstAlpha,
	renderstate.FactorOneMinusDstAlpha:  gputypes.BlendFactorOneMinusDstAlpha,
	renderstate.FactorSrcAlphaSaturated: gputypes.BlendFactorSrcAlphaSaturated,
}

var blendOperations = map[renderstate.BlendOperation]gputypes.BlendOperation{
	renderstate.OpAdd:             gputypes.BlendOperationAdd,
	renderstate.OpSubtract:        gputypes.BlendOperationSubtract,
	renderstate.OpReverseSubtract: gputypes.BlendOperationReverseSubtract,
	renderstate.OpMin:             gputypes.BlendOperationMin,
	renderstate.OpMax:             gputypes.BlendOperationMax,
}

var compareFunctions = map[renderstate.CompareMode]gputypes.CompareFunction{
	renderstate.CompareLess:     gputypes.CompareFunctionLess,
	renderstate.CompareLEqual:   gputypes.CompareFunctionLessEqual,
	renderstate.CompareEqual:    gputypes.CompareFunctionEqual,
	renderstate.CompareGEqual:   gputypes.CompareFunctionGreaterEqual,
	renderstate.CompareGreater:  gputypes.CompareFunctionGreater,
	renderstate.CompareNotEqual: gputypes.CompareFunctionNotEqual,
	renderstate.CompareAlways:   gputypes.CompareFunctionAlways,
	renderstate.CompareNever:    gputypes.CompareFunctionNever,
}

// Factor translates a portable blend factor.
func Factor(f renderstate.BlendFactor) (gputypes.BlendFactor, bool) {
	v, ok := blendFactors[f]
	return v, ok
}

// Operation translates a portable blend operation.
func Operation(o renderstate.BlendOperation) (gputypes.BlendOperation, bool) {
	v, ok := blendOperations[o]
	return v, ok
}

// Compare translates a portable comparison predicate.
func Compare(c renderstate.CompareMode) (gputypes.CompareFunction, bool) {
	v, ok := compareFunctions[c]
	return v, ok
}

// Blend translates a blend state. It returns nil for a disabled state,
// which is how WebGPU color targets express "no blending".
func Blend(s renderstate.BlendState) (*gputypes.BlendState, bool) {
	if !s.Enabled {
		return nil, true
	}
	srcRGB, ok1 := Factor(s.SrcFactorRGB)
	dstRGB, ok2 := Factor(s.DstFactorRGB)
	opRGB, ok3 := Operation(s.OperationRGB)
	srcA, ok4 := Factor(s.SrcFactorA)
	dstA, ok5 := Factor(s.DstFactorA)
	opA, ok6 := Operation(s.OperationA)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return nil, false
	}
	return &gputypes.BlendState{
		Color: gputypes.BlendComponent{SrcFactor: srcRGB, DstFactor: dstRGB, Operation: opRGB},
		Alpha: gputypes.BlendComponent{SrcFactor: srcA, DstFactor: dstA, Operation: opA},
	}, true
}

// WriteMask translates a color mask.
func WriteMask(m renderstate.ColorMask) gputypes.ColorWriteMask {
	var w gputypes.ColorWriteMask
	if m.R {
		w |= gputypes.ColorWriteMaskRed
	}
	if m.G {
		w |= gputypes.ColorWriteMaskGreen
	}
	if m.B {
		w |= gputypes.ColorWriteMaskBlue
	}
	if m.A {
		w |= gputypes.ColorWriteMaskAlpha
	}
	return w
}

// FilterMode translates a min or mag filter.
func FilterMode(f texture.FilterMode) (gputypes.FilterMode, bool) {
	switch f {
	case texture.FilterNearest:
		return gputypes.FilterModeNearest, true
	case texture.FilterLinear:
		return gputypes.FilterModeLinear, true
	}
	return gputypes.FilterModeUndefined, false
}

// AddressMode translates a wrap mode. ClampZero has no WebGPU equivalent;
// it maps to clamp-to-edge and reports exact as false.
func AddressMode(w texture.WrapMode) (mode gputypes.AddressMode, exact, ok bool) {
	switch w {
	case texture.WrapClamp:
		return gputypes.AddressModeClampToEdge, true, true
	case texture.WrapClampZero:
		return gputypes.AddressModeClampToEdge, false, true
	case texture.WrapRepeat:
		return gputypes.AddressModeRepeat, true, true
	case texture.WrapMirroredRepeat:
		return gputypes.AddressModeMirrorRepeat, true, true
	}
	return gputypes.AddressModeUndefined, false, false
}
