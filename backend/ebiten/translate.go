package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

// Factor translates a portable blend factor. Ebitengine has no saturated
// source alpha factor.
func Factor(f renderstate.BlendFactor) (ebiten.BlendFactor, bool) {
	switch f {
	case renderstate.FactorZero:
		return ebiten.BlendFactorZero, true
	case renderstate.FactorOne:
		return ebiten.BlendFactorOne, true
	case renderstate.FactorSrcColor:
		return ebiten.BlendFactorSourceColor, true
	case renderstate.FactorOneMinusSrcColor:
		return ebiten.BlendFactorOneMinusSourceColor, true
	case renderstate.FactorSrcAlpha:
		return ebiten.BlendFactorSourceAlpha, true
	case renderstate.FactorOneMinusSrcAlpha:
		return ebiten.BlendFactorOneMinusSourceAlpha, true
	case renderstate.FactorDstColor:
		return ebiten.BlendFactorDestinationColor, true
	case renderstate.FactorOneMinusDstColor:
		return ebiten.BlendFactorOneMinusDestinationColor, true
	case renderstate.FactorDstAlpha:
		return ebiten.BlendFactorDestinationAlpha, true
	case renderstate.FactorOneMinusDstAlpha:
		return ebiten.BlendFactorOneMinusDestinationAlpha, true
	}
	return ebiten.BlendFactorDefault, false
}

// Operation translates a portable blend operation.
func Operation(o renderstate.BlendOperation) (ebiten.BlendOperation, bool) {
	switch o {
	case renderstate.OpAdd:
		return ebiten.BlendOperationAdd, true
	case renderstate.OpSubtract:
		return ebiten.BlendOperationSubtract, true
	case renderstate.OpReverseSubtract:
		return ebiten.BlendOperationReverseSubtract, true
	case renderstate.OpMin:
		return ebiten.BlendOperationMin, true
	case renderstate.OpMax:
		return ebiten.BlendOperationMax, true
	}
	return ebiten.BlendOperationAdd, false
}

// Blend translates a blend state. A disabled state is BlendCopy.
func Blend(s renderstate.BlendState) (ebiten.Blend, bool) {
	if !s.Enabled {
		return ebiten.BlendCopy, true
	}
	srcRGB, ok1 := Factor(s.SrcFactorRGB)
	srcA, ok2 := Factor(s.SrcFactorA)
	dstRGB, ok3 := Factor(s.DstFactorRGB)
	dstA, ok4 := Factor(s.DstFactorA)
	opRGB, ok5 := Operation(s.OperationRGB)
	opA, ok6 := Operation(s.OperationA)
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return ebiten.Blend{}, false
	}
	return ebiten.Blend{
		BlendFactorSourceRGB:        srcRGB,
		BlendFactorSourceAlpha:      srcA,
		BlendFactorDestinationRGB:   dstRGB,
		BlendFactorDestinationAlpha: dstA,
		BlendOperationRGB:           opRGB,
		BlendOperationAlpha:         opA,
	}, true
}

// Filter translates a min or mag filter.
func Filter(f texture.FilterMode) (ebiten.Filter, bool) {
	switch f {
	case texture.FilterNearest:
		return ebiten.FilterNearest, true
	case texture.FilterLinear:
		return ebiten.FilterLinear, true
	}
	return ebiten.FilterNearest, false
}

// Address translates a wrap mode. Clamping maps to AddressUnsafe, which
// samples edge texels inside the source region. Mirrored repeat has no
// equivalent.
func Address(w texture.WrapMode) (ebiten.Address, bool) {
	switch w {
	case texture.WrapClamp:
		return ebiten.AddressUnsafe, true
	case texture.WrapClampZero:
		return ebiten.AddressClampToZero, true
	case texture.WrapRepeat:
		return ebiten.AddressRepeat, true
	}
	return ebiten.AddressUnsafe, false
}
