package renderstate

import "fmt"

// BlendState is the fixed-function blend configuration of one draw.
//
// When Enabled is false the factor and operation fields are ignored by
// drivers but are kept as is, so two disabled states with different factors
// compare unequal. The zero value is not the default state; use
// DefaultBlendState.
type BlendState struct {
	OperationRGB BlendOperation
	OperationA   BlendOperation
	SrcFactorRGB BlendFactor
	SrcFactorA   BlendFactor
	DstFactorRGB BlendFactor
	DstFactorA   BlendFactor
	Enabled      bool
}

// DefaultBlendState returns the identity state: source replaces
// destination, blending disabled.
func DefaultBlendState() BlendState {
	return BlendState{
		OperationRGB: OpAdd,
		OperationA:   OpAdd,
		SrcFactorRGB: FactorOne,
		SrcFactorA:   FactorOne,
		DstFactorRGB: FactorZero,
		DstFactorA:   FactorZero,
	}
}

func (s BlendState) String() string {
	if !s.Enabled {
		return "BlendState{disabled}"
	}
	return fmt.Sprintf("BlendState{rgb: %v(%v, %v), a: %v(%v, %v)}",
		s.OperationRGB, s.SrcFactorRGB, s.DstFactorRGB,
		s.OperationA, s.SrcFactorA, s.DstFactorA)
}

// IsAlphaMultiplyBlendSupported reports whether mode has a distinct
// alpha-multiply variant. Modes without one produce the same state for
// either alpha mode.
func IsAlphaMultiplyBlendSupported(mode BlendMode) bool {
	switch mode {
	case BlendMultiply, BlendLighten, BlendDarken, BlendReplace, BlendNone, BlendCustom:
		return false
	default:
		return true
	}
}

// ComputeBlendState returns the canonical state of a preset.
// BlendCustom has no canonical state and yields DefaultBlendState.
func ComputeBlendState(mode BlendMode, alpha BlendAlphaMode) BlendState {
	s := DefaultBlendState()
	s.Enabled = mode != BlendNone && mode != BlendCustom

	switch mode {
	case BlendAlpha:
		s.SrcFactorRGB, s.SrcFactorA = FactorOne, FactorOne
		s.DstFactorRGB, s.DstFactorA = FactorOneMinusSrcAlpha, FactorOneMinusSrcAlpha
	case BlendMultiply:
		s.SrcFactorRGB, s.SrcFactorA = FactorDstColor, FactorDstColor
		s.DstFactorRGB, s.DstFactorA = FactorZero, FactorZero
	case BlendSubtract, BlendAdd:
		if mode == BlendSubtract {
			s.OperationRGB, s.OperationA = OpReverseSubtract, OpReverseSubtract
		}
		s.SrcFactorRGB, s.SrcFactorA = FactorOne, FactorZero
		s.DstFactorRGB, s.DstFactorA = FactorOne, FactorOne
	case BlendLighten:
		s.OperationRGB, s.OperationA = OpMax, OpMax
	case BlendDarken:
		s.OperationRGB, s.OperationA = OpMin, OpMin
	case BlendScreen:
		s.SrcFactorRGB, s.SrcFactorA = FactorOne, FactorOne
		s.DstFactorRGB, s.DstFactorA = FactorOneMinusSrcColor, FactorOneMinusSrcColor
	case BlendReplace:
		s.SrcFactorRGB, s.SrcFactorA = FactorOne, FactorOne
		s.DstFactorRGB, s.DstFactorA = FactorZero, FactorZero
	}

	// Alpha multiplication only rewrites an unmodified source RGB factor.
	if alpha == AlphaMultiply && IsAlphaMultiplyBlendSupported(mode) && s.SrcFactorRGB == FactorOne {
		s.SrcFactorRGB = FactorSrcAlpha
	}
	return s
}

// presetOrder is the scan order of ComputeBlendMode.
var presetOrder = [...]BlendMode{
	BlendAlpha, BlendAdd, BlendSubtract, BlendMultiply, BlendLighten,
	BlendDarken, BlendScreen, BlendReplace, BlendNone,
}

// ComputeBlendMode finds the preset whose canonical state equals s.
//
// Presets are tried in declaration order, the alpha-multiply variant
// before the premultiplied one. Modes without an alpha-multiply variant
// report AlphaPremultiplied. When nothing matches it returns BlendCustom
// and the alpha result is meaningless.
func ComputeBlendMode(s BlendState) (BlendMode, BlendAlphaMode) {
	for _, mode := range presetOrder {
		if IsAlphaMultiplyBlendSupported(mode) && ComputeBlendState(mode, AlphaMultiply) == s {
			return mode, AlphaMultiply
		}
		if ComputeBlendState(mode, AlphaPremultiplied) == s {
			return mode, AlphaPremultiplied
		}
	}
	return BlendCustom, AlphaPremultiplied
}
