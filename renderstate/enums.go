package renderstate

import "github.com/lovepotion/love/bimap"

// BlendMode is a named blend preset.
type BlendMode uint8

const (
	BlendAlpha BlendMode = iota
	BlendAdd
	BlendSubtract
	BlendMultiply
	BlendLighten
	BlendDarken
	BlendScreen
	BlendReplace
	BlendNone
	// BlendCustom marks a BlendState that matches no preset.
	BlendCustom
)

// BlendAlphaMode selects how a preset treats the source alpha.
type BlendAlphaMode uint8

const (
	// AlphaMultiply multiplies source RGB by source alpha in the blend unit.
	AlphaMultiply BlendAlphaMode = iota
	// AlphaPremultiplied expects colors whose RGB is already multiplied.
	AlphaPremultiplied
)

// BlendFactor is a source or destination blend coefficient.
type BlendFactor uint8

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstColor
	FactorOneMinusDstColor
	FactorDstAlpha
	FactorOneMinusDstAlpha
	FactorSrcAlphaSaturated
)

// BlendOperation combines the weighted source and destination.
type BlendOperation uint8

const (
	OpAdd BlendOperation = iota
	OpSubtract
	OpReverseSubtract
	OpMin
	OpMax
)

// CompareMode is a depth or stencil comparison predicate.
type CompareMode uint8

const (
	CompareLess CompareMode = iota
	CompareLEqual
	CompareEqual
	CompareGEqual
	CompareGreater
	CompareNotEqual
	CompareAlways
	CompareNever
)

var blendModes = bimap.New(
	bimap.E("alpha", BlendAlpha),
	bimap.E("add", BlendAdd),
	bimap.E("subtract", BlendSubtract),
	bimap.E("multiply", BlendMultiply),
	bimap.E("lighten", BlendLighten),
	bimap.E("darken", BlendDarken),
	bimap.E("screen", BlendScreen),
	bimap.E("replace", BlendReplace),
	bimap.E("none", BlendNone),
	bimap.E("custom", BlendCustom),
)

var blendAlphaModes = bimap.New(
	bimap.E("alphamultiply", AlphaMultiply),
	bimap.E("premultiplied", AlphaPremultiplied),
)

var blendFactors = bimap.New(
	bimap.E("zero", FactorZero),
	bimap.E("one", FactorOne),
	bimap.E("srccolor", FactorSrcColor),
	bimap.E("oneminussrccolor", FactorOneMinusSrcColor),
	bimap.E("srcalpha", FactorSrcAlpha),
	bimap.E("oneminussrcalpha", FactorOneMinusSrcAlpha),
	bimap.E("dstcolor", FactorDstColor),
	bimap.E("oneminusdstcolor", FactorOneMinusDstColor),
	bimap.E("dstalpha", FactorDstAlpha),
	bimap.E("oneminusdstalpha", FactorOneMinusDstAlpha),
	bimap.E("srcalphasat", FactorSrcAlphaSaturated),
)

var blendOperations = bimap.New(
	bimap.E("add", OpAdd),
	bimap.E("subtract", OpSubtract),
	bimap.E("reversesubtract", OpReverseSubtract),
	bimap.E("min", OpMin),
	bimap.E("max", OpMax),
)

var compareModes = bimap.New(
	bimap.E("less", CompareLess),
	bimap.E("lequal", CompareLEqual),
	bimap.E("equal", CompareEqual),
	bimap.E("gequal", CompareGEqual),
	bimap.E("greater", CompareGreater),
	bimap.E("notequal", CompareNotEqual),
	bimap.E("always", CompareAlways),
	bimap.E("never", CompareNever),
)

func nameOr[T comparable](m *bimap.Map[string, T], v T) string {
	if name, ok := m.ReverseFind(v); ok {
		return name
	}
	return "unknown"
}

// String returns the script-facing name of the mode.
func (m BlendMode) String() string { return nameOr(blendModes, m) }

// String returns the script-facing name of the alpha mode.
func (a BlendAlphaMode) String() string { return nameOr(blendAlphaModes, a) }

// String returns the script-facing name of the factor.
func (f BlendFactor) String() string { return nameOr(blendFactors, f) }

// String returns the script-facing name of the operation.
func (o BlendOperation) String() string { return nameOr(blendOperations, o) }

// String returns the script-facing name of the predicate.
func (c CompareMode) String() string { return nameOr(compareModes, c) }

// BlendModeByName looks up a blend mode by its script name.
func BlendModeByName(name string) (BlendMode, bool) { return blendModes.Find(name) }

// BlendModeName returns the script name of m.
func BlendModeName(m BlendMode) (string, bool) { return blendModes.ReverseFind(m) }

// BlendModeNames returns every blend mode name in declaration order.
func BlendModeNames() []string { return blendModes.Names() }

// BlendAlphaModeByName looks up an alpha mode by its script name.
func BlendAlphaModeByName(name string) (BlendAlphaMode, bool) { return blendAlphaModes.Find(name) }

// BlendAlphaModeName returns the script name of a.
func BlendAlphaModeName(a BlendAlphaMode) (string, bool) { return blendAlphaModes.ReverseFind(a) }

// BlendAlphaModeNames returns every alpha mode name in declaration order.
func BlendAlphaModeNames() []string { return blendAlphaModes.Names() }

// BlendFactorByName looks up a blend factor by its script name.
func BlendFactorByName(name string) (BlendFactor, bool) { return blendFactors.Find(name) }

// BlendFactorName returns the script name of f.
func BlendFactorName(f BlendFactor) (string, bool) { return blendFactors.ReverseFind(f) }

// BlendFactorNames returns every blend factor name in declaration order.
func BlendFactorNames() []string { return blendFactors.Names() }

// BlendOperationByName looks up a blend operation by its script name.
func BlendOperationByName(name string) (BlendOperation, bool) { return blendOperations.Find(name) }

// BlendOperationName returns the script name of o.
func BlendOperationName(o BlendOperation) (string, bool) { return blendOperations.ReverseFind(o) }

// BlendOperationNames returns every blend operation name in declaration order.
func BlendOperationNames() []string { return blendOperations.Names() }

// CompareModeByName looks up a comparison predicate by its script name.
func CompareModeByName(name string) (CompareMode, bool) { return compareModes.Find(name) }

// CompareModeName returns the script name of c.
func CompareModeName(c CompareMode) (string, bool) { return compareModes.ReverseFind(c) }

// CompareModeNames returns every predicate name in declaration order.
func CompareModeNames() []string { return compareModes.Names() }
