// Package texture models portable sampler state (filtering and wrapping)
// and caches what each texture's native sampler currently holds.
package texture

import "github.com/lovepotion/love/bimap"

// FilterMode is a minification, magnification or mipmap filter.
type FilterMode uint8

const (
	FilterLinear FilterMode = iota
	FilterNearest
	// FilterNone is only meaningful as a mipmap filter.
	FilterNone
)

// WrapMode is the addressing mode outside [0,1] texture coordinates.
type WrapMode uint8

const (
	WrapClamp WrapMode = iota
	// WrapClampZero clamps to a transparent black border.
	WrapClampZero
	WrapRepeat
	WrapMirroredRepeat
)

// MipMode is the native tri-state a (min, mipmap) filter pair reduces to.
type MipMode uint8

const (
	MipNone MipMode = iota
	MipNearest
	MipLinear
)

var filterModes = bimap.New(
	bimap.E("linear", FilterLinear),
	bimap.E("nearest", FilterNearest),
	bimap.E("none", FilterNone),
)

var wrapModes = bimap.New(
	bimap.E("clamp", WrapClamp),
	bimap.E("clampzero", WrapClampZero),
	bimap.E("repeat", WrapRepeat),
	bimap.E("mirroredrepeat", WrapMirroredRepeat),
)

func (f FilterMode) String() string {
	if name, ok := filterModes.ReverseFind(f); ok {
		return name
	}
	return "unknown"
}

func (w WrapMode) String() string {
	if name, ok := wrapModes.ReverseFind(w); ok {
		return name
	}
	return "unknown"
}

func (m MipMode) String() string {
	switch m {
	case MipNone:
		return "none"
	case MipNearest:
		return "nearest"
	case MipLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// FilterModeByName looks up a filter mode by its script name.
func FilterModeByName(name string) (FilterMode, bool) { return filterModes.Find(name) }

// FilterModeName returns the script name of f.
func FilterModeName(f FilterMode) (string, bool) { return filterModes.ReverseFind(f) }

// FilterModeNames returns every filter mode name in declaration order.
func FilterModeNames() []string { return filterModes.Names() }

// WrapModeByName looks up a wrap mode by its script name.
func WrapModeByName(name string) (WrapMode, bool) { return wrapModes.Find(name) }

// WrapModeName returns the script name of w.
func WrapModeName(w WrapMode) (string, bool) { return wrapModes.ReverseFind(w) }

// WrapModeNames returns every wrap mode name in declaration order.
func WrapModeNames() []string { return wrapModes.Names() }

// Filter is the complete filtering configuration of a sampler.
type Filter struct {
	Min        FilterMode
	Mag        FilterMode
	Mipmap     FilterMode
	Anisotropy float32
}

// DefaultFilter is linear min/mag filtering without mipmaps.
func DefaultFilter() Filter {
	return Filter{Min: FilterLinear, Mag: FilterLinear, Mipmap: FilterNone, Anisotropy: 1}
}

// Valid reports whether f can be handed to a driver. Min and Mag may not
// be FilterNone and anisotropy is at least 1.
func (f Filter) Valid() bool {
	return f.Min != FilterNone && f.Mag != FilterNone && f.Mipmap <= FilterNone && f.Anisotropy >= 1
}

// Mip returns MipFilter(f.Min, f.Mipmap).
func (f Filter) Mip() MipMode {
	return MipFilter(f.Min, f.Mipmap)
}

// Wrap is the addressing mode of each texture coordinate.
type Wrap struct {
	S, T, R WrapMode
}

// DefaultWrap clamps every coordinate.
func DefaultWrap() Wrap {
	return Wrap{S: WrapClamp, T: WrapClamp, R: WrapClamp}
}

// MipFilter combines a minification filter and a mipmap filter.
//
//	mipmap none          -> MipNone
//	nearest, nearest     -> MipNearest
//	nearest, linear      -> MipLinear
//	linear, nearest      -> MipNearest
//	linear, linear       -> MipLinear
//
// Any other combination falls back to MipLinear.
func MipFilter(minFilter, mipmap FilterMode) MipMode {
	if mipmap == FilterNone {
		return MipNone
	}
	switch {
	case minFilter == FilterNearest && mipmap == FilterNearest:
		return MipNearest
	case minFilter == FilterNearest && mipmap == FilterLinear:
		return MipLinear
	case minFilter == FilterLinear && mipmap == FilterNearest:
		return MipNearest
	case minFilter == FilterLinear && mipmap == FilterLinear:
		return MipLinear
	}
	return MipLinear
}
