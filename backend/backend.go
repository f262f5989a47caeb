package backend

import (
	"errors"

	"github.com/lovepotion/love/renderstate"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Backend names, in selection priority order.
const (
	NameCitro3D = "citro3d"
	NameDeko3D  = "deko3d"
	NameGX2     = "gx2"
	NameWGPU    = "wgpu"
	NameEbiten  = "ebiten"
)

// Backend translates portable render state into the native enums of one
// graphics API and pushes it to the device.
//
// Backends are registered via Register() and are selected via
// Get() or Default().
type Backend interface {
	// Name returns the backend identifier (e.g., "citro3d", "wgpu").
	Name() string

	renderstate.Driver
}
