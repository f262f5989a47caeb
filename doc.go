// Package love is the render-state and input normalization core of a
// LÖVE-derived game runtime that targets the Nintendo 3DS, Wii U and Switch
// as well as desktop platforms.
//
// # Overview
//
// The core sits between an embedded scripting layer and the native SDKs.
// It describes the pipeline state a renderer hands to a graphics driver and
// turns heterogeneous controllers into one gamepad abstraction:
//
//   - bimap: immutable name/value tables used to validate script strings
//   - renderstate: blend, depth, color mask, scissor and stencil models
//   - texture: sampler filter/wrap model and a per-texture sampler cache
//   - backend: translations of the portable state into native enums
//     (citro3d, deko3d, gx2, wgpu, ebiten)
//   - joystick: the Joystick contract and one variant per platform family
//   - hid: the per-tick event pump producing pressed/released/axis/touch events
//   - system: power, network and media-type constants
//   - platform: build-tag selected bundle of the active backends
//   - script: the constant tables and input callbacks as seen from Lua
//
// The lovepad command in cmd/lovepad wires these together on desktop and
// prints every normalized input event.
//
// # Threading
//
// Joysticks are single-threaded: Update and the queries that follow it for
// a tick must run on the same goroutine. Constant tables are read-only and
// may be shared freely.
//
// # Logging
//
// The core is silent by default. Call [SetLogger] to route diagnostics
// to a [log/slog] logger.
package love

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
