// Package backend provides the pluggable graphics backend abstraction.
//
// A backend receives portable render state (see package renderstate) and
// translates it into the native enums of one graphics API. Each
// sub-package implements one API:
//
//   - citro3d: Nintendo 3DS PICA200 via citro3d
//   - deko3d: Nintendo Switch via deko3d
//   - gx2: Nintendo Wii U via GX2
//   - wgpu: desktop WebGPU via gogpu/wgpu
//   - ebiten: desktop via ebiten
//
// # Backend Registration
//
// Backends are constructed around a native device and registered
// explicitly, usually by package platform:
//
//	b := citro3d.New(gpu)
//	backend.Register(b)
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	b, err := backend.Default()
//	if err != nil {
//		log.Fatal(err)
//	}
//	tracker := renderstate.NewTracker(b)
//
// Translation helpers in every sub-package return a comma-ok result: a
// portable value the native API cannot express reports false and the
// backend keeps its previous native state.
package backend
