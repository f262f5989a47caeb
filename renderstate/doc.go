// Package renderstate models the portable pipeline state a renderer hands
// to a graphics driver: blending, depth test, color write mask, scissor
// rectangle and stencil test.
//
// All states are small comparable value types. Named presets map to
// canonical blend states through ComputeBlendState and back through
// ComputeBlendMode:
//
//	s := renderstate.ComputeBlendState(renderstate.BlendAdd, renderstate.AlphaMultiply)
//	mode, alpha := renderstate.ComputeBlendMode(s) // BlendAdd, AlphaMultiply
//
// Three presets have no alpha-multiply variant (multiply, lighten and
// darken) and replace ignores the alpha mode. For those, both alpha modes
// produce one state and the reverse mapping reports AlphaPremultiplied.
//
// A Tracker sits in front of a Driver and only forwards state that
// differs from what the driver last received.
package renderstate
