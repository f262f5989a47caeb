// Package wgpu translates portable render state into WebGPU terms using
// gogpu/gputypes and the gogpu/wgpu HAL.
//
// WebGPU bakes blend, depth-stencil and write-mask state into render
// pipelines, so this backend does not push state to a device. It keeps the
// current pipeline-relevant state in a [PipelineState] that a renderer
// reads when it builds or looks up a pipeline:
//
//	b := wgpu.New(device)
//	tracker := renderstate.NewTracker(b)
//	tracker.SetBlendMode(renderstate.BlendAdd, renderstate.AlphaMultiply)
//	tracker.Flush()
//
//	target := b.State().ColorTarget(gputypes.TextureFormatBGRA8Unorm)
//
// Scissor rectangles and the stencil reference are dynamic render-pass
// state and are read from the same snapshot.
//
// # Samplers
//
// Samplers are immutable HAL objects. Changing the filter or wrap of a
// [Texture] creates a new sampler and destroys the old one. Creation
// failures wrap [love.ErrResourceExhausted].
//
// WebGPU has no clamp-to-border address mode; [texture.WrapClampZero] falls
// back to clamp-to-edge with a warning.
//
// # Device Providers
//
// [NewFromProvider] accepts a gpucontext.DeviceProvider that also exposes
// its HAL device through a HalDevice() any method, the convention shared
// by gogpu hosts.
//
// # Thread Safety
//
// Backend is not safe for concurrent use. Render state belongs to the
// thread that records draws.
package wgpu
