package renderstate

import "github.com/lovepotion/love"

// Driver applies pipeline state to a graphics device.
// Implementations live in the backend packages.
type Driver interface {
	ApplyBlendState(BlendState)
	ApplyDepthState(DepthState)
	ApplyColorMask(ColorMask)
	ApplyScissor(ScissorState)
	ApplyStencil(StencilState)
}

type dirtyFlags uint8

const (
	dirtyBlend dirtyFlags = 1 << iota
	dirtyDepth
	dirtyColorMask
	dirtyScissor
	dirtyStencil

	dirtyAll = dirtyBlend | dirtyDepth | dirtyColorMask | dirtyScissor | dirtyStencil
)

// Tracker caches the state last pushed to a Driver and drops redundant
// pushes. It is not safe for concurrent use.
type Tracker struct {
	driver Driver
	dirty  dirtyFlags

	blend   BlendState
	depth   DepthState
	mask    ColorMask
	scissor ScissorState
	stencil StencilState
}

// NewTracker returns a tracker holding the default state. Nothing is pushed
// until the first Set call; every kind is pushed once on first use.
func NewTracker(d Driver) *Tracker {
	return &Tracker{
		driver:  d,
		dirty:   dirtyAll,
		blend:   DefaultBlendState(),
		depth:   DefaultDepthState(),
		mask:    ColorMaskAll(),
		stencil: DefaultStencilState(),
	}
}

// Invalidate forgets what the driver holds, typically after the native
// context was reset. The next Set of every kind is forwarded.
func (t *Tracker) Invalidate() {
	t.dirty = dirtyAll
}

// Flush pushes every kind that is still marked as unknown to the driver.
func (t *Tracker) Flush() {
	if t.dirty == 0 {
		return
	}
	dirty := t.dirty
	if dirty&dirtyBlend != 0 {
		t.pushBlend()
	}
	if dirty&dirtyDepth != 0 {
		t.pushDepth()
	}
	if dirty&dirtyColorMask != 0 {
		t.pushColorMask()
	}
	if dirty&dirtyScissor != 0 {
		t.pushScissor()
	}
	if dirty&dirtyStencil != 0 {
		t.pushStencil()
	}
}

// SetBlendState forwards s if it differs from the cached state.
// It reports whether the driver was called.
func (t *Tracker) SetBlendState(s BlendState) bool {
	if t.dirty&dirtyBlend == 0 && s == t.blend {
		return false
	}
	t.blend = s
	t.pushBlend()
	return true
}

// SetBlendMode is SetBlendState(ComputeBlendState(mode, alpha)).
func (t *Tracker) SetBlendMode(mode BlendMode, alpha BlendAlphaMode) bool {
	return t.SetBlendState(ComputeBlendState(mode, alpha))
}

// SetDepthState forwards d if it differs from the cached state.
func (t *Tracker) SetDepthState(d DepthState) bool {
	if t.dirty&dirtyDepth == 0 && d == t.depth {
		return false
	}
	t.depth = d
	t.pushDepth()
	return true
}

// SetColorMask forwards m if it differs from the cached mask.
func (t *Tracker) SetColorMask(m ColorMask) bool {
	if t.dirty&dirtyColorMask == 0 && m == t.mask {
		return false
	}
	t.mask = m
	t.pushColorMask()
	return true
}

// SetScissor forwards s if it differs from the cached state.
func (t *Tracker) SetScissor(s ScissorState) bool {
	if t.dirty&dirtyScissor == 0 && s == t.scissor {
		return false
	}
	t.scissor = s
	t.pushScissor()
	return true
}

// SetStencil forwards s if it differs from the cached state.
func (t *Tracker) SetStencil(s StencilState) bool {
	if t.dirty&dirtyStencil == 0 && s == t.stencil {
		return false
	}
	t.stencil = s
	t.pushStencil()
	return true
}

// BlendState returns the cached blend state.
func (t *Tracker) BlendState() BlendState { return t.blend }

// BlendMode returns the preset matching the cached blend state.
func (t *Tracker) BlendMode() (BlendMode, BlendAlphaMode) { return ComputeBlendMode(t.blend) }

// DepthState returns the cached depth state.
func (t *Tracker) DepthState() DepthState { return t.depth }

// ColorMask returns the cached color mask.
func (t *Tracker) ColorMask() ColorMask { return t.mask }

// Scissor returns the cached scissor state.
func (t *Tracker) Scissor() ScissorState { return t.scissor }

// Stencil returns the cached stencil state.
func (t *Tracker) Stencil() StencilState { return t.stencil }

func (t *Tracker) pushBlend() {
	love.Logger().Debug("renderstate: apply blend", "state", t.blend)
	t.driver.ApplyBlendState(t.blend)
	t.dirty &^= dirtyBlend
}

func (t *Tracker) pushDepth() {
	love.Logger().Debug("renderstate: apply depth", "compare", t.depth.Compare, "write", t.depth.Write)
	t.driver.ApplyDepthState(t.depth)
	t.dirty &^= dirtyDepth
}

func (t *Tracker) pushColorMask() {
	love.Logger().Debug("renderstate: apply color mask", "bits", t.mask.Bits())
	t.driver.ApplyColorMask(t.mask)
	t.dirty &^= dirtyColorMask
}

func (t *Tracker) pushScissor() {
	love.Logger().Debug("renderstate: apply scissor", "rect", t.scissor.Rect, "enabled", t.scissor.Enabled)
	t.driver.ApplyScissor(t.scissor)
	t.dirty &^= dirtyScissor
}

func (t *Tracker) pushStencil() {
	love.Logger().Debug("renderstate: apply stencil", "compare", t.stencil.Compare, "value", t.stencil.Value)
	t.driver.ApplyStencil(t.stencil)
	t.dirty &^= dirtyStencil
}
