// Package ebiten translates portable render state into the draw options of
// the Ebitengine 2D engine.
//
// Ebitengine has no fixed-function state to push: blending, filtering and
// address modes are fields of DrawImageOptions and DrawTrianglesOptions.
// The backend records the current state and fills those options on demand.
//
// Depth testing, color write masks and the stencil test have no Ebitengine
// equivalent. The backend records them so the state tracker stays
// consistent, and logs when a draw would need them.
package ebiten

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

// Sampler is the per-image sampling state.
type Sampler struct {
	Filter  ebiten.Filter
	Address ebiten.Address
}

// DefaultSampler matches texture.DefaultFilter and texture.DefaultWrap.
func DefaultSampler() Sampler {
	return Sampler{Filter: ebiten.FilterLinear, Address: ebiten.AddressUnsafe}
}

// Backend implements backend.Backend and texture.Sampler[*ebiten.Image].
type Backend struct {
	blend   ebiten.Blend
	depth   renderstate.DepthState
	mask    renderstate.ColorMask
	scissor renderstate.ScissorState
	stencil renderstate.StencilState

	samplers map[*ebiten.Image]Sampler
}

var _ backend.Backend = (*Backend)(nil)
var _ texture.Sampler[*ebiten.Image] = (*Backend)(nil)

// New returns a backend in the default render state.
func New() *Backend {
	return &Backend{
		blend:    ebiten.BlendCopy,
		depth:    renderstate.DefaultDepthState(),
		mask:     renderstate.ColorMaskAll(),
		stencil:  renderstate.DefaultStencilState(),
		samplers: make(map[*ebiten.Image]Sampler),
	}
}

// Name returns "ebiten".
func (b *Backend) Name() string { return backend.NameEbiten }

// Blend returns the current blend. A disabled blend state is BlendCopy.
func (b *Backend) Blend() ebiten.Blend { return b.blend }

// ApplyBlendState records the blend used by subsequent draws.
func (b *Backend) ApplyBlendState(s renderstate.BlendState) {
	blend, ok := Blend(s)
	if !ok {
		love.Logger().Warn("ebiten: unsupported blend state", "state", s)
		return
	}
	b.blend = blend
}

// ApplyDepthState records d. Ebitengine has no depth buffer.
func (b *Backend) ApplyDepthState(d renderstate.DepthState) {
	if d.Enabled() || d.Write {
		love.Logger().Debug("ebiten: depth test ignored", "compare", d.Compare, "write", d.Write)
	}
	b.depth = d
}

// ApplyColorMask records m. Ebitengine always writes every channel.
func (b *Backend) ApplyColorMask(m renderstate.ColorMask) {
	if m != renderstate.ColorMaskAll() {
		love.Logger().Debug("ebiten: color mask ignored", "mask", m.Bits())
	}
	b.mask = m
}

// ApplyScissor records the clip rectangle used by Target.
func (b *Backend) ApplyScissor(s renderstate.ScissorState) {
	b.scissor = s
}

// ApplyStencil records s. Ebitengine has no stencil buffer.
func (b *Backend) ApplyStencil(s renderstate.StencilState) {
	if s.Enabled() {
		love.Logger().Debug("ebiten: stencil test ignored", "compare", s.Compare, "value", s.Value)
	}
	b.stencil = s
}

// DepthState returns the recorded depth state.
func (b *Backend) DepthState() renderstate.DepthState { return b.depth }

// ColorMask returns the recorded color mask.
func (b *Backend) ColorMask() renderstate.ColorMask { return b.mask }

// StencilState returns the recorded stencil state.
func (b *Backend) StencilState() renderstate.StencilState { return b.stencil }

// ScissorRect returns the clip rectangle and whether scissoring is on.
func (b *Backend) ScissorRect() (image.Rectangle, bool) {
	if !b.scissor.Enabled {
		return image.Rectangle{}, false
	}
	r := b.scissor.Rect
	return image.Rect(r.X, r.Y, r.X+max(r.W, 0), r.Y+max(r.H, 0)), true
}

// Target returns the part of dst that draws may touch: dst itself, or the
// scissor sub-image of it.
func (b *Backend) Target(dst *ebiten.Image) *ebiten.Image {
	r, ok := b.ScissorRect()
	if !ok {
		return dst
	}
	return dst.SubImage(r.Add(dst.Bounds().Min)).(*ebiten.Image)
}

// Sampler returns the sampling state of img.
func (b *Backend) Sampler(img *ebiten.Image) Sampler {
	if s, ok := b.samplers[img]; ok {
		return s
	}
	return DefaultSampler()
}

// ApplyFilter records the filter of img. Ebitengine has a single filter
// per draw; the magnification filter is used.
func (b *Backend) ApplyFilter(img *ebiten.Image, f texture.Filter) error {
	filter, ok := Filter(f.Mag)
	if !ok {
		return fmt.Errorf("ebiten: invalid filter %v", f.Mag)
	}
	s := b.Sampler(img)
	s.Filter = filter
	b.samplers[img] = s
	return nil
}

// ApplyWrap records the address mode of img. Ebitengine has one address
// mode for both axes; S is used.
func (b *Backend) ApplyWrap(img *ebiten.Image, w texture.Wrap) error {
	addr, ok := Address(w.S)
	if !ok {
		return fmt.Errorf("ebiten: unsupported wrap %v", w.S)
	}
	s := b.Sampler(img)
	s.Address = addr
	b.samplers[img] = s
	return nil
}

// Release forgets the sampling state of img.
func (b *Backend) Release(img *ebiten.Image) {
	delete(b.samplers, img)
}

// DrawImageOptions returns options drawing src with the current state.
func (b *Backend) DrawImageOptions(src *ebiten.Image) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.Blend = b.blend
	op.Filter = b.Sampler(src).Filter
	return op
}

// DrawTrianglesOptions returns options drawing triangles textured with src
// with the current state.
func (b *Backend) DrawTrianglesOptions(src *ebiten.Image) *ebiten.DrawTrianglesOptions {
	s := b.Sampler(src)
	op := &ebiten.DrawTrianglesOptions{}
	op.Blend = b.blend
	op.Filter = s.Filter
	op.Address = s.Address
	return op
}
