package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/texture"
)

// lodMaxClamp is the WebGPU default maximum level of detail.
const lodMaxClamp = 32

// Device is the part of hal.Device the backend needs.
type Device interface {
	CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error)
	DestroySampler(sampler hal.Sampler)
}

var _ texture.Sampler[*Texture] = (*Backend)(nil)

// Texture owns the sampler of one GPU texture.
type Texture struct {
	label   string
	desc    hal.SamplerDescriptor
	sampler hal.Sampler
}

// NewTexture returns a texture without a sampler. The first ApplyFilter
// or ApplyWrap creates one.
func NewTexture(label string) *Texture {
	return &Texture{
		label: label,
		desc: hal.SamplerDescriptor{
			Label:        label + "_sampler",
			AddressModeU: gputypes.AddressModeClampToEdge,
			AddressModeV: gputypes.AddressModeClampToEdge,
			AddressModeW: gputypes.AddressModeClampToEdge,
			MagFilter:    gputypes.FilterModeLinear,
			MinFilter:    gputypes.FilterModeLinear,
			MipmapFilter: gputypes.FilterModeNearest,
			Anisotropy:   1,
		},
	}
}

// Label returns the debug label.
func (t *Texture) Label() string { return t.label }

// Sampler returns the current sampler, or nil before the first apply.
func (t *Texture) Sampler() hal.Sampler { return t.sampler }

// Descriptor returns the descriptor the current sampler was created from.
func (t *Texture) Descriptor() hal.SamplerDescriptor { return t.desc }

// ApplyFilter replaces the texture's sampler with one using f.
func (b *Backend) ApplyFilter(tex *Texture, f texture.Filter) error {
	minFilter, okMin := FilterMode(f.Min)
	magFilter, okMag := FilterMode(f.Mag)
	if !okMin || !okMag {
		return fmt.Errorf("wgpu: invalid filter %v/%v", f.Min, f.Mag)
	}
	desc := tex.desc
	desc.MinFilter, desc.MagFilter = minFilter, magFilter
	switch f.Mip() {
	case texture.MipNone:
		desc.MipmapFilter = gputypes.FilterModeNearest
		desc.LodMaxClamp = 0
	case texture.MipNearest:
		desc.MipmapFilter = gputypes.FilterModeNearest
		desc.LodMaxClamp = lodMaxClamp
	default:
		desc.MipmapFilter = gputypes.FilterModeLinear
		desc.LodMaxClamp = lodMaxClamp
	}
	// Anisotropic filtering requires every filter to be linear.
	desc.Anisotropy = 1
	if minFilter == gputypes.FilterModeLinear && magFilter == gputypes.FilterModeLinear &&
		desc.MipmapFilter == gputypes.FilterModeLinear && f.Anisotropy > 1 {
		desc.Anisotropy = uint16(min(f.Anisotropy, 16))
	}
	return b.replaceSampler(tex, desc)
}

// ApplyWrap replaces the texture's sampler with one using w.
func (b *Backend) ApplyWrap(tex *Texture, w texture.Wrap) error {
	desc := tex.desc
	modes := [3]*gputypes.AddressMode{&desc.AddressModeU, &desc.AddressModeV, &desc.AddressModeW}
	for i, mode := range [3]texture.WrapMode{w.S, w.T, w.R} {
		v, exact, ok := AddressMode(mode)
		if !ok {
			return fmt.Errorf("wgpu: invalid wrap %v", mode)
		}
		if !exact {
			love.Logger().Warn("wgpu: wrap mode approximated", "texture", tex.label, "wrap", mode, "address", v)
		}
		*modes[i] = v
	}
	return b.replaceSampler(tex, desc)
}

func (b *Backend) replaceSampler(tex *Texture, desc hal.SamplerDescriptor) error {
	sampler, err := b.device.CreateSampler(&desc)
	if err != nil {
		return fmt.Errorf("create %s: %w: %w", desc.Label, love.ErrResourceExhausted, err)
	}
	if tex.sampler != nil {
		b.device.DestroySampler(tex.sampler)
	}
	tex.desc = desc
	tex.sampler = sampler
	return nil
}

// Release destroys the texture's sampler.
func (b *Backend) Release(tex *Texture) {
	if tex.sampler != nil {
		b.device.DestroySampler(tex.sampler)
		tex.sampler = nil
	}
}
