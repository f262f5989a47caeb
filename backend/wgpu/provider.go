package wgpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
)

// NewFromProvider returns a backend using the HAL device of provider.
// The provider must implement HalDevice() any returning a device that can
// create samplers.
func NewFromProvider(provider gpucontext.DeviceProvider) (*Backend, error) {
	type halProvider interface {
		HalDevice() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider does not expose HAL types: %w", backend.ErrBackendNotAvailable)
	}
	device, ok := hp.HalDevice().(Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice cannot create samplers: %w", backend.ErrBackendNotAvailable)
	}

	info := provider.AdapterInfo()
	love.Logger().Info("wgpu: using shared device", "adapter", info.Name, "format", provider.SurfaceFormat())
	return New(device), nil
}
