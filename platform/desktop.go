//go:build !ctr && !cafe && !hac

package platform

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
	ebitenbackend "github.com/lovepotion/love/backend/ebiten"
	"github.com/lovepotion/love/backend/wgpu"
	"github.com/lovepotion/love/joystick/desktop"
	"github.com/lovepotion/love/system"
)

// Name is the platform name.
const Name = "desktop"

// Native holds the optional shared GPU device of the host.
type Native struct {
	// Provider, when set, selects the wgpu backend on its device.
	// Otherwise the ebiten backend is used.
	Provider gpucontext.DeviceProvider
	// System is optional.
	System system.Reporter
}

// New returns the desktop platform and registers its graphics backend.
func New(native Native) (*Platform, error) {
	var gfx backend.Backend
	if native.Provider != nil {
		b, err := wgpu.NewFromProvider(native.Provider)
		if err != nil {
			return nil, fmt.Errorf("platform %s: %w", Name, err)
		}
		gfx = b
	} else {
		gfx = ebitenbackend.New()
	}
	backend.Register(gfx)
	love.Logger().Debug("platform: desktop", "graphics", gfx.Name())
	return &Platform{
		Name:      Name,
		Joysticks: desktop.NewDriver(),
		Graphics:  gfx,
		System:    native.System,
	}, nil
}
