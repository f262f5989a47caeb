//go:build ctr

package platform

import (
	"fmt"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
	"github.com/lovepotion/love/backend/citro3d"
	"github.com/lovepotion/love/hid"
	"github.com/lovepotion/love/joystick"
	"github.com/lovepotion/love/joystick/ctr"
	"github.com/lovepotion/love/system"
)

// Name is the platform name.
const Name = "ctr"

// Native holds the 3DS services.
type Native struct {
	HID ctr.HID
	GPU citro3d.GPU

	// System is optional.
	System system.Reporter
}

// New returns the 3DS platform and registers the citro3d backend.
func New(native Native) (*Platform, error) {
	if native.HID == nil || native.GPU == nil {
		return nil, fmt.Errorf("platform %s: %w", Name, love.ErrNoDevice)
	}
	gfx := citro3d.New(native.GPU)
	backend.Register(gfx)
	return &Platform{
		Name:      Name,
		Joysticks: ctr.NewDriver(native.HID),
		Graphics:  gfx,
		System:    native.System,
		touch: func(*joystick.Manager) hid.TouchSource {
			return ctr.NewTouch(native.HID)
		},
	}, nil
}
