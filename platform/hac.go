//go:build hac

package platform

import (
	"fmt"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
	"github.com/lovepotion/love/backend/deko3d"
	"github.com/lovepotion/love/hid"
	"github.com/lovepotion/love/joystick"
	"github.com/lovepotion/love/joystick/hac"
	"github.com/lovepotion/love/system"
)

// Name is the platform name.
const Name = "hac"

// Native holds the Switch services.
type Native struct {
	HID  hac.HID
	Cmd  deko3d.CmdBuf
	Heap deko3d.DescriptorHeap

	// System is optional.
	System system.Reporter
}

// New returns the Switch platform and registers the deko3d backend.
func New(native Native) (*Platform, error) {
	if native.HID == nil || native.Cmd == nil || native.Heap == nil {
		return nil, fmt.Errorf("platform %s: %w", Name, love.ErrNoDevice)
	}
	gfx := deko3d.New(native.Cmd, native.Heap)
	backend.Register(gfx)
	return &Platform{
		Name:      Name,
		Joysticks: hac.NewDriver(native.HID),
		Graphics:  gfx,
		System:    native.System,
		touch: func(*joystick.Manager) hid.TouchSource {
			return hac.NewTouch(native.HID)
		},
	}, nil
}
