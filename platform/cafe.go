//go:build cafe

package platform

import (
	"fmt"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/backend"
	"github.com/lovepotion/love/backend/gx2"
	"github.com/lovepotion/love/hid"
	"github.com/lovepotion/love/joystick"
	"github.com/lovepotion/love/joystick/cafe"
	"github.com/lovepotion/love/system"
)

// Name is the platform name.
const Name = "cafe"

// Native holds the Wii U services.
type Native struct {
	HID cafe.HID
	GX2 gx2.Context

	// System is optional.
	System system.Reporter
}

// New returns the Wii U platform and registers the gx2 backend. The
// GamePad touch screen is read from the GamePad joystick's last update.
func New(native Native) (*Platform, error) {
	if native.HID == nil || native.GX2 == nil {
		return nil, fmt.Errorf("platform %s: %w", Name, love.ErrNoDevice)
	}
	gfx := gx2.New(native.GX2)
	backend.Register(gfx)
	return &Platform{
		Name:      Name,
		Joysticks: cafe.NewDriver(native.HID),
		Graphics:  gfx,
		System:    native.System,
		touch: func(m *joystick.Manager) hid.TouchSource {
			return hid.TouchFunc(func() []hid.Touch {
				j, ok := m.Joystick(cafe.GamePadSlot)
				if !ok {
					return nil
				}
				pad, _ := j.(*cafe.Joystick)
				return cafe.NewTouch(pad).Touches()
			})
		},
	}, nil
}
