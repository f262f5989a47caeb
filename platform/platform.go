// Package platform bundles the joystick driver and graphics backend of the
// platform the binary is built for.
//
// The console platforms are selected with the ctr, cafe and hac build
// tags; without one of them the desktop platform is built. Every platform
// file provides the Name constant, a Native type holding the native
// handles the host passes in, and New.
package platform

import (
	"github.com/lovepotion/love/backend"
	"github.com/lovepotion/love/hid"
	"github.com/lovepotion/love/joystick"
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/system"
	"github.com/lovepotion/love/texture"
)

// Platform is the active joystick driver and graphics backend.
type Platform struct {
	Name      string
	Joysticks joystick.Driver
	Graphics  backend.Backend
	// System reports power, network and launch media. Nil when the host
	// did not provide a reporter.
	System system.Reporter

	// touch builds the touch source once the manager exists, since some
	// touch screens are read through a joystick.
	touch func(m *joystick.Manager) hid.TouchSource
}

// NewManager returns a joystick manager over the platform's driver.
func (p *Platform) NewManager(opts ...joystick.ManagerOption) *joystick.Manager {
	return joystick.NewManager(p.Joysticks, opts...)
}

// NewPump returns an event pump over m that also reads the platform's
// touch screen, if it has one. opts are applied after the touch source,
// so WithTouch in opts replaces it.
func (p *Platform) NewPump(m *joystick.Manager, opts ...hid.Option) *hid.Pump {
	if p.touch != nil {
		if src := p.touch(m); src != nil {
			opts = append([]hid.Option{hid.WithTouch(src)}, opts...)
		}
	}
	return hid.NewPump(m, opts...)
}

// NewTracker returns a render-state tracker pushing to the platform's
// graphics backend.
func (p *Platform) NewTracker() *renderstate.Tracker {
	return renderstate.NewTracker(p.Graphics)
}

// NewTextureCache returns a sampler cache over the graphics backend of p.
// It reports false when the backend does not sample textures of type T.
func NewTextureCache[T comparable](p *Platform) (*texture.Cache[T], bool) {
	s, ok := p.Graphics.(texture.Sampler[T])
	if !ok {
		return nil, false
	}
	return texture.NewCache(s), true
}

// HasTouch reports whether the platform has a touch screen.
func (p *Platform) HasTouch() bool { return p.touch != nil }

// SystemInfo returns the host state, or the unknown state when the
// platform has no reporter.
func (p *Platform) SystemInfo() system.Info {
	if p.System == nil {
		return system.Unknown{}.Info()
	}
	return p.System.Info()
}
