package ctr

import "github.com/lovepotion/love/hid"

// Touch reads the bottom screen. It reports one contact while the screen
// is held and relies on the joystick's Update for the input scan.
type Touch struct {
	hid HID
}

var _ hid.TouchSource = Touch{}

// NewTouch returns a touch source over h.
func NewTouch(h HID) Touch { return Touch{hid: h} }

func (t Touch) Touches() []hid.Touch {
	if t.hid.KeysHeld()&KeyTouch == 0 {
		return nil
	}
	x, y := t.hid.TouchRead()
	return []hid.Touch{{X: float32(x), Y: float32(y), Pressure: 1}}
}
