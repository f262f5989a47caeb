package cafe

import "github.com/lovepotion/love/hid"

// Touch reports the GamePad touch screen from the sample the GamePad
// joystick read in its last Update.
type Touch struct {
	pad *Joystick
}

var _ hid.TouchSource = Touch{}

// NewTouch returns a touch source fed by the GamePad joystick.
func NewTouch(pad *Joystick) Touch { return Touch{pad: pad} }

func (t Touch) Touches() []hid.Touch {
	if t.pad == nil || !t.pad.IsGamePad() || !t.pad.touch.Touched {
		return nil
	}
	return []hid.Touch{{
		X:        float32(t.pad.touch.X),
		Y:        float32(t.pad.touch.Y),
		Pressure: 1,
	}}
}
