package hac

import "github.com/lovepotion/love/hid"

// Touch reads the handheld touch screen.
type Touch struct {
	hid HID
}

var _ hid.TouchSource = Touch{}

// NewTouch returns a touch source over h.
func NewTouch(h HID) Touch { return Touch{hid: h} }

func (t Touch) Touches() []hid.Touch {
	states := t.hid.TouchStates()
	if len(states) == 0 {
		return nil
	}
	out := make([]hid.Touch, len(states))
	for i, s := range states {
		out[i] = hid.Touch{
			ID:       int64(s.ID),
			X:        float32(s.X),
			Y:        float32(s.Y),
			Pressure: 1,
		}
	}
	return out
}
