package hid

// Touch is one contact on a touch screen.
type Touch struct {
	// ID stays the same while the contact is held.
	ID       int64
	X, Y     float32
	Pressure float32
}

// TouchSource reports the contacts of the current tick. It is read after
// every joystick was updated, so sources that share a native state with a
// joystick see the same scan.
type TouchSource interface {
	Touches() []Touch
}

// TouchFunc adapts a function to TouchSource.
type TouchFunc func() []Touch

func (f TouchFunc) Touches() []Touch { return f() }

// diffTouches compares the contacts of two ticks by ID.
func diffTouches(prev, cur []Touch) (pressed, moved, released []Touch) {
	for _, c := range cur {
		p, ok := findTouch(prev, c.ID)
		switch {
		case !ok:
			pressed = append(pressed, c)
		case p.X != c.X || p.Y != c.Y || p.Pressure != c.Pressure:
			moved = append(moved, c)
		}
	}
	for _, p := range prev {
		if _, ok := findTouch(cur, p.ID); !ok {
			released = append(released, p)
		}
	}
	return pressed, moved, released
}

func findTouch(list []Touch, id int64) (Touch, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Touch{}, false
}
