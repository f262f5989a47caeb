package joystick

import "github.com/lovepotion/love/bimap"

// Unsupported is the native mask of a button a platform does not have.
// A zero mask can never intersect a button state.
const Unsupported uint64 = 0

// ButtonTable maps the standard buttons to native button masks.
type ButtonTable = bimap.Map[GamepadButton, uint64]

// NewButtonTable builds a platform button table. Entries must be declared
// in GamepadButton order; buttons the platform lacks use Unsupported.
// It panics if the order is wrong or two buttons share a mask.
func NewButtonTable(entries ...bimap.Entry[GamepadButton, uint64]) *ButtonTable {
	for i, e := range entries {
		if int(e.Name) != i {
			panic("joystick: button table entry " + e.Name.String() + " out of order")
		}
	}
	return bimap.NewSparse(Unsupported, entries...)
}

// Input identifies the control behind a press or release.
type Input struct {
	Type         InputType
	Button       GamepadButton
	ButtonNumber int
}

// NextChanged consumes one button from mask.
//
// It walks table in declaration order and returns the first button whose
// native bits intersect *mask, clearing those bits so the next call finds
// the next button. It reports false once no supported button remains in
// the mask. Bits that belong to no table entry are left in place.
func NextChanged(table *ButtonTable, mask *uint64) (Input, bool) {
	if *mask == 0 {
		return Input{}, false
	}
	e, ok := table.Scan(func(bits uint64) bool { return bits&*mask != 0 })
	if !ok {
		return Input{}, false
	}
	*mask &^= e.Value
	return Input{Type: InputButton, Button: e.Name, ButtonNumber: int(e.Name)}, true
}

// AnyHeld reports whether any of the given button numbers is held in the
// native mask held. Numbers out of range and unsupported buttons are
// ignored.
func AnyHeld(table *ButtonTable, held uint64, buttons ...int) bool {
	for _, n := range buttons {
		e, ok := table.At(n)
		if ok && e.Value&held != 0 {
			return true
		}
	}
	return false
}

// AnyGamepadHeld reports whether any of the given standard buttons is held
// in the native mask held.
func AnyGamepadHeld(table *ButtonTable, held uint64, buttons ...GamepadButton) bool {
	for _, b := range buttons {
		bits, ok := table.Find(b)
		if ok && bits&held != 0 {
			return true
		}
	}
	return false
}

// SupportedButtonCount returns how many buttons of table exist natively.
func SupportedButtonCount(table *ButtonTable) int {
	return len(table.SupportedNames())
}
