package hac

import (
	"github.com/lovepotion/love/bimap"
	"github.com/lovepotion/love/joystick"
)

// NPAD button bits.
const (
	NpadButtonA      uint64 = 1 << 0
	NpadButtonB      uint64 = 1 << 1
	NpadButtonX      uint64 = 1 << 2
	NpadButtonY      uint64 = 1 << 3
	NpadButtonStickL uint64 = 1 << 4
	NpadButtonStickR uint64 = 1 << 5
	NpadButtonL      uint64 = 1 << 6
	NpadButtonR      uint64 = 1 << 7
	NpadButtonZL     uint64 = 1 << 8
	NpadButtonZR     uint64 = 1 << 9
	NpadButtonPlus   uint64 = 1 << 10
	NpadButtonMinus  uint64 = 1 << 11
	NpadButtonLeft   uint64 = 1 << 12
	NpadButtonUp     uint64 = 1 << 13
	NpadButtonRight  uint64 = 1 << 14
	NpadButtonDown   uint64 = 1 << 15
)

// The Home button is reserved by the system.
var buttons = joystick.NewButtonTable(
	bimap.E(joystick.ButtonA, NpadButtonA),
	bimap.E(joystick.ButtonB, NpadButtonB),
	bimap.E(joystick.ButtonX, NpadButtonX),
	bimap.E(joystick.ButtonY, NpadButtonY),
	bimap.E(joystick.ButtonBack, NpadButtonMinus),
	bimap.E(joystick.ButtonGuide, joystick.Unsupported),
	bimap.E(joystick.ButtonStart, NpadButtonPlus),
	bimap.E(joystick.ButtonLeftShoulder, NpadButtonL),
	bimap.E(joystick.ButtonRightShoulder, NpadButtonR),
	bimap.E(joystick.ButtonLeftStick, NpadButtonStickL),
	bimap.E(joystick.ButtonRightStick, NpadButtonStickR),
	bimap.E(joystick.ButtonDpadUp, NpadButtonUp),
	bimap.E(joystick.ButtonDpadDown, NpadButtonDown),
	bimap.E(joystick.ButtonDpadRight, NpadButtonRight),
	bimap.E(joystick.ButtonDpadLeft, NpadButtonLeft),
)

// Buttons returns the button table shared by every Switch pad style.
func Buttons() *joystick.ButtonTable { return buttons }

// JoyDevice is one half of a Joy-Con pair.
type JoyDevice uint8

const (
	JoyDeviceLeft JoyDevice = iota
	JoyDeviceRight
)

var joyDevices = bimap.New(
	bimap.E("left", JoyDeviceLeft),
	bimap.E("right", JoyDeviceRight),
)

func (d JoyDevice) String() string {
	if name, ok := joyDevices.ReverseFind(d); ok {
		return name
	}
	return "unknown"
}


// Attribute returns the attribute bit set while d is attached.
func (d JoyDevice) Attribute() Attribute {
	if d == JoyDeviceRight {
		return AttributeRightConnected
	}
	return AttributeLeftConnected
}

// AttachedJoyDevices returns the Joy-Con halves an attribute set reports.
func AttachedJoyDevices(attr Attribute) []JoyDevice {
	var out []JoyDevice
	for _, d := range []JoyDevice{JoyDeviceLeft, JoyDeviceRight} {
		if attr&d.Attribute() != 0 {
			out = append(out, d)
		}
	}
	return out
}
