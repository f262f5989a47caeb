package cafe

import (
	"github.com/lovepotion/love/bimap"
	"github.com/lovepotion/love/joystick"
)

// VPAD button bits.
const (
	VPADButtonSync   uint32 = 0x00000001
	VPADButtonHome   uint32 = 0x00000002
	VPADButtonMinus  uint32 = 0x00000004
	VPADButtonPlus   uint32 = 0x00000008
	VPADButtonR      uint32 = 0x00000010
	VPADButtonL      uint32 = 0x00000020
	VPADButtonZR     uint32 = 0x00000040
	VPADButtonZL     uint32 = 0x00000080
	VPADButtonDown   uint32 = 0x00000100
	VPADButtonUp     uint32 = 0x00000200
	VPADButtonRight  uint32 = 0x00000400
	VPADButtonLeft   uint32 = 0x00000800
	VPADButtonY      uint32 = 0x00001000
	VPADButtonX      uint32 = 0x00002000
	VPADButtonB      uint32 = 0x00004000
	VPADButtonA      uint32 = 0x00008000
	VPADButtonTV     uint32 = 0x00010000
	VPADButtonStickR uint32 = 0x00020000
	VPADButtonStickL uint32 = 0x00040000
)

// Wii Remote button bits.
const (
	WPADButtonLeft  uint32 = 0x0001
	WPADButtonRight uint32 = 0x0002
	WPADButtonDown  uint32 = 0x0004
	WPADButtonUp    uint32 = 0x0008
	WPADButtonPlus  uint32 = 0x0010
	WPADButton2     uint32 = 0x0100
	WPADButton1     uint32 = 0x0200
	WPADButtonB     uint32 = 0x0400
	WPADButtonA     uint32 = 0x0800
	WPADButtonMinus uint32 = 0x1000
	WPADButtonHome  uint32 = 0x8000
)

// Nunchuk button bits.
const (
	NunchukButtonZ uint32 = 0x0001
	NunchukButtonC uint32 = 0x0002
)

// Classic Controller button bits.
const (
	ClassicButtonUp    uint32 = 0x0001
	ClassicButtonLeft  uint32 = 0x0002
	ClassicButtonZR    uint32 = 0x0004
	ClassicButtonX     uint32 = 0x0008
	ClassicButtonA     uint32 = 0x0010
	ClassicButtonY     uint32 = 0x0020
	ClassicButtonB     uint32 = 0x0040
	ClassicButtonZL    uint32 = 0x0080
	ClassicButtonR     uint32 = 0x0200
	ClassicButtonPlus  uint32 = 0x0400
	ClassicButtonHome  uint32 = 0x0800
	ClassicButtonMinus uint32 = 0x1000
	ClassicButtonL     uint32 = 0x2000
	ClassicButtonDown  uint32 = 0x4000
	ClassicButtonRight uint32 = 0x8000
)

// Pro Controller button bits.
const (
	ProButtonUp     uint32 = 0x00000001
	ProButtonLeft   uint32 = 0x00000002
	ProTriggerZR    uint32 = 0x00000004
	ProButtonX      uint32 = 0x00000008
	ProButtonA      uint32 = 0x00000010
	ProButtonY      uint32 = 0x00000020
	ProButtonB      uint32 = 0x00000040
	ProTriggerZL    uint32 = 0x00000080
	ProTriggerR     uint32 = 0x00000200
	ProButtonPlus   uint32 = 0x00000400
	ProButtonHome   uint32 = 0x00000800
	ProButtonMinus  uint32 = 0x00001000
	ProTriggerL     uint32 = 0x00002000
	ProButtonDown   uint32 = 0x00004000
	ProButtonRight  uint32 = 0x00008000
	ProButtonStickR uint32 = 0x00010000
	ProButtonStickL uint32 = 0x00020000
)

// nunchukBit places a Nunchuk bit above the remote's own buttons.
func nunchukBit(b uint32) uint64 { return uint64(b) << 32 }

func bit(b uint32) uint64 { return uint64(b) }

var vpadButtons = joystick.NewButtonTable(
	bimap.E(joystick.ButtonA, bit(VPADButtonA)),
	bimap.E(joystick.ButtonB, bit(VPADButtonB)),
	bimap.E(joystick.ButtonX, bit(VPADButtonX)),
	bimap.E(joystick.ButtonY, bit(VPADButtonY)),
	bimap.E(joystick.ButtonBack, bit(VPADButtonMinus)),
	bimap.E(joystick.ButtonGuide, bit(VPADButtonHome)),
	bimap.E(joystick.ButtonStart, bit(VPADButtonPlus)),
	bimap.E(joystick.ButtonLeftShoulder, bit(VPADButtonL)),
	bimap.E(joystick.ButtonRightShoulder, bit(VPADButtonR)),
	bimap.E(joystick.ButtonLeftStick, bit(VPADButtonStickL)),
	bimap.E(joystick.ButtonRightStick, bit(VPADButtonStickR)),
	bimap.E(joystick.ButtonDpadUp, bit(VPADButtonUp)),
	bimap.E(joystick.ButtonDpadDown, bit(VPADButtonDown)),
	bimap.E(joystick.ButtonDpadRight, bit(VPADButtonRight)),
	bimap.E(joystick.ButtonDpadLeft, bit(VPADButtonLeft)),
)

var remoteButtons = joystick.NewButtonTable(
	bimap.E(joystick.ButtonA, bit(WPADButtonA)),
	bimap.E(joystick.ButtonB, bit(WPADButtonB)),
	bimap.E(joystick.ButtonX, joystick.Unsupported),
	bimap.E(joystick.ButtonY, joystick.Unsupported),
	bimap.E(joystick.ButtonBack, bit(WPADButtonMinus)),
	bimap.E(joystick.ButtonGuide, bit(WPADButtonHome)),
	bimap.E(joystick.ButtonStart, bit(WPADButtonPlus)),
	bimap.E(joystick.ButtonLeftShoulder, joystick.Unsupported),
	bimap.E(joystick.ButtonRightShoulder, joystick.Unsupported),
	bimap.E(joystick.ButtonLeftStick, joystick.Unsupported),
	bimap.E(joystick.ButtonRightStick, joystick.Unsupported),
	bimap.E(joystick.ButtonDpadUp, bit(WPADButtonUp)),
	bimap.E(joystick.ButtonDpadDown, bit(WPADButtonDown)),
	bimap.E(joystick.ButtonDpadRight, bit(WPADButtonRight)),
	bimap.E(joystick.ButtonDpadLeft, bit(WPADButtonLeft)),
)

var nunchukButtons = joystick.NewButtonTable(
	bimap.E(joystick.ButtonA, bit(WPADButtonA)),
	bimap.E(joystick.ButtonB, bit(WPADButtonB)),
	bimap.E(joystick.ButtonX, joystick.Unsupported),
	bimap.E(joystick.ButtonY, joystick.Unsupported),
	bimap.E(joystick.ButtonBack, bit(WPADButtonMinus)),
	bimap.E(joystick.ButtonGuide, bit(WPADButtonHome)),
	bimap.E(joystick.ButtonStart, bit(WPADButtonPlus)),
	bimap.E(joystick.ButtonLeftShoulder, nunchukBit(NunchukButtonC)),
	bimap.E(joystick.ButtonRightShoulder, joystick.Unsupported),
	bimap.E(joystick.ButtonLeftStick, joystick.Unsupported),
	bimap.E(joystick.ButtonRightStick, joystick.Unsupported),
	bimap.E(joystick.ButtonDpadUp, bit(WPADButtonUp)),
	bimap.E(joystick.ButtonDpadDown, bit(WPADButtonDown)),
	bimap.E(joystick.ButtonDpadRight, bit(WPADButtonRight)),
	bimap.E(joystick.ButtonDpadLeft, bit(WPADButtonLeft)),
)

var classicButtons = joystick.NewButtonTable(
	bimap.E(joystick.ButtonA, bit(ClassicButtonA)),
	bimap.E(joystick.ButtonB, bit(ClassicButtonB)),
	bimap.E(joystick.ButtonX, bit(ClassicButtonX)),
	bimap.E(joystick.ButtonY, bit(ClassicButtonY)),
	bimap.E(joystick.ButtonBack, bit(ClassicButtonMinus)),
	bimap.E(joystick.ButtonGuide, bit(ClassicButtonHome)),
	bimap.E(joystick.ButtonStart, bit(ClassicButtonPlus)),
	bimap.E(joystick.ButtonLeftShoulder, bit(ClassicButtonL)),
	bimap.E(joystick.ButtonRightShoulder, bit(ClassicButtonR)),
	bimap.E(joystick.ButtonLeftStick, joystick.Unsupported),
	bimap.E(joystick.ButtonRightStick, joystick.Unsupported),
	bimap.E(joystick.ButtonDpadUp, bit(ClassicButtonUp)),
	bimap.E(joystick.ButtonDpadDown, bit(ClassicButtonDown)),
	bimap.E(joystick.ButtonDpadRight, bit(ClassicButtonRight)),
	bimap.E(joystick.ButtonDpadLeft, bit(ClassicButtonLeft)),
)

var proButtons = joystick.NewButtonTable(
	bimap.E(joystick.ButtonA, bit(ProButtonA)),
	bimap.E(joystick.ButtonB, bit(ProButtonB)),
	bimap.E(joystick.ButtonX, bit(ProButtonX)),
	bimap.E(joystick.ButtonY, bit(ProButtonY)),
	bimap.E(joystick.ButtonBack, bit(ProButtonMinus)),
	bimap.E(joystick.ButtonGuide, bit(ProButtonHome)),
	bimap.E(joystick.ButtonStart, bit(ProButtonPlus)),
	bimap.E(joystick.ButtonLeftShoulder, bit(ProTriggerL)),
	bimap.E(joystick.ButtonRightShoulder, bit(ProTriggerR)),
	bimap.E(joystick.ButtonLeftStick, bit(ProButtonStickL)),
	bimap.E(joystick.ButtonRightStick, bit(ProButtonStickR)),
	bimap.E(joystick.ButtonDpadUp, bit(ProButtonUp)),
	bimap.E(joystick.ButtonDpadDown, bit(ProButtonDown)),
	bimap.E(joystick.ButtonDpadRight, bit(ProButtonRight)),
	bimap.E(joystick.ButtonDpadLeft, bit(ProButtonLeft)),
)

// layoutFor returns the button table and axis count of a WPAD controller.
// A bare remote has no axes.
func layoutFor(ext Extension) (*joystick.ButtonTable, int) {
	typ := ext.Type()
	table, ok := ButtonsFor(typ)
	switch {
	case !ok:
		return nil, 0
	case typ == joystick.TypeWiiRemote:
		return table, 0
	}
	return table, joystick.GamepadAxisCount
}

// ButtonsFor returns the button table of a gamepad type, if it is a Wii U
// controller.
func ButtonsFor(t joystick.GamepadType) (*joystick.ButtonTable, bool) {
	switch t {
	case joystick.TypeWiiUGamepad:
		return vpadButtons, true
	case joystick.TypeWiiRemote:
		return remoteButtons, true
	case joystick.TypeWiiRemoteNunchuk:
		return nunchukButtons, true
	case joystick.TypeWiiClassic:
		return classicButtons, true
	case joystick.TypeWiiUPro:
		return proButtons, true
	}
	return nil, false
}
