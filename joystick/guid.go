package joystick

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/lovepotion/love/bimap"
)

// GamepadType classifies the physical controller behind a Joystick.
type GamepadType uint8

const (
	TypeUnknown GamepadType = iota
	TypeNintendo3DS
	TypeNintendo2DS
	TypeNintendoNew3DS
	TypeWiiUGamepad
	TypeWiiRemote
	TypeWiiRemoteNunchuk
	TypeWiiClassic
	TypeWiiUPro
	TypeSwitchHandheld
	TypeSwitchJoyconPair
	TypeSwitchJoyconLeft
	TypeSwitchJoyconRight
	TypeSwitchPro
	TypeXbox360
	TypeXboxOne
	TypePS4
	TypePS5
)

var gamepadTypes = bimap.New(
	bimap.E("unknown", TypeUnknown),
	bimap.E("3ds", TypeNintendo3DS),
	bimap.E("2ds", TypeNintendo2DS),
	bimap.E("new3ds", TypeNintendoNew3DS),
	bimap.E("wiiugamepad", TypeWiiUGamepad),
	bimap.E("wiiremote", TypeWiiRemote),
	bimap.E("wiiremotenunchuk", TypeWiiRemoteNunchuk),
	bimap.E("wiiclassic", TypeWiiClassic),
	bimap.E("wiiupro", TypeWiiUPro),
	bimap.E("switchhandheld", TypeSwitchHandheld),
	bimap.E("switchjoyconpair", TypeSwitchJoyconPair),
	bimap.E("switchjoyconleft", TypeSwitchJoyconLeft),
	bimap.E("switchjoyconright", TypeSwitchJoyconRight),
	bimap.E("switchpro", TypeSwitchPro),
	bimap.E("xbox360", TypeXbox360),
	bimap.E("xboxone", TypeXboxOne),
	bimap.E("ps4", TypePS4),
	bimap.E("ps5", TypePS5),
)

var deviceNames = map[GamepadType]string{
	TypeNintendo3DS:       "Nintendo 3DS",
	TypeNintendo2DS:       "Nintendo 2DS",
	TypeNintendoNew3DS:    "New Nintendo 3DS",
	TypeWiiUGamepad:       "Wii U GamePad",
	TypeWiiRemote:         "Wii Remote",
	TypeWiiRemoteNunchuk:  "Wii Remote with Nunchuk",
	TypeWiiClassic:        "Wii Classic Controller",
	TypeWiiUPro:           "Wii U Pro Controller",
	TypeSwitchHandheld:    "Nintendo Switch",
	TypeSwitchJoyconPair:  "Dual Joy-Con",
	TypeSwitchJoyconLeft:  "Left Joy-Con",
	TypeSwitchJoyconRight: "Right Joy-Con",
	TypeSwitchPro:         "Pro Controller",
	TypeXbox360:           "Xbox 360 Controller",
	TypeXboxOne:           "Xbox One Controller",
	TypePS4:               "PS4 Controller",
	TypePS5:               "PS5 Controller",
}

func (t GamepadType) String() string {
	if name, ok := gamepadTypes.ReverseFind(t); ok {
		return name
	}
	return "unknown"
}

// GamepadTypeByName returns the gamepad type called name.
func GamepadTypeByName(name string) (GamepadType, bool) { return gamepadTypes.Find(name) }

// GamepadTypeName returns the name of t.
func GamepadTypeName(t GamepadType) (string, bool) { return gamepadTypes.ReverseFind(t) }

// GamepadTypeNames returns every gamepad type name in declaration order.
func GamepadTypeNames() []string { return gamepadTypes.Names() }

// DeviceName returns the human-readable product name of t.
func DeviceName(t GamepadType) string {
	if name, ok := deviceNames[t]; ok {
		return name
	}
	return "Unknown Controller"
}

// DeviceInfo is the USB identity of a controller.
type DeviceInfo struct {
	Vendor  uint16
	Product uint16
	Version uint16
}

const (
	vendorNintendo  = 0x057E
	vendorMicrosoft = 0x045E
	vendorSony      = 0x054C
)

type deviceKey struct {
	vendor, product uint16
}

// Controllers with a USB or Bluetooth identity. Built-in console inputs
// have none.
var deviceInfos = map[GamepadType]DeviceInfo{
	TypeWiiRemote:         {Vendor: vendorNintendo, Product: 0x0306},
	TypeWiiRemoteNunchuk:  {Vendor: vendorNintendo, Product: 0x0306},
	TypeWiiClassic:        {Vendor: vendorNintendo, Product: 0x0306},
	TypeWiiUPro:           {Vendor: vendorNintendo, Product: 0x0330},
	TypeSwitchJoyconLeft:  {Vendor: vendorNintendo, Product: 0x2006},
	TypeSwitchJoyconRight: {Vendor: vendorNintendo, Product: 0x2007},
	TypeSwitchJoyconPair:  {Vendor: vendorNintendo, Product: 0x2008},
	TypeSwitchPro:         {Vendor: vendorNintendo, Product: 0x2009},
	TypeXbox360:           {Vendor: vendorMicrosoft, Product: 0x028E},
	TypeXboxOne:           {Vendor: vendorMicrosoft, Product: 0x02FF},
	TypePS4:               {Vendor: vendorSony, Product: 0x05C4},
	TypePS5:               {Vendor: vendorSony, Product: 0x0CE6},
}

var knownDevices = map[deviceKey]GamepadType{
	{vendorMicrosoft, 0x028E}: TypeXbox360,
	{vendorMicrosoft, 0x02FF}: TypeXboxOne,
	{vendorMicrosoft, 0x0B12}: TypeXboxOne, // Series X|S
	{vendorMicrosoft, 0x0B13}: TypeXboxOne, // Series X|S, wireless
	{vendorSony, 0x05C4}:      TypePS4,
	{vendorSony, 0x09CC}:      TypePS4,
	{vendorSony, 0x0CE6}:      TypePS5,
	{vendorNintendo, 0x0330}:  TypeWiiUPro,
	{vendorNintendo, 0x2006}:  TypeSwitchJoyconLeft,
	{vendorNintendo, 0x2007}:  TypeSwitchJoyconRight,
	{vendorNintendo, 0x2008}:  TypeSwitchJoyconPair,
	{vendorNintendo, 0x2009}:  TypeSwitchPro,
}

// DeviceInfoFor returns the USB identity of t. Built-in console inputs
// report false.
func DeviceInfoFor(t GamepadType) (DeviceInfo, bool) {
	info, ok := deviceInfos[t]
	return info, ok
}

// ClassifyUSB returns the gamepad type of a USB vendor/product pair, or
// TypeUnknown.
func ClassifyUSB(vendor, product uint16) GamepadType {
	return knownDevices[deviceKey{vendor, product}]
}

// SDL bus types used in GUIDs.
const (
	busVirtual   = 0x00
	busUSB       = 0x03
	busBluetooth = 0x05
)

// DeviceGUID returns the SDL-layout GUID of t: bus, CRC, vendor, product
// and version as little-endian 16-bit words, hex encoded. Types without a
// USB identity use the virtual bus with the type in the product word.
func DeviceGUID(t GamepadType) string {
	var b [16]byte
	if info, ok := DeviceInfoFor(t); ok {
		binary.LittleEndian.PutUint16(b[0:], busUSB)
		binary.LittleEndian.PutUint16(b[4:], info.Vendor)
		binary.LittleEndian.PutUint16(b[8:], info.Product)
		binary.LittleEndian.PutUint16(b[12:], info.Version)
	} else {
		binary.LittleEndian.PutUint16(b[0:], busVirtual)
		binary.LittleEndian.PutUint16(b[8:], uint16(t))
	}
	return hex.EncodeToString(b[:])
}

// ParseGUID extracts the USB identity from an SDL-layout GUID. It reports
// false for malformed GUIDs and for GUIDs that carry no vendor/product
// pair (virtual devices, name-hashed GUIDs).
func ParseGUID(guid string) (DeviceInfo, bool) {
	b, err := hex.DecodeString(guid)
	if err != nil || len(b) != 16 {
		return DeviceInfo{}, false
	}
	bus := binary.LittleEndian.Uint16(b[0:])
	if bus != busUSB && bus != busBluetooth {
		return DeviceInfo{}, false
	}
	// The words between vendor, product and version are zero when the
	// GUID encodes a USB identity.
	if binary.LittleEndian.Uint16(b[6:]) != 0 || binary.LittleEndian.Uint16(b[10:]) != 0 {
		return DeviceInfo{}, false
	}
	info := DeviceInfo{
		Vendor:  binary.LittleEndian.Uint16(b[4:]),
		Product: binary.LittleEndian.Uint16(b[8:]),
		Version: binary.LittleEndian.Uint16(b[12:]),
	}
	if info.Vendor == 0 {
		return DeviceInfo{}, false
	}
	return info, true
}

func (d DeviceInfo) String() string {
	return fmt.Sprintf("%04x:%04x v%d", d.Vendor, d.Product, d.Version)
}
