package joystick

import "github.com/lovepotion/love/bimap"

// GamepadButton is a button of the standard gamepad layout.
//
// Every platform button table declares the buttons in this order, so a
// button's value is also its button number.
type GamepadButton uint8

const (
	ButtonA GamepadButton = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonGuide
	ButtonStart
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonLeftStick
	ButtonRightStick
	ButtonDpadUp
	ButtonDpadDown
	ButtonDpadRight
	ButtonDpadLeft

	ButtonCount = iota
)

// GamepadAxis is an axis of the standard gamepad layout. Its value is the
// axis index used by Joystick.Axis.
type GamepadAxis uint8

const (
	AxisLeftX GamepadAxis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisTriggerLeft
	AxisTriggerRight

	GamepadAxisCount = iota
)

// Axis indices past the gamepad axes. Platforms with motion sensors expose
// the gyroscope and the accelerometer as six extra axes.
const (
	AxisGyroX = GamepadAxisCount + iota
	AxisGyroY
	AxisGyroZ
	AxisAccelX
	AxisAccelY
	AxisAccelZ

	// SensorAxisCount is the axis count of a device with both sensors.
	SensorAxisCount
)

// InputType tells which kind of control produced an Input.
type InputType uint8

const (
	InputAxis InputType = iota
	InputButton
	InputHat
)

var gamepadButtons = bimap.New(
	bimap.E("a", ButtonA),
	bimap.E("b", ButtonB),
	bimap.E("x", ButtonX),
	bimap.E("y", ButtonY),
	bimap.E("back", ButtonBack),
	bimap.E("guide", ButtonGuide),
	bimap.E("start", ButtonStart),
	bimap.E("leftshoulder", ButtonLeftShoulder),
	bimap.E("rightshoulder", ButtonRightShoulder),
	bimap.E("leftstick", ButtonLeftStick),
	bimap.E("rightstick", ButtonRightStick),
	bimap.E("dpup", ButtonDpadUp),
	bimap.E("dpdown", ButtonDpadDown),
	bimap.E("dpright", ButtonDpadRight),
	bimap.E("dpleft", ButtonDpadLeft),
)

var gamepadAxes = bimap.New(
	bimap.E("leftx", AxisLeftX),
	bimap.E("lefty", AxisLeftY),
	bimap.E("rightx", AxisRightX),
	bimap.E("righty", AxisRightY),
	bimap.E("triggerleft", AxisTriggerLeft),
	bimap.E("triggerright", AxisTriggerRight),
)

var inputTypes = bimap.New(
	bimap.E("axis", InputAxis),
	bimap.E("button", InputButton),
	bimap.E("hat", InputHat),
)

func (b GamepadButton) String() string {
	if name, ok := gamepadButtons.ReverseFind(b); ok {
		return name
	}
	return "unknown"
}

func (a GamepadAxis) String() string {
	if name, ok := gamepadAxes.ReverseFind(a); ok {
		return name
	}
	return "unknown"
}

func (t InputType) String() string {
	if name, ok := inputTypes.ReverseFind(t); ok {
		return name
	}
	return "unknown"
}

// GamepadButtonByName returns the button called name.
func GamepadButtonByName(name string) (GamepadButton, bool) { return gamepadButtons.Find(name) }

// GamepadButtonName returns the name of b.
func GamepadButtonName(b GamepadButton) (string, bool) { return gamepadButtons.ReverseFind(b) }

// GamepadButtonNames returns every button name in declaration order.
func GamepadButtonNames() []string { return gamepadButtons.Names() }

// GamepadAxisByName returns the axis called name.
func GamepadAxisByName(name string) (GamepadAxis, bool) { return gamepadAxes.Find(name) }

// GamepadAxisName returns the name of a.
func GamepadAxisName(a GamepadAxis) (string, bool) { return gamepadAxes.ReverseFind(a) }

// GamepadAxisNames returns every axis name in declaration order.
func GamepadAxisNames() []string { return gamepadAxes.Names() }

// InputTypeByName returns the input type called name.
func InputTypeByName(name string) (InputType, bool) { return inputTypes.Find(name) }

// InputTypeName returns the name of t.
func InputTypeName(t InputType) (string, bool) { return inputTypes.ReverseFind(t) }

// InputTypeNames returns every input type name in declaration order.
func InputTypeNames() []string { return inputTypes.Names() }
