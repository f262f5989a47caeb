package joystick

import (
	"time"

	"golang.org/x/image/math/f32"
)

// Joystick is one input device. Implementations exist per platform family.
//
// A Joystick is not safe for concurrent use. Update, the Next* consumers
// and the queries of one tick must run on the same goroutine.
//
// Every query returns a zero value while the device is disconnected.
type Joystick interface {
	// ID is the slot the joystick was created for.
	ID() int
	// InstanceID is assigned by Open and is -1 while closed.
	InstanceID() int

	// Open looks for the native device at slot index. It closes the device
	// first if it is already open and reports false when nothing is there.
	Open(index int) bool
	// Close releases native handles and stops vibration. It is a no-op on
	// a closed joystick.
	Close()
	// IsConnected queries the native layer, not the cached snapshot.
	IsConnected() bool
	// Update refreshes the button and axis snapshot. It is a no-op while
	// disconnected.
	Update()

	// NextPressed consumes one button from the pressed mask of the last
	// Update. It reports false once every pressed button was returned.
	NextPressed() (Input, bool)
	// NextReleased is NextPressed for the released mask.
	NextReleased() (Input, bool)
	// IsDown reports whether any of the given button numbers is held.
	IsDown(buttons ...int) bool
	// IsGamepadDown reports whether any of the given buttons is held.
	IsGamepadDown(buttons ...GamepadButton) bool

	// Axis returns axis index, or 0 when index is out of range.
	Axis(index int) float32
	// Axes returns every axis in index order.
	Axes() []float32
	AxisCount() int
	// ButtonCount is the number of buttons the device has. Button numbers
	// are GamepadButton values and stay stable across devices, so the
	// highest number can exceed ButtonCount-1.
	ButtonCount() int
	GamepadAxis(axis GamepadAxis) float32

	// SetVibration starts both motors. Amplitudes are clamped to [0, 1]
	// and a negative duration runs until stopped. On failure the device
	// stops vibrating and SetVibration reports false.
	SetVibration(left, right float32, d time.Duration) bool
	StopVibration() bool
	Vibration() (left, right float32)
	VibrationState() Vibration
	IsVibrationSupported() bool

	DeviceInfo() (DeviceInfo, bool)
	Name() string
	GUID() string
	GamepadType() GamepadType
	IsGamepad() bool
	PlayerIndex() int
	SetPlayerIndex(index int)
}

// Driver creates the joysticks of one platform.
type Driver interface {
	Name() string
	// MaxJoysticks is the number of device slots.
	MaxJoysticks() int
	NewJoystick(id int, reg *VibrationRegistry) Joystick
}

// NormalizeStick maps a raw stick reading with magnitude limit into
// [-1, 1].
func NormalizeStick(raw, limit int32) float32 {
	if limit <= 0 {
		return 0
	}
	v := float32(raw) / float32(limit)
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// ApplyDeadzone returns 0 if v is within threshold of rest.
func ApplyDeadzone(v, threshold float32) float32 {
	if v < threshold && v > -threshold {
		return 0
	}
	return v
}

// Digital returns 1 for a held control and 0 otherwise.
func Digital(held bool) float32 {
	if held {
		return 1
	}
	return 0
}

// SensorAxis returns the sensor component behind axis index, or 0 when
// index is not a sensor axis.
func SensorAxis(gyro, accel f32.Vec3, index int) float32 {
	switch {
	case index >= AxisGyroX && index <= AxisGyroZ:
		return gyro[index-AxisGyroX]
	case index >= AxisAccelX && index <= AxisAccelZ:
		return accel[index-AxisAccelX]
	}
	return 0
}
