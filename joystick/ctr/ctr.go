// Package ctr implements joysticks for the Nintendo 3DS family.
//
// The console has exactly one built-in controller: the face buttons, the
// circle pad, the New 3DS C-stick and ZL/ZR, plus a gyroscope and an
// accelerometer. Triggers are digital.
package ctr

import (
	"time"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/bimap"
	"github.com/lovepotion/love/joystick"
)

// Native key bits, as returned by hidKeysDown and friends.
const (
	KeyA      uint32 = 1 << 0
	KeyB      uint32 = 1 << 1
	KeySelect uint32 = 1 << 2
	KeyStart  uint32 = 1 << 3
	KeyDRight uint32 = 1 << 4
	KeyDLeft  uint32 = 1 << 5
	KeyDUp    uint32 = 1 << 6
	KeyDDown  uint32 = 1 << 7
	KeyR      uint32 = 1 << 8
	KeyL      uint32 = 1 << 9
	KeyX      uint32 = 1 << 10
	KeyY      uint32 = 1 << 11
	KeyZL     uint32 = 1 << 14
	KeyZR     uint32 = 1 << 15
	KeyTouch  uint32 = 1 << 20

	KeyCStickRight uint32 = 1 << 24
	KeyCStickLeft  uint32 = 1 << 25
	KeyCStickUp    uint32 = 1 << 26
	KeyCStickDown  uint32 = 1 << 27
	KeyCPadRight   uint32 = 1 << 28
	KeyCPadLeft    uint32 = 1 << 29
	KeyCPadUp      uint32 = 1 << 30
	KeyCPadDown    uint32 = 1 << 31
)

// StickMax is the magnitude at which a circle pad or C-stick reading is
// treated as full deflection.
const StickMax = 150

// Name is the driver name.
const Name = "ctr"

var buttons = joystick.NewButtonTable(
	bimap.E(joystick.ButtonA, uint64(KeyA)),
	bimap.E(joystick.ButtonB, uint64(KeyB)),
	bimap.E(joystick.ButtonX, uint64(KeyX)),
	bimap.E(joystick.ButtonY, uint64(KeyY)),
	bimap.E(joystick.ButtonBack, uint64(KeySelect)),
	bimap.E(joystick.ButtonGuide, joystick.Unsupported),
	bimap.E(joystick.ButtonStart, uint64(KeyStart)),
	bimap.E(joystick.ButtonLeftShoulder, uint64(KeyL)),
	bimap.E(joystick.ButtonRightShoulder, uint64(KeyR)),
	bimap.E(joystick.ButtonLeftStick, joystick.Unsupported),
	bimap.E(joystick.ButtonRightStick, joystick.Unsupported),
	bimap.E(joystick.ButtonDpadUp, uint64(KeyDUp)),
	bimap.E(joystick.ButtonDpadDown, uint64(KeyDDown)),
	bimap.E(joystick.ButtonDpadRight, uint64(KeyDRight)),
	bimap.E(joystick.ButtonDpadLeft, uint64(KeyDLeft)),
)

// Buttons returns the 3DS button table.
func Buttons() *joystick.ButtonTable { return buttons }

// Vec3 is a raw sensor reading.
type Vec3 struct{ X, Y, Z int16 }

// HID is the subset of libctru's hid and irrst services a joystick uses.
type HID interface {
	ScanInput()
	KeysDown() uint32
	KeysUp() uint32
	KeysHeld() uint32

	CircleRead() (dx, dy int16)
	// CStickRead reads the New 3DS C-stick. Original models report zero.
	CStickRead() (dx, dy int16)
	GyroRead() Vec3
	AccelRead() Vec3
	// EnableSensors starts or stops the gyroscope and accelerometer.
	EnableSensors(enable bool) error

	TouchRead() (x, y uint16)

	IsNew3DS() bool
	Is2DS() bool
}

// Joystick is the built-in 3DS controller.
type Joystick struct {
	joystick.Base

	hid     HID
	sensors bool
}

var _ joystick.Joystick = (*Joystick)(nil)

// New returns a closed joystick for slot id.
func New(id int, h HID, reg *joystick.VibrationRegistry) *Joystick {
	j := &Joystick{hid: h}
	j.Base = joystick.NewBase(id, reg, j.IsConnected)
	return j
}

// Type returns the model of the console.
func (j *Joystick) Type() joystick.GamepadType {
	switch {
	case j.hid.Is2DS():
		return joystick.TypeNintendo2DS
	case j.hid.IsNew3DS():
		return joystick.TypeNintendoNew3DS
	}
	return joystick.TypeNintendo3DS
}

func (j *Joystick) Open(index int) bool {
	j.Close()
	if index != 0 {
		return false
	}
	j.Opened(joystick.IdentityFor(j.Type()), buttons, joystick.SensorAxisCount)

	if err := j.hid.EnableSensors(true); err != nil {
		love.Logger().Warn("ctr: motion sensors unavailable", "err", err)
	} else {
		j.sensors = true
	}
	love.Logger().Debug("ctr: open", "id", j.ID(), "type", j.GamepadType().String())
	return true
}

func (j *Joystick) Close() {
	if j.InstanceID() < 0 {
		return
	}
	if j.sensors {
		if err := j.hid.EnableSensors(false); err != nil {
			love.Logger().Warn("ctr: stop motion sensors", "err", err)
		}
		j.sensors = false
	}
	j.Closed()
}

// IsConnected reports whether the joystick is open. The built-in
// controller cannot be removed.
func (j *Joystick) IsConnected() bool { return j.InstanceID() >= 0 }

func (j *Joystick) Update() {
	if !j.IsConnected() {
		return
	}
	j.hid.ScanInput()
	held := j.hid.KeysHeld()
	j.SetButtons(uint64(j.hid.KeysDown()), uint64(j.hid.KeysUp()), uint64(held))

	// Native Y points up on both sticks.
	lx, ly := j.hid.CircleRead()
	j.SetAxis(int(joystick.AxisLeftX), joystick.NormalizeStick(int32(lx), StickMax))
	j.SetAxis(int(joystick.AxisLeftY), joystick.NormalizeStick(-int32(ly), StickMax))

	rx, ry := j.hid.CStickRead()
	j.SetAxis(int(joystick.AxisRightX), joystick.NormalizeStick(int32(rx), StickMax))
	j.SetAxis(int(joystick.AxisRightY), joystick.NormalizeStick(-int32(ry), StickMax))

	j.SetAxis(int(joystick.AxisTriggerLeft), joystick.Digital(held&KeyZL != 0))
	j.SetAxis(int(joystick.AxisTriggerRight), joystick.Digital(held&KeyZR != 0))

	if j.sensors {
		g, a := j.hid.GyroRead(), j.hid.AccelRead()
		j.SetAxis(joystick.AxisGyroX, float32(g.X))
		j.SetAxis(joystick.AxisGyroY, float32(g.Y))
		j.SetAxis(joystick.AxisGyroZ, float32(g.Z))
		j.SetAxis(joystick.AxisAccelX, float32(a.X))
		j.SetAxis(joystick.AxisAccelY, float32(a.Y))
		j.SetAxis(joystick.AxisAccelZ, float32(a.Z))
	}
}

// SetVibration always fails: the 3DS has no rumble motor.
func (j *Joystick) SetVibration(left, right float32, d time.Duration) bool {
	return j.RecordVibration(j, false, left, right, d)
}

// StopVibration always fails: the 3DS has no rumble motor.
func (j *Joystick) StopVibration() bool { return j.SetVibration(0, 0, 0) }

func (j *Joystick) IsVibrationSupported() bool { return false }

// Driver creates 3DS joysticks.
type Driver struct {
	hid HID
}

var _ joystick.Driver = (*Driver)(nil)

// NewDriver returns a driver over h.
func NewDriver(h HID) *Driver { return &Driver{hid: h} }

func (d *Driver) Name() string      { return Name }
func (d *Driver) MaxJoysticks() int { return 1 }

func (d *Driver) NewJoystick(id int, reg *joystick.VibrationRegistry) joystick.Joystick {
	return New(id, d.hid, reg)
}
