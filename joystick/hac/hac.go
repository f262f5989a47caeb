// Package hac implements joysticks for the Nintendo Switch.
//
// Each slot is an NPAD. Slot 0 follows the default pad, which merges the
// handheld console with player one. A pad's style set decides its
// identity: full-key pads are Pro Controllers, handheld pads are the
// console itself and dual pads are a pair of Joy-Con. Every open pad owns
// its six-axis sensor and vibration device handles until Close.
package hac

import (
	"time"

	"golang.org/x/image/math/f32"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/joystick"
)

// Name is the driver name.
const Name = "hac"

// MaxJoysticks is the number of player pads.
const MaxJoysticks = 8

// StickMax is the magnitude of a fully deflected stick.
const StickMax = 32767

// Vibration frequencies of the low and high band, in Hz.
const (
	FreqLow  = 160
	FreqHigh = 320
)

// StyleTag is an NPAD style bit.
type StyleTag uint32

const (
	StyleFullKey  StyleTag = 1 << 0
	StyleHandheld StyleTag = 1 << 1
	StyleJoyDual  StyleTag = 1 << 2
	StyleJoyLeft  StyleTag = 1 << 3
	StyleJoyRight StyleTag = 1 << 4
)

// Attribute is an NPAD attribute bit.
type Attribute uint32

const (
	AttributeConnected      Attribute = 1 << 0
	AttributeWired          Attribute = 1 << 1
	AttributeLeftConnected  Attribute = 1 << 2
	AttributeLeftWired      Attribute = 1 << 3
	AttributeRightConnected Attribute = 1 << 4
	AttributeRightWired     Attribute = 1 << 5
)

// NPAD ids.
const (
	NpadNo1      = 0x00
	NpadHandheld = 0x20
)

// Stick is a raw stick position with Y pointing up.
type Stick struct{ X, Y int32 }

// SixAxisState is one six-axis sensor sample.
type SixAxisState struct {
	AngularVelocity f32.Vec3
	Acceleration    f32.Vec3
}

// VibrationValue is one HD rumble sample.
type VibrationValue struct {
	AmpLow, FreqLow   float32
	AmpHigh, FreqHigh float32
}

// SixAxisHandle and VibrationHandle are native device handles.
type (
	SixAxisHandle   uint32
	VibrationHandle uint32
)

// Pad is a libnx PadState.
type Pad interface {
	Update()
	IsConnected() bool
	IsHandheld() bool
	StyleSet() StyleTag
	Attributes() Attribute
	Buttons() uint64
	ButtonsDown() uint64
	ButtonsUp() uint64
	StickPos(index int) Stick
}

// HID is the subset of libnx hid a joystick uses.
type HID interface {
	// OpenPad initializes the pad of slot index. Slot 0 is the default pad.
	OpenPad(index int) Pad

	SixAxisHandles(npad int, style StyleTag, count int) ([]SixAxisHandle, error)
	StartSixAxis(h SixAxisHandle) error
	StopSixAxis(h SixAxisHandle) error
	SixAxisState(h SixAxisHandle) SixAxisState

	VibrationHandles(npad int, style StyleTag, count int) ([]VibrationHandle, error)
	SendVibration(handles []VibrationHandle, values []VibrationValue) error

	TouchStates() []TouchState
}

// TouchState is one touch screen contact.
type TouchState struct {
	ID   int32
	X, Y uint32
}

// Classify returns the style a pad is treated as and its gamepad type.
// Styles other than full-key, handheld and dual Joy-Con are not opened.
func Classify(set StyleTag) (StyleTag, joystick.GamepadType, bool) {
	switch {
	case set&StyleFullKey != 0:
		return StyleFullKey, joystick.TypeSwitchPro, true
	case set&StyleHandheld != 0:
		return StyleHandheld, joystick.TypeSwitchHandheld, true
	case set&StyleJoyDual != 0:
		return StyleJoyDual, joystick.TypeSwitchJoyconPair, true
	}
	return 0, joystick.TypeUnknown, false
}

// Joystick is one NPAD.
type Joystick struct {
	joystick.Base

	hid   HID
	pad   Pad
	style StyleTag
	npad  int

	sixAxis   []SixAxisHandle
	started   []bool
	vibration []VibrationHandle
}

var _ joystick.Joystick = (*Joystick)(nil)

// New returns a closed joystick for slot id.
func New(id int, h HID, reg *joystick.VibrationRegistry) *Joystick {
	j := &Joystick{hid: h}
	j.Base = joystick.NewBase(id, reg, j.IsConnected)
	return j
}

// Style returns the style the open pad is treated as.
func (j *Joystick) Style() StyleTag { return j.style }

// NpadID returns the NPAD id of the open pad.
func (j *Joystick) NpadID() int { return j.npad }

func (j *Joystick) Open(index int) bool {
	j.Close()
	if index < 0 || index >= MaxJoysticks {
		return false
	}

	pad := j.hid.OpenPad(index)
	pad.Update()
	style, typ, ok := Classify(pad.StyleSet())
	if !ok {
		return false
	}
	j.pad = pad
	j.style = style
	j.npad = NpadNo1 + index
	if pad.IsHandheld() {
		j.npad = NpadHandheld
	}
	j.Opened(joystick.IdentityFor(typ), buttons, joystick.SensorAxisCount)

	j.openSixAxis()
	j.openVibration()
	love.Logger().Debug("hac: open", "id", j.ID(), "type", typ.String(), "npad", j.npad)
	return true
}

// handleCount is the number of devices behind a style: one for a Pro
// Controller, one per Joy-Con otherwise.
func (j *Joystick) handleCount() int {
	if j.style == StyleFullKey {
		return 1
	}
	return 2
}

func (j *Joystick) openSixAxis() {
	handles, err := j.hid.SixAxisHandles(j.npad, j.style, j.handleCount())
	if err != nil {
		love.Logger().Warn("hac: six-axis handles", "npad", j.npad, "err", err)
		return
	}
	j.sixAxis = handles
	j.started = make([]bool, len(handles))

	j.startSixAxis(0)
	if j.style == StyleJoyDual && j.pad.Attributes()&JoyDeviceRight.Attribute() != 0 {
		j.startSixAxis(int(JoyDeviceRight))
	}
}

func (j *Joystick) startSixAxis(i int) {
	if i >= len(j.sixAxis) {
		return
	}
	if err := j.hid.StartSixAxis(j.sixAxis[i]); err != nil {
		love.Logger().Warn("hac: start six-axis", "npad", j.npad, "err", err)
		return
	}
	j.started[i] = true
}

func (j *Joystick) openVibration() {
	handles, err := j.hid.VibrationHandles(j.npad, j.style, j.handleCount())
	if err != nil {
		love.Logger().Warn("hac: vibration handles", "npad", j.npad, "err", err)
		return
	}
	j.vibration = handles
}

func (j *Joystick) Close() {
	if j.InstanceID() < 0 {
		return
	}
	if len(j.vibration) > 0 {
		j.StopVibration()
	}
	for i, h := range j.sixAxis {
		if !j.started[i] {
			continue
		}
		if err := j.hid.StopSixAxis(h); err != nil {
			love.Logger().Warn("hac: stop six-axis", "npad", j.npad, "err", err)
		}
	}
	j.sixAxis, j.started, j.vibration = nil, nil, nil
	j.Closed()
	j.pad = nil
}

func (j *Joystick) IsConnected() bool {
	return j.pad != nil && j.pad.IsConnected()
}

func (j *Joystick) Update() {
	if !j.IsConnected() {
		return
	}
	j.pad.Update()
	held := j.pad.Buttons()
	j.SetButtons(j.pad.ButtonsDown(), j.pad.ButtonsUp(), held)

	left, right := j.pad.StickPos(0), j.pad.StickPos(1)
	j.SetAxis(int(joystick.AxisLeftX), joystick.NormalizeStick(left.X, StickMax))
	j.SetAxis(int(joystick.AxisLeftY), joystick.NormalizeStick(-left.Y, StickMax))
	j.SetAxis(int(joystick.AxisRightX), joystick.NormalizeStick(right.X, StickMax))
	j.SetAxis(int(joystick.AxisRightY), joystick.NormalizeStick(-right.Y, StickMax))

	j.SetAxis(int(joystick.AxisTriggerLeft), joystick.Digital(held&NpadButtonZL != 0))
	j.SetAxis(int(joystick.AxisTriggerRight), joystick.Digital(held&NpadButtonZR != 0))

	if h, ok := j.sensorHandle(); ok {
		st := j.hid.SixAxisState(h)
		for i := range 3 {
			j.SetAxis(joystick.AxisGyroX+i, st.AngularVelocity[i])
			j.SetAxis(joystick.AxisAccelX+i, st.Acceleration[i])
		}
	}
}

// sensorHandle picks the six-axis sensor to read. A Joy-Con pair reads
// the left Joy-Con when it is attached and the right one otherwise.
func (j *Joystick) sensorHandle() (SixAxisHandle, bool) {
	i := 0
	if j.style == StyleJoyDual {
		attached := AttachedJoyDevices(j.pad.Attributes())
		if len(attached) == 0 {
			return 0, false
		}
		i = int(attached[0])
	}
	if i >= len(j.sixAxis) || !j.started[i] {
		return 0, false
	}
	return j.sixAxis[i], true
}

// SetVibration sends left as the low band and right as the high band to
// every vibration device of the pad.
func (j *Joystick) SetVibration(left, right float32, d time.Duration) bool {
	if !j.IsConnected() || len(j.vibration) == 0 {
		return j.RecordVibration(j, false, 0, 0, d)
	}
	left, right = joystick.ClampAmplitude(left), joystick.ClampAmplitude(right)

	values := make([]VibrationValue, len(j.vibration))
	for i := range values {
		values[i] = VibrationValue{
			AmpLow:   left,
			FreqLow:  FreqLow,
			AmpHigh:  right,
			FreqHigh: FreqHigh,
		}
	}
	err := j.hid.SendVibration(j.vibration, values)
	if err != nil {
		love.Logger().Warn("hac: send vibration", "npad", j.npad, "err", err)
	}
	return j.RecordVibration(j, err == nil, left, right, d)
}

func (j *Joystick) StopVibration() bool { return j.SetVibration(0, 0, 0) }

func (j *Joystick) IsVibrationSupported() bool { return len(j.vibration) > 0 }

// Driver creates Switch joysticks.
type Driver struct {
	hid HID
}

var _ joystick.Driver = (*Driver)(nil)

// NewDriver returns a driver over h.
func NewDriver(h HID) *Driver { return &Driver{hid: h} }

func (d *Driver) Name() string      { return Name }
func (d *Driver) MaxJoysticks() int { return MaxJoysticks }

func (d *Driver) NewJoystick(id int, reg *joystick.VibrationRegistry) joystick.Joystick {
	return New(id, d.hid, reg)
}
