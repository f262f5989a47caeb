// Package cafe implements joysticks for the Wii U.
//
// Slot 0 is the Wii U GamePad, read through VPAD. Slots 1 to 4 are the
// WPAD channels 0 to 3: Wii Remotes, optionally with a Nunchuk or Classic
// Controller attached, and Wii U Pro Controllers. The layout of a WPAD
// slot follows its current extension.
package cafe

import (
	"time"

	"golang.org/x/image/math/f32"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/joystick"
)

// Name is the driver name.
const Name = "cafe"

// Slot counts.
const (
	GamePadSlot  = 0
	WPADChannels = 4
	MaxJoysticks = 1 + WPADChannels
)

// Extension is a WPAD extension type.
type Extension uint8

const (
	ExtensionCore          Extension = 0
	ExtensionNunchuk       Extension = 1
	ExtensionClassic       Extension = 2
	ExtensionMPlus         Extension = 5
	ExtensionMPlusNunchuk  Extension = 6
	ExtensionMPlusClassic  Extension = 7
	ExtensionProController Extension = 31
)

// Type returns the gamepad type of a remote with extension e attached.
// MotionPlus passthrough modes report the extension behind them.
func (e Extension) Type() joystick.GamepadType {
	switch e {
	case ExtensionCore, ExtensionMPlus:
		return joystick.TypeWiiRemote
	case ExtensionNunchuk, ExtensionMPlusNunchuk:
		return joystick.TypeWiiRemoteNunchuk
	case ExtensionClassic, ExtensionMPlusClassic:
		return joystick.TypeWiiClassic
	case ExtensionProController:
		return joystick.TypeWiiUPro
	}
	return joystick.TypeUnknown
}

// Stick is an analog stick position in [-1, 1] with Y pointing up.
type Stick struct{ X, Y float32 }

// VPADTouch is a calibrated GamePad touch sample.
type VPADTouch struct {
	X, Y    uint16
	Touched bool
}

// VPADStatus is one GamePad sample.
type VPADStatus struct {
	Trigger, Release, Hold uint32

	LeftStick, RightStick Stick
	Gyro, Accel           f32.Vec3
	Touch                 VPADTouch
}

// ButtonStatus is the button state of a WPAD extension.
type ButtonStatus struct {
	Trigger, Release, Hold uint32
}

// KPADStatus is one Wii Remote sample with its extension.
type KPADStatus struct {
	ButtonStatus
	Extension Extension

	Nunchuk struct {
		ButtonStatus
		Stick Stick
	}
	// Classic holds Classic Controller and Pro Controller data.
	Classic struct {
		ButtonStatus
		LeftStick, RightStick Stick
	}
}

// HID is the subset of VPAD, WPAD and KPAD a joystick uses.
type HID interface {
	VPADRead() (VPADStatus, error)
	VPADControlMotor(pattern []byte) error
	VPADStopMotor()

	WPADExtension(channel int) (Extension, bool)
	KPADRead(channel int) (KPADStatus, bool)
	WPADControlMotor(channel int, on bool)
}

// Joystick is the GamePad or one WPAD controller.
type Joystick struct {
	joystick.Base

	hid     HID
	channel int // -1 for the GamePad
	ext     Extension
	touch   VPADTouch
}

var _ joystick.Joystick = (*Joystick)(nil)

// New returns a closed joystick for slot id.
func New(id int, h HID, reg *joystick.VibrationRegistry) *Joystick {
	j := &Joystick{hid: h, channel: -1}
	j.Base = joystick.NewBase(id, reg, j.IsConnected)
	return j
}

// IsGamePad reports whether the joystick is the Wii U GamePad.
func (j *Joystick) IsGamePad() bool { return j.channel < 0 }

// Channel returns the WPAD channel, or -1 for the GamePad.
func (j *Joystick) Channel() int { return j.channel }

func (j *Joystick) Open(index int) bool {
	j.Close()

	switch {
	case index == GamePadSlot:
		j.channel = -1
		j.Opened(joystick.IdentityFor(joystick.TypeWiiUGamepad), vpadButtons, joystick.SensorAxisCount)
	case index > GamePadSlot && index <= WPADChannels:
		ext, ok := j.hid.WPADExtension(index - 1)
		if !ok {
			return false
		}
		j.channel = index - 1
		j.ext = ext
		table, axes := layoutFor(ext)
		j.Opened(joystick.IdentityFor(ext.Type()), table, axes)
	default:
		return false
	}
	j.SetPlayerIndex(index)
	love.Logger().Debug("cafe: open", "id", j.ID(), "type", j.GamepadType().String())
	return true
}

func (j *Joystick) Close() {
	if j.InstanceID() < 0 {
		return
	}
	if j.VibrationState().Active() {
		j.StopVibration()
	}
	j.Closed()
	j.touch = VPADTouch{}
}

// IsConnected asks the WPAD channel for its extension. The GamePad is always connected
// while open.
func (j *Joystick) IsConnected() bool {
	if j.InstanceID() < 0 {
		return false
	}
	if j.IsGamePad() {
		return true
	}
	_, ok := j.hid.WPADExtension(j.channel)
	return ok
}

func (j *Joystick) Update() {
	if !j.IsConnected() {
		return
	}
	if j.IsGamePad() {
		j.updateVPAD()
		return
	}
	j.updateKPAD()
}

func (j *Joystick) updateVPAD() {
	st, err := j.hid.VPADRead()
	if err != nil {
		j.ClearEdges()
		return
	}
	j.SetButtons(uint64(st.Trigger), uint64(st.Release), uint64(st.Hold))
	j.setSticks(st.LeftStick, st.RightStick)
	j.setTriggers(st.Hold&VPADButtonZL != 0, st.Hold&VPADButtonZR != 0)
	for i := range 3 {
		j.SetAxis(joystick.AxisGyroX+i, st.Gyro[i])
		j.SetAxis(joystick.AxisAccelX+i, st.Accel[i])
	}
	j.touch = st.Touch
}

func (j *Joystick) updateKPAD() {
	st, ok := j.hid.KPADRead(j.channel)
	if !ok {
		j.ClearEdges()
		return
	}
	if st.Extension != j.ext {
		love.Logger().Debug("cafe: extension changed", "channel", j.channel, "from", j.ext, "to", st.Extension)
		j.ext = st.Extension
		j.SetIdentity(joystick.IdentityFor(st.Extension.Type()))
		j.SetLayout(layoutFor(st.Extension))
	}

	switch st.Extension.Type() {
	case joystick.TypeWiiRemote:
		j.SetButtons(uint64(st.Trigger), uint64(st.Release), uint64(st.Hold))
	case joystick.TypeWiiRemoteNunchuk:
		n := st.Nunchuk
		j.SetButtons(
			uint64(st.Trigger)|uint64(n.Trigger)<<32,
			uint64(st.Release)|uint64(n.Release)<<32,
			uint64(st.Hold)|uint64(n.Hold)<<32,
		)
		j.setSticks(n.Stick, Stick{})
		j.setTriggers(n.Hold&NunchukButtonZ != 0, false)
	case joystick.TypeWiiClassic:
		c := st.Classic
		j.SetButtons(uint64(c.Trigger), uint64(c.Release), uint64(c.Hold))
		j.setSticks(c.LeftStick, c.RightStick)
		j.setTriggers(c.Hold&ClassicButtonZL != 0, c.Hold&ClassicButtonZR != 0)
	case joystick.TypeWiiUPro:
		c := st.Classic
		j.SetButtons(uint64(c.Trigger), uint64(c.Release), uint64(c.Hold))
		j.setSticks(c.LeftStick, c.RightStick)
		j.setTriggers(c.Hold&ProTriggerZL != 0, c.Hold&ProTriggerZR != 0)
	default:
		j.ClearInput()
	}
}

// setSticks stores both sticks with Y flipped to point down.
func (j *Joystick) setSticks(left, right Stick) {
	j.SetAxis(int(joystick.AxisLeftX), clampUnit(left.X))
	j.SetAxis(int(joystick.AxisLeftY), clampUnit(-left.Y))
	j.SetAxis(int(joystick.AxisRightX), clampUnit(right.X))
	j.SetAxis(int(joystick.AxisRightY), clampUnit(-right.Y))
}

func (j *Joystick) setTriggers(left, right bool) {
	j.SetAxis(int(joystick.AxisTriggerLeft), joystick.Digital(left))
	j.SetAxis(int(joystick.AxisTriggerRight), joystick.Digital(right))
}

func clampUnit(v float32) float32 {
	return max(-1, min(1, v))
}

// SetVibration drives the GamePad motor with a pattern whose density
// follows the stronger amplitude. Remote motors only switch on and off.
func (j *Joystick) SetVibration(left, right float32, d time.Duration) bool {
	if !j.IsConnected() {
		return j.RecordVibration(j, false, 0, 0, d)
	}
	left, right = joystick.ClampAmplitude(left), joystick.ClampAmplitude(right)
	amp := max(left, right)

	ok := true
	if j.IsGamePad() {
		if amp == 0 {
			j.hid.VPADStopMotor()
		} else if err := j.hid.VPADControlMotor(MotorPattern(amp)); err != nil {
			love.Logger().Warn("cafe: gamepad motor", "err", err)
			j.hid.VPADStopMotor()
			ok = false
		}
	} else {
		j.hid.WPADControlMotor(j.channel, amp > 0)
	}
	return j.RecordVibration(j, ok, left, right, d)
}

func (j *Joystick) StopVibration() bool { return j.SetVibration(0, 0, 0) }

func (j *Joystick) IsVibrationSupported() bool { return j.InstanceID() >= 0 }

// MotorPatternBits is the length of a GamePad motor pattern.
const MotorPatternBits = 120

// MotorPattern returns a GamePad motor pattern with amp of its bits set,
// spread evenly over the pattern.
func MotorPattern(amp float32) []byte {
	pattern := make([]byte, MotorPatternBits/8)
	amp = joystick.ClampAmplitude(amp)
	prev := 0
	for i := range MotorPatternBits {
		on := int(float32(i+1) * amp)
		if on > prev {
			pattern[i/8] |= 0x80 >> (i % 8)
		}
		prev = on
	}
	return pattern
}

// Driver creates Wii U joysticks.
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
