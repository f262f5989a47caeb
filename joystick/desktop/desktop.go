// Package desktop implements joysticks over ebiten's standard gamepad
// layout.
//
// Gamepads without a standard layout mapping are ignored. Slots claim
// gamepads in id order, so a gamepad keeps its slot until it disconnects.
package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/bimap"
	"github.com/lovepotion/love/joystick"
)

// Name is the driver name.
const Name = "desktop"

// MaxJoysticks is the number of slots the driver offers.
const MaxJoysticks = 16

// Native buttons are stored as 1 << StandardGamepadButton.
func bit(b ebiten.StandardGamepadButton) uint64 { return 1 << uint(b) }

var buttons = joystick.NewButtonTable(
	bimap.E(joystick.ButtonA, bit(ebiten.StandardGamepadButtonRightBottom)),
	bimap.E(joystick.ButtonB, bit(ebiten.StandardGamepadButtonRightRight)),
	bimap.E(joystick.ButtonX, bit(ebiten.StandardGamepadButtonRightLeft)),
	bimap.E(joystick.ButtonY, bit(ebiten.StandardGamepadButtonRightTop)),
	bimap.E(joystick.ButtonBack, bit(ebiten.StandardGamepadButtonCenterLeft)),
	bimap.E(joystick.ButtonGuide, bit(ebiten.StandardGamepadButtonCenterCenter)),
	bimap.E(joystick.ButtonStart, bit(ebiten.StandardGamepadButtonCenterRight)),
	bimap.E(joystick.ButtonLeftShoulder, bit(ebiten.StandardGamepadButtonFrontTopLeft)),
	bimap.E(joystick.ButtonRightShoulder, bit(ebiten.StandardGamepadButtonFrontTopRight)),
	bimap.E(joystick.ButtonLeftStick, bit(ebiten.StandardGamepadButtonLeftStick)),
	bimap.E(joystick.ButtonRightStick, bit(ebiten.StandardGamepadButtonRightStick)),
	bimap.E(joystick.ButtonDpadUp, bit(ebiten.StandardGamepadButtonLeftTop)),
	bimap.E(joystick.ButtonDpadDown, bit(ebiten.StandardGamepadButtonLeftBottom)),
	bimap.E(joystick.ButtonDpadRight, bit(ebiten.StandardGamepadButtonLeftRight)),
	bimap.E(joystick.ButtonDpadLeft, bit(ebiten.StandardGamepadButtonLeftLeft)),
)

// Buttons returns the standard layout button table.
func Buttons() *joystick.ButtonTable { return buttons }

// Identify builds the identity of a gamepad from its SDL GUID. Unknown
// devices keep the name the platform reports.
func Identify(name, sdlID string) joystick.Identity {
	id := joystick.Identity{
		Type:    joystick.TypeUnknown,
		Name:    name,
		GUID:    sdlID,
		Gamepad: true,
	}
	info, ok := joystick.ParseGUID(sdlID)
	if !ok {
		return id
	}
	id.Info, id.HasInfo = info, true
	if t := joystick.ClassifyUSB(info.Vendor, info.Product); t != joystick.TypeUnknown {
		id.Type = t
		if name == "" {
			id.Name = joystick.DeviceName(t)
		}
	}
	return id
}

// Joystick is one standard layout gamepad.
type Joystick struct {
	joystick.Base

	drv     *Driver
	gamepad ebiten.GamepadID
}

var _ joystick.Joystick = (*Joystick)(nil)

// Gamepad returns the ebiten gamepad id of an open joystick.
func (j *Joystick) Gamepad() ebiten.GamepadID { return j.gamepad }

// Open claims the first standard layout gamepad no other slot holds.
func (j *Joystick) Open(index int) bool {
	j.Close()
	if index < 0 || index >= MaxJoysticks {
		return false
	}
	for _, id := range j.drv.src.GamepadIDs() {
		if _, taken := j.drv.claimed[id]; taken || !j.drv.src.HasStandardLayout(id) {
			continue
		}
		j.drv.claimed[id] = j.ID()
		j.gamepad = id
		j.Opened(Identify(j.drv.src.Name(id), j.drv.src.SDLID(id)), buttons, joystick.GamepadAxisCount)
		j.SetPlayerIndex(index)
		love.Logger().Debug("desktop: open", "id", j.ID(), "gamepad", id, "name", j.Name())
		return true
	}
	return false
}

func (j *Joystick) Close() {
	if j.InstanceID() < 0 {
		return
	}
	if j.VibrationState().Active() && j.IsConnected() {
		j.StopVibration()
	}
	delete(j.drv.claimed, j.gamepad)
	j.Closed()
}

func (j *Joystick) IsConnected() bool {
	if j.InstanceID() < 0 {
		return false
	}
	for _, id := range j.drv.src.GamepadIDs() {
		if id == j.gamepad {
			return true
		}
	}
	return false
}

func (j *Joystick) Update() {
	if !j.IsConnected() {
		return
	}
	src, id := j.drv.src, j.gamepad

	var pressed, released, held uint64
	for b := range ebiten.StandardGamepadButtonMax + 1 {
		if src.IsPressed(id, b) {
			held |= bit(b)
		}
		if src.IsJustPressed(id, b) {
			pressed |= bit(b)
		}
		if src.IsJustReleased(id, b) {
			released |= bit(b)
		}
	}
	j.SetButtons(pressed, released, held)

	j.SetAxis(int(joystick.AxisLeftX), float32(src.AxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)))
	j.SetAxis(int(joystick.AxisLeftY), float32(src.AxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)))
	j.SetAxis(int(joystick.AxisRightX), float32(src.AxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)))
	j.SetAxis(int(joystick.AxisRightY), float32(src.AxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)))
	j.SetAxis(int(joystick.AxisTriggerLeft), float32(src.ButtonValue(id, ebiten.StandardGamepadButtonFrontBottomLeft)))
	j.SetAxis(int(joystick.AxisTriggerRight), float32(src.ButtonValue(id, ebiten.StandardGamepadButtonFrontBottomRight)))
}

// SetVibration drives the strong motor with left and the weak motor with
// right. Endless vibrations run for MaxVibrationDuration.
func (j *Joystick) SetVibration(left, right float32, d time.Duration) bool {
	if !j.IsConnected() {
		return j.RecordVibration(j, false, 0, 0, d)
	}
	left, right = joystick.ClampAmplitude(left), joystick.ClampAmplitude(right)
	run := d
	if d < 0 || d > joystick.MaxVibrationDuration {
		run = joystick.MaxVibrationDuration
	}
	if left == 0 && right == 0 {
		run = 0
	}
	j.drv.src.Vibrate(j.gamepad, &ebiten.VibrateGamepadOptions{
		Duration:        run,
		StrongMagnitude: float64(left),
		WeakMagnitude:   float64(right),
	})
	return j.RecordVibration(j, true, left, right, d)
}

func (j *Joystick) StopVibration() bool { return j.SetVibration(0, 0, 0) }

func (j *Joystick) IsVibrationSupported() bool { return j.IsConnected() }

// Driver creates desktop joysticks and tracks which gamepad each slot
// holds.
type Driver struct {
	src     source
	claimed map[ebiten.GamepadID]int
}

var _ joystick.Driver = (*Driver)(nil)

// NewDriver returns a driver reading ebiten's gamepads.
func NewDriver() *Driver { return newDriver(&ebitenSource{}) }

func newDriver(src source) *Driver {
	return &Driver{src: src, claimed: make(map[ebiten.GamepadID]int)}
}

func (d *Driver) Name() string      { return Name }
func (d *Driver) MaxJoysticks() int { return MaxJoysticks }

func (d *Driver) NewJoystick(id int, reg *joystick.VibrationRegistry) joystick.Joystick {
	j := &Joystick{drv: d, gamepad: -1}
	j.Base = joystick.NewBase(id, reg, j.IsConnected)
	return j
}
