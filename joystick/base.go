package joystick

import (
	"sync/atomic"
	"time"
)

var lastInstanceID atomic.Int64

var emptyTable = NewButtonTable()

// NextInstanceID returns a process-unique joystick instance id.
func NextInstanceID() int {
	return int(lastInstanceID.Add(1) - 1)
}

// Identity is what a joystick reports about the device it opened.
type Identity struct {
	Type    GamepadType
	Name    string
	GUID    string
	Info    DeviceInfo
	HasInfo bool
	Gamepad bool
}

// IdentityFor returns the identity of a known gamepad type.
func IdentityFor(t GamepadType) Identity {
	info, ok := DeviceInfoFor(t)
	return Identity{
		Type:    t,
		Name:    DeviceName(t),
		GUID:    DeviceGUID(t),
		Info:    info,
		HasInfo: ok,
		Gamepad: true,
	}
}

// Base holds the state every platform joystick shares: identity, the
// button and axis snapshot, and vibration bookkeeping. Platform types embed
// it and feed it from their Update.
//
// Every query method of Base guards on the connected callback, so a
// disconnected device reports zero values whatever its last snapshot was.
type Base struct {
	id          int
	instanceID  int
	playerIndex int
	identity    Identity

	connected func() bool

	table    *ButtonTable
	pressed  uint64
	released uint64
	held     uint64
	axes     []float32

	vibration Vibration
	registry  *VibrationRegistry
}

// NewBase returns the shared state of joystick id. connected is the
// platform's native connection query.
func NewBase(id int, reg *VibrationRegistry, connected func() bool) Base {
	if reg == nil {
		reg = NewVibrationRegistry()
	}
	return Base{
		id:          id,
		instanceID:  -1,
		playerIndex: -1,
		connected:   connected,
		table:       emptyTable,
		registry:    reg,
	}
}

func (b *Base) ID() int         { return b.id }
func (b *Base) InstanceID() int { return b.instanceID }
func (b *Base) Name() string    { return b.identity.Name }
func (b *Base) GUID() string    { return b.identity.GUID }

func (b *Base) GamepadType() GamepadType { return b.identity.Type }
func (b *Base) PlayerIndex() int         { return b.playerIndex }
func (b *Base) SetPlayerIndex(index int) { b.playerIndex = index }

// IsGamepad reports whether the open device has the standard layout.
func (b *Base) IsGamepad() bool {
	return b.instanceID >= 0 && b.identity.Gamepad
}

// DeviceInfo returns the USB identity of the device, if it has one.
func (b *Base) DeviceInfo() (DeviceInfo, bool) {
	return b.identity.Info, b.identity.HasInfo
}

// Registry returns the vibration registry the joystick reports to.
func (b *Base) Registry() *VibrationRegistry { return b.registry }

// Opened records a successful open: a fresh instance id, the device
// identity and its layout.
func (b *Base) Opened(id Identity, table *ButtonTable, axisCount int) {
	b.instanceID = NextInstanceID()
	b.identity = id
	b.SetLayout(table, axisCount)
}

// SetIdentity replaces the identity of an open device, for example when
// an extension is attached. The instance id is kept.
func (b *Base) SetIdentity(id Identity) { b.identity = id }

// Closed resets the instance id, clears the snapshot and drops the device
// from the vibration registry. The platform stops its motors first.
func (b *Base) Closed() {
	b.registry.Remove(b.id)
	b.vibration = Vibration{}
	b.instanceID = -1
	b.ClearInput()
}

// SetLayout replaces the button table and resizes the axis snapshot.
func (b *Base) SetLayout(table *ButtonTable, axisCount int) {
	if table == nil {
		table = emptyTable
	}
	b.table = table
	if cap(b.axes) >= axisCount {
		b.axes = b.axes[:axisCount]
		clear(b.axes)
	} else {
		b.axes = make([]float32, axisCount)
	}
}

// ButtonTable returns the current button table.
func (b *Base) ButtonTable() *ButtonTable { return b.table }

// SetButtons stores the native masks of this tick.
func (b *Base) SetButtons(pressed, released, held uint64) {
	b.pressed, b.released, b.held = pressed, released, held
}

// SetAxis stores axis index of this tick. Out of range indices are ignored.
func (b *Base) SetAxis(index int, v float32) {
	if index >= 0 && index < len(b.axes) {
		b.axes[index] = v
	}
}

// ClearEdges drops the pressed and released masks of the last tick.
func (b *Base) ClearEdges() { b.pressed, b.released = 0, 0 }

// ClearInput zeroes the button masks and every axis.
func (b *Base) ClearInput() {
	b.pressed, b.released, b.held = 0, 0, 0
	clear(b.axes)
}

func (b *Base) live() bool {
	return b.instanceID >= 0 && b.connected != nil && b.connected()
}

func (b *Base) NextPressed() (Input, bool) {
	if !b.live() {
		return Input{}, false
	}
	return NextChanged(b.table, &b.pressed)
}

func (b *Base) NextReleased() (Input, bool) {
	if !b.live() {
		return Input{}, false
	}
	return NextChanged(b.table, &b.released)
}

func (b *Base) IsDown(buttons ...int) bool {
	return b.live() && AnyHeld(b.table, b.held, buttons...)
}

func (b *Base) IsGamepadDown(buttons ...GamepadButton) bool {
	return b.live() && AnyGamepadHeld(b.table, b.held, buttons...)
}

func (b *Base) ButtonCount() int {
	if !b.live() {
		return 0
	}
	return SupportedButtonCount(b.table)
}

func (b *Base) AxisCount() int {
	if !b.live() {
		return 0
	}
	return len(b.axes)
}

func (b *Base) Axis(index int) float32 {
	if !b.live() || index < 0 || index >= len(b.axes) {
		return 0
	}
	return b.axes[index]
}

func (b *Base) Axes() []float32 {
	if !b.live() {
		return nil
	}
	return append([]float32(nil), b.axes...)
}

func (b *Base) GamepadAxis(axis GamepadAxis) float32 { return b.Axis(int(axis)) }

func (b *Base) Vibration() (left, right float32) {
	return b.vibration.Left, b.vibration.Right
}

func (b *Base) VibrationState() Vibration { return b.vibration }

// RecordVibration finishes a SetVibration call after the native submit.
//
// When the submit succeeded with a non-zero amplitude, the new state is
// stored and self is registered for expiry. Otherwise the state is cleared
// and self leaves the registry. It returns ok.
func (b *Base) RecordVibration(self Vibrator, ok bool, left, right float32, d time.Duration) bool {
	left, right = ClampAmplitude(left), ClampAmplitude(right)
	if !ok || (left == 0 && right == 0) {
		b.vibration = Vibration{}
		b.registry.Remove(b.id)
		return ok
	}
	b.vibration = Vibration{
		Left:    left,
		Right:   right,
		EndTime: EndTimeFor(b.registry.Clock().Now(), d),
	}
	b.registry.Add(b.id, self)
	return true
}
