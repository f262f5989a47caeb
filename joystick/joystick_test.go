package joystick

import (
	"testing"
	"time"

	"github.com/lovepotion/love/bimap"
	"golang.org/x/image/math/f32"
)

const (
	bitA     uint64 = 1 << 0
	bitB     uint64 = 1 << 1
	bitX     uint64 = 1 << 10
	bitStart uint64 = 1 << 3
)

var testTable = NewButtonTable(
	bimap.E(ButtonA, bitA),
	bimap.E(ButtonB, bitB),
	bimap.E(ButtonX, bitX),
	bimap.E(ButtonY, Unsupported),
	bimap.E(ButtonBack, Unsupported),
	bimap.E(ButtonGuide, Unsupported),
	bimap.E(ButtonStart, bitStart),
)

// fakeClock is a manually advanced Clock.
type fakeClock struct{ now time.Time }

func newFakeClock() *fakeClock { return &fakeClock{now: time.Unix(1000, 0)} }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeJoystick is a minimal platform joystick over Base.
type fakeJoystick struct {
	Base
	present   bool
	connected bool
	stopFails bool
	submitOK  bool
	stops     int
}

func newFakeJoystick(id int, reg *VibrationRegistry) *fakeJoystick {
	j := &fakeJoystick{submitOK: true}
	j.Base = NewBase(id, reg, j.IsConnected)
	return j
}

func (j *fakeJoystick) Open(int) bool {
	j.Close()
	if !j.present {
		return false
	}
	j.connected = true
	j.Opened(IdentityFor(TypeSwitchPro), testTable, SensorAxisCount)
	return true
}

func (j *fakeJoystick) Close() {
	if j.InstanceID() < 0 {
		return
	}
	j.StopVibration()
	j.Closed()
}

func (j *fakeJoystick) IsConnected() bool { return j.connected }
func (j *fakeJoystick) Update()           {}

func (j *fakeJoystick) SetVibration(left, right float32, d time.Duration) bool {
	return j.RecordVibration(j, j.submitOK, left, right, d)
}

func (j *fakeJoystick) StopVibration() bool {
	j.stops++
	if j.stopFails {
		return false
	}
	return j.RecordVibration(j, true, 0, 0, 0)
}

func (j *fakeJoystick) IsVibrationSupported() bool { return true }

var _ Joystick = (*fakeJoystick)(nil)

// fakeDriver hands out fakeJoysticks.
type fakeDriver struct {
	slots []*fakeJoystick
}

func (d *fakeDriver) Name() string      { return "fake" }
func (d *fakeDriver) MaxJoysticks() int { return len(d.slots) }

func (d *fakeDriver) NewJoystick(id int, reg *VibrationRegistry) Joystick {
	present := d.slots[id] != nil && d.slots[id].present
	j := newFakeJoystick(id, reg)
	j.present = present
	d.slots[id] = j
	return j
}

func TestEnumNames(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"button a", ButtonA.String(), "a"},
		{"button dpleft", ButtonDpadLeft.String(), "dpleft"},
		{"axis triggerright", AxisTriggerRight.String(), "triggerright"},
		{"input hat", InputHat.String(), "hat"},
		{"type pro", TypeSwitchPro.String(), "switchpro"},
		{"bad button", GamepadButton(200).String(), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}

	if len(GamepadButtonNames()) != ButtonCount {
		t.Errorf("GamepadButtonNames() has %d names, want %d", len(GamepadButtonNames()), ButtonCount)
	}
	if len(GamepadAxisNames()) != GamepadAxisCount {
		t.Errorf("GamepadAxisNames() has %d names, want %d", len(GamepadAxisNames()), GamepadAxisCount)
	}
	if _, ok := GamepadButtonByName("A"); ok {
		t.Error("GamepadButtonByName is case-insensitive")
	}
	if b, ok := GamepadButtonByName("rightstick"); !ok || b != ButtonRightStick {
		t.Errorf("GamepadButtonByName(rightstick) = %v, %v", b, ok)
	}
	if SensorAxisCount != 12 || AxisAccelZ != 11 {
		t.Errorf("sensor axes end at %d, count %d", AxisAccelZ, SensorAxisCount)
	}
}

func TestNextChangedOrder(t *testing.T) {
	mask := bitB | bitA
	in, ok := NextChanged(testTable, &mask)
	if !ok || in.Button != ButtonA || in.ButtonNumber != 0 || in.Type != InputButton {
		t.Fatalf("first NextChanged = %+v, %v; want a", in, ok)
	}
	in, ok = NextChanged(testTable, &mask)
	if !ok || in.Button != ButtonB || in.ButtonNumber != 1 {
		t.Fatalf("second NextChanged = %+v, %v; want b", in, ok)
	}
	if _, ok := NextChanged(testTable, &mask); ok {
		t.Error("third NextChanged found a button")
	}
	if mask != 0 {
		t.Errorf("mask = %#x after draining", mask)
	}
}

func TestNextChangedKeepsForeignBits(t *testing.T) {
	const foreign = 1 << 40
	mask := bitStart | foreign
	in, ok := NextChanged(testTable, &mask)
	if !ok || in.Button != ButtonStart || in.ButtonNumber != 6 {
		t.Fatalf("NextChanged = %+v, %v; want start/6", in, ok)
	}
	if _, ok := NextChanged(testTable, &mask); ok {
		t.Error("placeholder or foreign bit matched")
	}
	if mask != foreign {
		t.Errorf("mask = %#x, want %#x", mask, uint64(foreign))
	}
}

func TestNewButtonTableOrder(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("out-of-order table did not panic")
		}
	}()
	NewButtonTable(bimap.E(ButtonB, bitB))
}

func TestHeldQueries(t *testing.T) {
	held := bitX | bitStart
	if !AnyHeld(testTable, held, 2) {
		t.Error("AnyHeld(x) = false")
	}
	if AnyHeld(testTable, held, 0, 3, 99, -1) {
		t.Error("AnyHeld matched a, a placeholder or an invalid number")
	}
	if !AnyGamepadHeld(testTable, held, ButtonA, ButtonStart) {
		t.Error("AnyGamepadHeld(a, start) = false")
	}
	if AnyGamepadHeld(testTable, held, ButtonY, ButtonDpadUp) {
		t.Error("AnyGamepadHeld matched an unsupported button")
	}
	if got := SupportedButtonCount(testTable); got != 4 {
		t.Errorf("SupportedButtonCount = %d, want 4", got)
	}
}

func TestNormalizeStick(t *testing.T) {
	tests := []struct {
		raw, limit int32
		want       float32
	}{
		{0, 150, 0},
		{75, 150, 0.5},
		{-150, 150, -1},
		{180, 150, 1},
		{-40000, 32767, -1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := NormalizeStick(tt.raw, tt.limit); got != tt.want {
			t.Errorf("NormalizeStick(%d, %d) = %v, want %v", tt.raw, tt.limit, got, tt.want)
		}
	}
}

func TestDeadzoneAndDigital(t *testing.T) {
	if got := ApplyDeadzone(0.04, 0.05); got != 0 {
		t.Errorf("ApplyDeadzone(0.04) = %v", got)
	}
	if got := ApplyDeadzone(-0.5, 0.05); got != -0.5 {
		t.Errorf("ApplyDeadzone(-0.5) = %v", got)
	}
	if Digital(true) != 1 || Digital(false) != 0 {
		t.Error("Digital mismatch")
	}
}

func TestSensorAxis(t *testing.T) {
	gyro := f32.Vec3{1, 2, 3}
	accel := f32.Vec3{4, 5, 6}
	for i, want := range []float32{0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 0} {
		if got := SensorAxis(gyro, accel, i); got != want {
			t.Errorf("SensorAxis(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestGUIDRoundTrip(t *testing.T) {
	guid := DeviceGUID(TypeSwitchPro)
	if guid != "030000007e0500000920000000000000" {
		t.Errorf("DeviceGUID(switchpro) = %s", guid)
	}
	info, ok := ParseGUID(guid)
	if !ok || info != (DeviceInfo{Vendor: 0x057E, Product: 0x2009}) {
		t.Errorf("ParseGUID = %v, %v", info, ok)
	}
	if ClassifyUSB(info.Vendor, info.Product) != TypeSwitchPro {
		t.Error("ClassifyUSB does not recover switchpro")
	}

	if _, ok := ParseGUID(DeviceGUID(TypeNintendo3DS)); ok {
		t.Error("built-in 3DS input parsed as a USB device")
	}
	if _, ok := DeviceInfoFor(TypeWiiUGamepad); ok {
		t.Error("Wii U GamePad reports a USB identity")
	}
	for _, bad := range []string{"", "zz", "0300"} {
		if _, ok := ParseGUID(bad); ok {
			t.Errorf("ParseGUID(%q) succeeded", bad)
		}
	}
	if ClassifyUSB(0x1234, 0x5678) != TypeUnknown {
		t.Error("unknown device classified")
	}
}

func TestClampAmplitude(t *testing.T) {
	for in, want := range map[float32]float32{-1: 0, 0: 0, 0.25: 0.25, 1: 1, 3: 1} {
		if got := ClampAmplitude(in); got != want {
			t.Errorf("ClampAmplitude(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestDisconnectedJoystickReportsZero(t *testing.T) {
	j := newFakeJoystick(0, nil)
	j.present = true
	if !j.Open(0) {
		t.Fatal("Open failed")
	}
	j.SetButtons(bitA, bitB, bitA|bitX)
	j.SetAxis(int(AxisLeftX), 0.75)

	j.connected = false
	if _, ok := j.NextPressed(); ok {
		t.Error("NextPressed on a disconnected device")
	}
	if _, ok := j.NextReleased(); ok {
		t.Error("NextReleased on a disconnected device")
	}
	if j.IsDown(0) || j.IsGamepadDown(ButtonX) {
		t.Error("held buttons on a disconnected device")
	}
	for i := -1; i < SensorAxisCount+1; i++ {
		if v := j.Axis(i); v != 0 {
			t.Errorf("Axis(%d) = %v", i, v)
		}
	}
	if j.AxisCount() != 0 || j.ButtonCount() != 0 || j.Axes() != nil {
		t.Error("counts are not zero while disconnected")
	}
	if j.InstanceID() < 0 {
		t.Error("instance id dropped before Close")
	}

	j.Close()
	if j.InstanceID() != -1 {
		t.Errorf("InstanceID() = %d after Close", j.InstanceID())
	}
	j.Close()
}

func TestConnectedSnapshot(t *testing.T) {
	j := newFakeJoystick(0, nil)
	j.present = true
	j.Open(0)
	j.SetButtons(bitA|bitB, 0, bitX)
	j.SetAxis(int(AxisTriggerRight), 1)

	if in, ok := j.NextPressed(); !ok || in.Button != ButtonA {
		t.Errorf("NextPressed = %+v, %v", in, ok)
	}
	if in, ok := j.NextPressed(); !ok || in.Button != ButtonB {
		t.Errorf("NextPressed = %+v, %v", in, ok)
	}
	if _, ok := j.NextPressed(); ok {
		t.Error("pressed mask not drained")
	}
	if !j.IsDown(2) || !j.IsGamepadDown(ButtonX) {
		t.Error("x not held")
	}
	if j.GamepadAxis(AxisTriggerRight) != 1 {
		t.Error("trigger axis lost")
	}
	if j.ButtonCount() != 4 || j.AxisCount() != SensorAxisCount {
		t.Errorf("counts = %d buttons, %d axes", j.ButtonCount(), j.AxisCount())
	}
	if j.Name() != "Pro Controller" || !j.IsGamepad() {
		t.Errorf("identity = %q gamepad=%v", j.Name(), j.IsGamepad())
	}
}

func TestVibrationExpiry(t *testing.T) {
	clock := newFakeClock()
	reg := NewVibrationRegistry(WithClock(clock))
	j := newFakeJoystick(3, reg)
	j.present = true
	j.Open(3)

	if !j.SetVibration(0.5, 0.5, 2*time.Second) {
		t.Fatal("SetVibration failed")
	}
	if l, r := j.Vibration(); l != 0.5 || r != 0.5 {
		t.Errorf("Vibration() = %v, %v", l, r)
	}
	if got := reg.Active(); len(got) != 1 || got[0] != 3 {
		t.Errorf("Active() = %v", got)
	}

	clock.Advance(time.Second)
	if got := reg.Sweep(); len(got) != 0 {
		t.Errorf("early Sweep stopped %v", got)
	}

	clock.Advance(time.Second)
	if got := reg.Sweep(); len(got) != 1 || got[0] != 3 {
		t.Errorf("Sweep() = %v, want [3]", got)
	}
	if l, r := j.Vibration(); l != 0 || r != 0 {
		t.Errorf("Vibration() = %v, %v after sweep", l, r)
	}
	if reg.Len() != 0 {
		t.Error("stopped device still registered")
	}
}

func TestVibrationForeverAndFailure(t *testing.T) {
	clock := newFakeClock()
	reg := NewVibrationRegistry(WithClock(clock))
	j := newFakeJoystick(0, reg)
	j.present = true
	j.Open(0)

	j.SetVibration(2, -1, -1)
	if st := j.VibrationState(); !st.Forever() || st.Left != 1 || st.Right != 0 {
		t.Errorf("VibrationState() = %+v", st)
	}
	clock.Advance(24 * time.Hour)
	if got := reg.Sweep(); len(got) != 0 {
		t.Errorf("Sweep stopped an indefinite vibration: %v", got)
	}

	j.submitOK = false
	if j.SetVibration(1, 1, time.Second) {
		t.Error("SetVibration reported success on a failed submit")
	}
	if l, r := j.Vibration(); l != 0 || r != 0 || reg.Len() != 0 {
		t.Errorf("failed submit left %v, %v registered=%d", l, r, reg.Len())
	}
}

func TestSweepRetriesFailedStop(t *testing.T) {
	clock := newFakeClock()
	reg := NewVibrationRegistry(WithClock(clock))
	j := newFakeJoystick(1, reg)
	j.present = true
	j.Open(1)
	j.SetVibration(1, 1, time.Millisecond)

	j.stopFails = true
	clock.Advance(time.Second)
	if got := reg.Sweep(); len(got) != 0 {
		t.Errorf("Sweep() = %v with a failing stop", got)
	}
	j.stopFails = false
	if got := reg.Sweep(); len(got) != 1 {
		t.Errorf("retry Sweep() = %v", got)
	}
}

func TestEndTimeFor(t *testing.T) {
	now := time.Unix(0, 0)
	if !EndTimeFor(now, -time.Second).IsZero() {
		t.Error("negative duration has an end time")
	}
	if got := EndTimeFor(now, time.Second); !got.Equal(now.Add(time.Second)) {
		t.Errorf("EndTimeFor(1s) = %v", got)
	}
	if got := EndTimeFor(now, 1<<62); !got.Equal(now.Add(MaxVibrationDuration)) {
		t.Errorf("EndTimeFor(huge) = %v", got)
	}
}

func TestManagerHotPlug(t *testing.T) {
	d := &fakeDriver{slots: make([]*fakeJoystick, 3)}
	d.slots[1] = &fakeJoystick{present: true}
	m := NewManager(d, WithManagerClock(newFakeClock()))

	added, removed := m.Scan()
	if len(added) != 1 || added[0].ID() != 1 || len(removed) != 0 {
		t.Fatalf("Scan() added %d removed %d", len(added), len(removed))
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d", m.Count())
	}
	if _, ok := m.Joystick(0); ok {
		t.Error("empty slot reported open")
	}
	if _, ok := m.Joystick(7); ok {
		t.Error("out-of-range slot reported open")
	}

	added, _ = m.Scan()
	if len(added) != 0 {
		t.Error("second Scan re-added the device")
	}

	d.slots[1].connected = false
	d.slots[1].present = false
	_, removed = m.Scan()
	if len(removed) != 1 || removed[0].InstanceID() != -1 {
		t.Fatalf("Scan() removed %v", removed)
	}
	if len(m.Joysticks()) != 0 {
		t.Error("removed joystick still listed")
	}
}

func TestManagerClose(t *testing.T) {
	d := &fakeDriver{slots: []*fakeJoystick{{present: true}, {present: true}}}
	m := NewManager(d)
	m.Scan()
	j, ok := m.Joystick(0)
	if !ok {
		t.Fatal("slot 0 not open")
	}
	j.SetVibration(1, 1, -1)
	if m.Registry().Len() != 1 {
		t.Fatal("vibration not registered")
	}

	m.Close()
	if m.Count() != 0 || m.Registry().Len() != 0 {
		t.Errorf("Close left %d open, %d vibrating", m.Count(), m.Registry().Len())
	}
	if d.slots[0].stops == 0 {
		t.Error("Close did not stop the motors")
	}
}
