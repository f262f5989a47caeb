package hac

import (
	"errors"
	"testing"
	"time"

	"golang.org/x/image/math/f32"

	"github.com/lovepotion/love/joystick"
)

type mockPad struct {
	connected, handheld bool
	style               StyleTag
	attr                Attribute
	down, up, held      uint64
	sticks              [2]Stick
	updates             int
}

func (p *mockPad) Update()                  { p.updates++ }
func (p *mockPad) IsConnected() bool        { return p.connected }
func (p *mockPad) IsHandheld() bool         { return p.handheld }
func (p *mockPad) StyleSet() StyleTag       { return p.style }
func (p *mockPad) Attributes() Attribute    { return p.attr }
func (p *mockPad) Buttons() uint64          { return p.held }
func (p *mockPad) ButtonsDown() uint64      { return p.down }
func (p *mockPad) ButtonsUp() uint64        { return p.up }
func (p *mockPad) StickPos(index int) Stick { return p.sticks[index] }

type mockHID struct {
	pads map[int]*mockPad

	handleErr error
	startErr  error
	sendErr   error

	started map[SixAxisHandle]bool
	stops   int
	states  map[SixAxisHandle]SixAxisState
	sent    []VibrationValue
	touches []TouchState
}

func newMockHID() *mockHID {
	return &mockHID{
		pads:    make(map[int]*mockPad),
		started: make(map[SixAxisHandle]bool),
		states:  make(map[SixAxisHandle]SixAxisState),
	}
}

func (h *mockHID) OpenPad(index int) Pad {
	if p, ok := h.pads[index]; ok {
		return p
	}
	return &mockPad{}
}

func (h *mockHID) SixAxisHandles(npad int, style StyleTag, count int) ([]SixAxisHandle, error) {
	if h.handleErr != nil {
		return nil, h.handleErr
	}
	handles := make([]SixAxisHandle, count)
	for i := range handles {
		handles[i] = SixAxisHandle(npad<<8 | i)
	}
	return handles, nil
}

func (h *mockHID) StartSixAxis(s SixAxisHandle) error {
	if h.startErr != nil {
		return h.startErr
	}
	h.started[s] = true
	return nil
}

func (h *mockHID) StopSixAxis(s SixAxisHandle) error {
	delete(h.started, s)
	h.stops++
	return nil
}

func (h *mockHID) SixAxisState(s SixAxisHandle) SixAxisState { return h.states[s] }

func (h *mockHID) VibrationHandles(npad int, style StyleTag, count int) ([]VibrationHandle, error) {
	if h.handleErr != nil {
		return nil, h.handleErr
	}
	handles := make([]VibrationHandle, count)
	for i := range handles {
		handles[i] = VibrationHandle(npad<<8 | i)
	}
	return handles, nil
}

func (h *mockHID) SendVibration(handles []VibrationHandle, values []VibrationValue) error {
	if h.sendErr != nil {
		return h.sendErr
	}
	if len(handles) != len(values) {
		return errors.New("handle and value counts differ")
	}
	h.sent = values
	return nil
}

func (h *mockHID) TouchStates() []TouchState { return h.touches }

func TestClassify(t *testing.T) {
	tests := []struct {
		set   StyleTag
		style StyleTag
		want  joystick.GamepadType
		ok    bool
	}{
		{StyleFullKey, StyleFullKey, joystick.TypeSwitchPro, true},
		{StyleHandheld, StyleHandheld, joystick.TypeSwitchHandheld, true},
		{StyleJoyDual, StyleJoyDual, joystick.TypeSwitchJoyconPair, true},
		{StyleHandheld | StyleJoyDual, StyleHandheld, joystick.TypeSwitchHandheld, true},
		{StyleJoyLeft, 0, joystick.TypeUnknown, false},
		{0, 0, joystick.TypeUnknown, false},
	}
	for _, tt := range tests {
		style, typ, ok := Classify(tt.set)
		if style != tt.style || typ != tt.want || ok != tt.ok {
			t.Errorf("Classify(%#x) = %#x, %v, %v", tt.set, style, typ, ok)
		}
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name    string
		pad     mockPad
		index   int
		want    joystick.GamepadType
		npad    int
		devices int
	}{
		{"handheld", mockPad{connected: true, handheld: true, style: StyleHandheld}, 0, joystick.TypeSwitchHandheld, NpadHandheld, 2},
		{"pro", mockPad{connected: true, style: StyleFullKey}, 1, joystick.TypeSwitchPro, NpadNo1 + 1, 1},
		{"joy-con pair", mockPad{connected: true, style: StyleJoyDual}, 2, joystick.TypeSwitchJoyconPair, NpadNo1 + 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMockHID()
			h.pads[tt.index] = &tt.pad
			j := New(tt.index, h, nil)
			if !j.Open(tt.index) {
				t.Fatalf("Open(%d) failed", tt.index)
			}
			if j.GamepadType() != tt.want || j.NpadID() != tt.npad {
				t.Errorf("opened %v on npad %#x", j.GamepadType(), j.NpadID())
			}
			if !j.IsVibrationSupported() {
				t.Error("vibration unsupported")
			}
			j.SetVibration(1, 1, time.Second)
			if len(h.sent) != tt.devices {
				t.Errorf("sent %d vibration values, want %d", len(h.sent), tt.devices)
			}
			if j.ButtonCount() != joystick.ButtonCount-1 || j.AxisCount() != joystick.SensorAxisCount {
				t.Errorf("%d buttons, %d axes", j.ButtonCount(), j.AxisCount())
			}
		})
	}

	h := newMockHID()
	h.pads[3] = &mockPad{connected: true, style: StyleJoyRight}
	if New(3, h, nil).Open(3) {
		t.Error("single Joy-Con opened")
	}
	if New(4, h, nil).Open(4) {
		t.Error("empty slot opened")
	}
	if New(8, h, nil).Open(MaxJoysticks) {
		t.Error("slot past MaxJoysticks opened")
	}
}

func TestUpdate(t *testing.T) {
	h := newMockHID()
	pad := &mockPad{
		connected: true,
		style:     StyleFullKey,
		down:      NpadButtonPlus | NpadButtonA,
		held:      NpadButtonZR | NpadButtonL,
		sticks:    [2]Stick{{X: StickMax, Y: StickMax}, {X: -StickMax, Y: -StickMax}},
	}
	h.pads[0] = pad
	j := New(0, h, nil)
	j.Open(0)
	h.states[SixAxisHandle(0)] = SixAxisState{
		AngularVelocity: f32.Vec3{1, 2, 3},
		Acceleration:    f32.Vec3{4, 5, 6},
	}
	j.Update()

	for _, want := range []joystick.GamepadButton{joystick.ButtonA, joystick.ButtonStart} {
		if in, ok := j.NextPressed(); !ok || in.Button != want || in.ButtonNumber != int(want) {
			t.Errorf("NextPressed() = %+v, %v; want %v", in, ok, want)
		}
	}
	if _, ok := j.NextPressed(); ok {
		t.Error("extra press reported")
	}
	if !j.IsGamepadDown(joystick.ButtonLeftShoulder) || j.IsGamepadDown(joystick.ButtonGuide) {
		t.Error("held state wrong")
	}

	want := []float32{1, -1, -1, 1, 0, 1, 1, 2, 3, 4, 5, 6}
	for i, w := range want {
		if got := j.Axis(i); got != w {
			t.Errorf("Axis(%d) = %v, want %v", i, got, w)
		}
	}

	pad.connected = false
	if j.IsDown(0) || j.Axis(0) != 0 || j.AxisCount() != 0 {
		t.Error("disconnected pad still reports input")
	}
	updates := pad.updates
	j.Update()
	if pad.updates != updates {
		t.Error("Update read a disconnected pad")
	}
}

func TestJoyConSensors(t *testing.T) {
	h := newMockHID()
	pad := &mockPad{
		connected: true,
		style:     StyleJoyDual,
		attr:      AttributeLeftConnected | AttributeRightConnected,
	}
	h.pads[1] = pad
	j := New(1, h, nil)
	j.Open(1)

	left, right := SixAxisHandle(1<<8), SixAxisHandle(1<<8|1)
	if !h.started[left] || !h.started[right] {
		t.Fatalf("started = %v", h.started)
	}
	h.states[left] = SixAxisState{AngularVelocity: f32.Vec3{1, 0, 0}}
	h.states[right] = SixAxisState{AngularVelocity: f32.Vec3{2, 0, 0}}

	j.Update()
	if got := j.Axis(joystick.AxisGyroX); got != 1 {
		t.Errorf("with both attached gyro x = %v, want the left Joy-Con", got)
	}

	pad.attr = AttributeRightConnected
	j.Update()
	if got := j.Axis(joystick.AxisGyroX); got != 2 {
		t.Errorf("with the right attached gyro x = %v, want the right Joy-Con", got)
	}

	j.Close()
	if len(h.started) != 0 {
		t.Errorf("Close left sensors running: %v", h.started)
	}
	if j.InstanceID() != -1 {
		t.Error("instance id kept after Close")
	}
}

func TestReopen(t *testing.T) {
	h := newMockHID()
	h.pads[0] = &mockPad{connected: true, style: StyleJoyDual, attr: AttributeLeftConnected | AttributeRightConnected}
	reg := joystick.NewVibrationRegistry()
	j := New(0, h, reg)
	if !j.Open(0) {
		t.Fatal("Open failed")
	}
	first := j.InstanceID()
	if !j.SetVibration(1, 1, -1) || reg.Len() != 1 {
		t.Fatal("vibration not registered")
	}

	if !j.Open(0) {
		t.Fatal("second Open failed")
	}
	if j.InstanceID() == first {
		t.Errorf("instance id %d kept across Open", first)
	}
	if h.stops != 2 || len(h.started) != 2 {
		t.Errorf("reopen stopped %d sensors and left %d running, want 2 and 2", h.stops, len(h.started))
	}
	if reg.Len() != 0 || j.VibrationState().Active() {
		t.Errorf("vibration survived the reopen: registry %v, state %+v", reg.Active(), j.VibrationState())
	}
	if l, r := h.sent[0].AmpLow, h.sent[0].AmpHigh; l != 0 || r != 0 {
		t.Errorf("last vibration sent %v/%v, want a stop", l, r)
	}

	j.Close()
	j.Close()
	if j.InstanceID() != -1 || len(h.started) != 0 || h.stops != 4 {
		t.Errorf("after Close: id %d, running %d, stops %d", j.InstanceID(), len(h.started), h.stops)
	}
}

func TestHandleFailure(t *testing.T) {
	h := newMockHID()
	h.handleErr = errors.New("no handles")
	h.pads[0] = &mockPad{connected: true, style: StyleFullKey}
	j := New(0, h, nil)
	if !j.Open(0) {
		t.Fatal("Open failed without device handles")
	}
	if j.IsVibrationSupported() || j.SetVibration(1, 1, time.Second) {
		t.Error("vibration available without handles")
	}
	j.Update()
	if j.Axis(joystick.AxisGyroX) != 0 {
		t.Error("sensor read without handles")
	}
}

func TestVibration(t *testing.T) {
	h := newMockHID()
	h.pads[0] = &mockPad{connected: true, handheld: true, style: StyleHandheld}
	reg := joystick.NewVibrationRegistry()
	j := New(0, h, reg)
	j.Open(0)

	if !j.SetVibration(0.75, 2, -1) {
		t.Fatal("SetVibration failed")
	}
	for _, v := range h.sent {
		if v != (VibrationValue{AmpLow: 0.75, FreqLow: FreqLow, AmpHigh: 1, FreqHigh: FreqHigh}) {
			t.Errorf("sent %+v", v)
		}
	}
	if !j.VibrationState().Forever() || reg.Len() != 1 {
		t.Error("endless vibration not registered")
	}

	h.sendErr = errors.New("busy")
	if j.SetVibration(1, 1, time.Second) {
		t.Error("SetVibration succeeded with a failing send")
	}
	if l, r := j.Vibration(); l != 0 || r != 0 || reg.Len() != 0 {
		t.Error("failed vibration left state behind")
	}
}

func TestJoyDevice(t *testing.T) {
	if JoyDeviceLeft.String() != "left" || JoyDeviceRight.String() != "right" || JoyDevice(7).String() != "unknown" {
		t.Errorf("names = %s, %s, %s", JoyDeviceLeft, JoyDeviceRight, JoyDevice(7))
	}
	got := AttachedJoyDevices(AttributeConnected | AttributeRightConnected)
	if len(got) != 1 || got[0] != JoyDeviceRight {
		t.Errorf("AttachedJoyDevices() = %v", got)
	}
}

func TestTouch(t *testing.T) {
	h := newMockHID()
	if got := NewTouch(h).Touches(); got != nil {
		t.Errorf("Touches() = %v with no contacts", got)
	}
	h.touches = []TouchState{{ID: 3, X: 640, Y: 360}}
	got := NewTouch(h).Touches()
	if len(got) != 1 || got[0].ID != 3 || got[0].X != 640 || got[0].Y != 360 {
		t.Errorf("Touches() = %v", got)
	}
}

func TestButtonsSkipGuide(t *testing.T) {
	if _, ok := Buttons().At(int(joystick.ButtonGuide)); ok {
		t.Error("guide mapped")
	}
	if got := joystick.SupportedButtonCount(Buttons()); got != joystick.ButtonCount-1 {
		t.Errorf("SupportedButtonCount() = %d", got)
	}
}
