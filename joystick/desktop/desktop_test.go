package desktop

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lovepotion/love/joystick"
)

type fakeGamepad struct {
	name, sdlID    string
	nonStandard    bool
	held, just, up map[ebiten.StandardGamepadButton]bool
	axes           [4]float64
	triggers       [2]float64
	vibrations     []ebiten.VibrateGamepadOptions
}

type fakeSource struct {
	pads map[ebiten.GamepadID]*fakeGamepad
	ids  []ebiten.GamepadID
}

func newFakeSource() *fakeSource {
	return &fakeSource{pads: make(map[ebiten.GamepadID]*fakeGamepad)}
}

func (s *fakeSource) plug(id ebiten.GamepadID, pad *fakeGamepad) {
	s.pads[id] = pad
	s.ids = append(s.ids, id)
}

func (s *fakeSource) unplug(id ebiten.GamepadID) {
	delete(s.pads, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return
		}
	}
}

func (s *fakeSource) GamepadIDs() []ebiten.GamepadID { return s.ids }

func (s *fakeSource) HasStandardLayout(id ebiten.GamepadID) bool { return !s.pads[id].nonStandard }

func (s *fakeSource) Name(id ebiten.GamepadID) string  { return s.pads[id].name }
func (s *fakeSource) SDLID(id ebiten.GamepadID) string { return s.pads[id].sdlID }

func (s *fakeSource) IsPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return s.pads[id].held[b]
}

func (s *fakeSource) IsJustPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return s.pads[id].just[b]
}

func (s *fakeSource) IsJustReleased(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return s.pads[id].up[b]
}

func (s *fakeSource) ButtonValue(id ebiten.GamepadID, b ebiten.StandardGamepadButton) float64 {
	switch b {
	case ebiten.StandardGamepadButtonFrontBottomLeft:
		return s.pads[id].triggers[0]
	case ebiten.StandardGamepadButtonFrontBottomRight:
		return s.pads[id].triggers[1]
	}
	return 0
}

func (s *fakeSource) AxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return s.pads[id].axes[a]
}

func (s *fakeSource) Vibrate(id ebiten.GamepadID, opts *ebiten.VibrateGamepadOptions) {
	s.pads[id].vibrations = append(s.pads[id].vibrations, *opts)
}

const ps4GUID = "030000004c050000c405000000000000"

func TestIdentify(t *testing.T) {
	tests := []struct {
		name, sdlID string
		wantType    joystick.GamepadType
		wantName    string
		hasInfo     bool
	}{
		{"Wireless Controller", ps4GUID, joystick.TypePS4, "Wireless Controller", true},
		{"", ps4GUID, joystick.TypePS4, joystick.DeviceName(joystick.TypePS4), true},
		{"Arcade Stick", "03000000aaaa0000bbbb000000000000", joystick.TypeUnknown, "Arcade Stick", true},
		{"Mystery", "", joystick.TypeUnknown, "Mystery", false},
	}
	for _, tt := range tests {
		id := Identify(tt.name, tt.sdlID)
		if id.Type != tt.wantType || id.Name != tt.wantName || id.HasInfo != tt.hasInfo {
			t.Errorf("Identify(%q, %q) = %+v", tt.name, tt.sdlID, id)
		}
	}
}

func TestUpdate(t *testing.T) {
	src := newFakeSource()
	src.plug(7, &fakeGamepad{
		name:  "Pad",
		sdlID: ps4GUID,
		held: map[ebiten.StandardGamepadButton]bool{
			ebiten.StandardGamepadButtonRightBottom: true,
			ebiten.StandardGamepadButtonLeftLeft:    true,
		},
		just: map[ebiten.StandardGamepadButton]bool{
			ebiten.StandardGamepadButtonLeftLeft:    true,
			ebiten.StandardGamepadButtonRightBottom: true,
		},
		up: map[ebiten.StandardGamepadButton]bool{
			ebiten.StandardGamepadButtonCenterCenter: true,
		},
		axes:     [4]float64{0.25, 0.5, -0.75, -1},
		triggers: [2]float64{0.5, 1},
	})
	drv := newDriver(src)
	j := drv.NewJoystick(0, nil)
	if !j.Open(0) {
		t.Fatal("Open(0) failed")
	}
	if j.GamepadType() != joystick.TypePS4 {
		t.Errorf("GamepadType() = %v", j.GamepadType())
	}
	j.Update()

	for _, want := range []joystick.GamepadButton{joystick.ButtonA, joystick.ButtonDpadLeft} {
		if in, ok := j.NextPressed(); !ok || in.Button != want {
			t.Errorf("NextPressed() = %+v, %v; want %v", in, ok, want)
		}
	}
	if in, ok := j.NextReleased(); !ok || in.Button != joystick.ButtonGuide {
		t.Errorf("NextReleased() = %+v, %v", in, ok)
	}
	if !j.IsGamepadDown(joystick.ButtonA) || j.IsGamepadDown(joystick.ButtonB) {
		t.Error("held state wrong")
	}

	want := []float32{0.25, 0.5, -0.75, -1, 0.5, 1}
	got := j.Axes()
	if len(got) != len(want) {
		t.Fatalf("Axes() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Axis(%d) = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestClaims(t *testing.T) {
	src := newFakeSource()
	src.plug(1, &fakeGamepad{name: "one"})
	src.plug(2, &fakeGamepad{name: "raw", nonStandard: true})
	src.plug(3, &fakeGamepad{name: "three"})

	m := joystick.NewManager(newDriver(src))
	added, _ := m.Scan()
	if len(added) != 2 {
		t.Fatalf("Scan() added %d joysticks, want 2", len(added))
	}
	if added[0].Name() != "one" || added[1].Name() != "three" {
		t.Errorf("slots hold %q and %q", added[0].Name(), added[1].Name())
	}

	src.unplug(1)
	_, removed := m.Scan()
	if len(removed) != 1 || removed[0].ID() != 0 {
		t.Fatalf("Scan() removed %v", removed)
	}
	if j, _ := m.Joystick(1); j.Name() != "three" {
		t.Error("slot 1 lost its gamepad")
	}

	src.plug(4, &fakeGamepad{name: "four"})
	added, _ = m.Scan()
	if len(added) != 1 || added[0].ID() != 0 || added[0].Name() != "four" {
		t.Errorf("Scan() added %v", added)
	}
}

func TestVibration(t *testing.T) {
	src := newFakeSource()
	pad := &fakeGamepad{}
	src.plug(0, pad)
	reg := joystick.NewVibrationRegistry()
	j := newDriver(src).NewJoystick(0, reg)
	j.Open(0)

	if !j.SetVibration(1, 0.5, -1) {
		t.Fatal("SetVibration failed")
	}
	last := pad.vibrations[len(pad.vibrations)-1]
	if last.Duration != joystick.MaxVibrationDuration || last.StrongMagnitude != 1 || last.WeakMagnitude != 0.5 {
		t.Errorf("vibrate options = %+v", last)
	}
	if reg.Len() != 1 {
		t.Error("vibration not registered")
	}

	j.SetVibration(0.25, 0, 2*time.Second)
	if last = pad.vibrations[len(pad.vibrations)-1]; last.Duration != 2*time.Second {
		t.Errorf("duration = %v", last.Duration)
	}

	j.Close()
	if last = pad.vibrations[len(pad.vibrations)-1]; last.StrongMagnitude != 0 || last.Duration != 0 {
		t.Errorf("Close sent %+v", last)
	}
	if reg.Len() != 0 {
		t.Error("closed joystick still registered")
	}

	src.unplug(0)
	if j.Open(0) || j.SetVibration(1, 1, time.Second) {
		t.Error("vibrated without a gamepad")
	}
}

func TestReopen(t *testing.T) {
	src := newFakeSource()
	pad := &fakeGamepad{name: "pad"}
	src.plug(5, pad)
	drv := newDriver(src)
	reg := joystick.NewVibrationRegistry()
	j := drv.NewJoystick(0, reg)
	if !j.Open(0) {
		t.Fatal("Open failed")
	}
	first := j.InstanceID()
	j.SetVibration(1, 1, -1)

	if !j.Open(0) {
		t.Fatal("second Open failed")
	}
	if j.InstanceID() == first {
		t.Errorf("instance id %d kept across Open", first)
	}
	if reg.Len() != 0 || j.VibrationState().Active() {
		t.Errorf("vibration survived the reopen: %v", reg.Active())
	}
	if last := pad.vibrations[len(pad.vibrations)-1]; last.StrongMagnitude != 0 {
		t.Errorf("reopen did not stop the motors: %+v", last)
	}
	if len(drv.claimed) != 1 || drv.claimed[5] != 0 {
		t.Errorf("claims = %v, want gamepad 5 held by slot 0", drv.claimed)
	}
	if drv.NewJoystick(1, reg).Open(1) {
		t.Error("a second slot claimed the reopened gamepad")
	}
}
