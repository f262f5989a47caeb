package desktop

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// source is the gamepad state a joystick reads. The ebiten implementation
// is only valid inside an ebiten game loop, where inpututil tracks the
// per-tick button edges.
type source interface {
	GamepadIDs() []ebiten.GamepadID
	HasStandardLayout(id ebiten.GamepadID) bool
	Name(id ebiten.GamepadID) string
	SDLID(id ebiten.GamepadID) string

	IsPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	IsJustPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	IsJustReleased(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool
	ButtonValue(id ebiten.GamepadID, b ebiten.StandardGamepadButton) float64
	AxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64

	Vibrate(id ebiten.GamepadID, opts *ebiten.VibrateGamepadOptions)
}

type ebitenSource struct {
	ids []ebiten.GamepadID
}

func (s *ebitenSource) GamepadIDs() []ebiten.GamepadID {
	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	slices.Sort(s.ids)
	return s.ids
}

func (*ebitenSource) HasStandardLayout(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (*ebitenSource) Name(id ebiten.GamepadID) string  { return ebiten.GamepadName(id) }
func (*ebitenSource) SDLID(id ebiten.GamepadID) string { return ebiten.GamepadSDLID(id) }

func (*ebitenSource) IsPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, b)
}

func (*ebitenSource) IsJustPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return inpututil.IsStandardGamepadButtonJustPressed(id, b)
}

func (*ebitenSource) IsJustReleased(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	return inpututil.IsStandardGamepadButtonJustReleased(id, b)
}

func (*ebitenSource) ButtonValue(id ebiten.GamepadID, b ebiten.StandardGamepadButton) float64 {
	return ebiten.StandardGamepadButtonValue(id, b)
}

func (*ebitenSource) AxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, a)
}

func (*ebitenSource) Vibrate(id ebiten.GamepadID, opts *ebiten.VibrateGamepadOptions) {
	ebiten.VibrateGamepad(id, opts)
}
