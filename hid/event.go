package hid

import (
	"fmt"

	"github.com/lovepotion/love/bimap"
	"github.com/lovepotion/love/joystick"
)

// EventType is the kind of an input event.
type EventType uint8

const (
	JoystickAdded EventType = iota
	JoystickRemoved
	GamepadPressed
	GamepadReleased
	GamepadAxis
	TouchPressed
	TouchMoved
	TouchReleased
)

var eventTypes = bimap.New(
	bimap.E("joystickadded", JoystickAdded),
	bimap.E("joystickremoved", JoystickRemoved),
	bimap.E("gamepadpressed", GamepadPressed),
	bimap.E("gamepadreleased", GamepadReleased),
	bimap.E("gamepadaxis", GamepadAxis),
	bimap.E("touchpressed", TouchPressed),
	bimap.E("touchmoved", TouchMoved),
	bimap.E("touchreleased", TouchReleased),
)

func (t EventType) String() string {
	if name, ok := eventTypes.ReverseFind(t); ok {
		return name
	}
	return "unknown"
}

// EventTypeByName returns the event type called name.
func EventTypeByName(name string) (EventType, bool) { return eventTypes.Find(name) }

// EventTypeName returns the name of t.
func EventTypeName(t EventType) (string, bool) { return eventTypes.ReverseFind(t) }

// EventTypeNames returns every event name in declaration order.
func EventTypeNames() []string { return eventTypes.Names() }

// Event is one normalized input event. Which is the joystick slot for
// joystick and gamepad events; Touch is set for touch events.
type Event struct {
	Type         EventType
	Which        int
	Button       joystick.GamepadButton
	ButtonNumber int
	Axis         joystick.GamepadAxis
	Value        float32
	Touch        Touch
}

func (e Event) String() string {
	switch e.Type {
	case GamepadPressed, GamepadReleased:
		return fmt.Sprintf("%s(%d, %s)", e.Type, e.Which, e.Button)
	case GamepadAxis:
		return fmt.Sprintf("%s(%d, %s, %.3f)", e.Type, e.Which, e.Axis, e.Value)
	case TouchPressed, TouchMoved, TouchReleased:
		return fmt.Sprintf("%s(%d, %.1f, %.1f)", e.Type, e.Touch.ID, e.Touch.X, e.Touch.Y)
	}
	return fmt.Sprintf("%s(%d)", e.Type, e.Which)
}
