// Package hid turns joystick and touch state into a queue of input
// events.
//
// A Pump owns one tick of input at a time. Refilling the queue scans for
// hot-plugged devices, updates every connected joystick once, drains its
// button edges, compares its gamepad axes with the values last reported
// and compares the touch contacts with the previous tick. Expired
// vibrations are stopped at the end of every tick.
package hid

import (
	"github.com/lovepotion/love"
	"github.com/lovepotion/love/joystick"
)

type pumpOptions struct {
	touch     TouchSource
	threshold float32
	deadzone  float32
}

// Option configures a Pump.
type Option func(*pumpOptions)

// WithTouch adds a touch screen to the pump.
func WithTouch(src TouchSource) Option {
	return func(o *pumpOptions) {
		o.touch = src
	}
}

// WithAxisThreshold sets how far an axis has to move from its last
// reported value before a new axis event is queued.
func WithAxisThreshold(threshold float32) Option {
	return func(o *pumpOptions) {
		o.threshold = max(threshold, 0)
	}
}

// WithDeadzone snaps axis values within deadzone of rest to zero before
// they are compared.
func WithDeadzone(deadzone float32) Option {
	return func(o *pumpOptions) {
		o.deadzone = max(deadzone, 0)
	}
}

// Pump queues input events from a joystick manager. It is not safe for
// concurrent use.
type Pump struct {
	manager *joystick.Manager
	opts    pumpOptions

	queue   []Event
	filled  bool
	axes    map[int]*[joystick.GamepadAxisCount]float32
	touches []Touch
}

// NewPump returns a pump over m.
func NewPump(m *joystick.Manager, opts ...Option) *Pump {
	p := &Pump{
		manager: m,
		axes:    make(map[int]*[joystick.GamepadAxisCount]float32),
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Manager returns the joystick manager the pump reads.
func (p *Pump) Manager() *joystick.Manager { return p.manager }

// Poll returns the next queued event. The first Poll of a tick refills
// the queue; once the tick's events are drained Poll reports false and
// the next call starts a new tick.
func (p *Pump) Poll() (Event, bool) {
	if len(p.queue) == 0 && !p.filled {
		p.Pump()
	}
	if len(p.queue) == 0 {
		p.filled = false
		return Event{}, false
	}
	e := p.queue[0]
	p.queue = p.queue[1:]
	return e, true
}

// Pending returns the number of queued events.
func (p *Pump) Pending() int { return len(p.queue) }

// Pump runs one tick and appends its events to the queue. Poll drains
// the queue without starting another tick, so a host may call Pump once
// per frame and then Poll until it reports false.
func (p *Pump) Pump() {
	p.filled = true

	added, removed := p.manager.Scan()
	for _, j := range removed {
		delete(p.axes, j.ID())
		p.push(Event{Type: JoystickRemoved, Which: j.ID()})
	}
	for _, j := range added {
		p.axes[j.ID()] = new([joystick.GamepadAxisCount]float32)
		p.push(Event{Type: JoystickAdded, Which: j.ID()})
	}

	for _, j := range p.manager.Joysticks() {
		if !j.IsConnected() {
			continue
		}
		j.Update()
		p.drainButtons(j)
		p.diffAxes(j)
	}

	if p.opts.touch != nil {
		p.diffTouch(p.opts.touch.Touches())
	}

	if stopped := p.manager.SweepVibrations(); len(stopped) > 0 {
		love.Logger().Debug("hid: vibrations expired", "ids", stopped)
	}
}

func (p *Pump) push(e Event) { p.queue = append(p.queue, e) }

func (p *Pump) drainButtons(j joystick.Joystick) {
	for in, ok := j.NextPressed(); ok; in, ok = j.NextPressed() {
		p.push(Event{Type: GamepadPressed, Which: j.ID(), Button: in.Button, ButtonNumber: in.ButtonNumber})
	}
	for in, ok := j.NextReleased(); ok; in, ok = j.NextReleased() {
		p.push(Event{Type: GamepadReleased, Which: j.ID(), Button: in.Button, ButtonNumber: in.ButtonNumber})
	}
}

// diffAxes queues an event for every gamepad axis that moved past the
// threshold, or returned to rest, since it was last reported.
func (p *Pump) diffAxes(j joystick.Joystick) {
	last, ok := p.axes[j.ID()]
	if !ok {
		last = new([joystick.GamepadAxisCount]float32)
		p.axes[j.ID()] = last
	}
	n := min(j.AxisCount(), joystick.GamepadAxisCount)
	for i := range n {
		axis := joystick.GamepadAxis(i)
		v := joystick.ApplyDeadzone(j.GamepadAxis(axis), p.opts.deadzone)
		delta := v - last[i]
		if delta == 0 {
			continue
		}
		if v != 0 && delta <= p.opts.threshold && delta >= -p.opts.threshold {
			continue
		}
		last[i] = v
		p.push(Event{Type: GamepadAxis, Which: j.ID(), Axis: axis, Value: v})
	}
}

func (p *Pump) diffTouch(cur []Touch) {
	pressed, moved, released := diffTouches(p.touches, cur)
	for _, t := range pressed {
		p.push(Event{Type: TouchPressed, Touch: t})
	}
	for _, t := range moved {
		p.push(Event{Type: TouchMoved, Touch: t})
	}
	for _, t := range released {
		p.push(Event{Type: TouchReleased, Touch: t})
	}
	p.touches = append(p.touches[:0], cur...)
}
