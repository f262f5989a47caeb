package joystick

import (
	"github.com/lovepotion/love"
)

// managerOptions holds optional configuration for a Manager.
type managerOptions struct {
	registry *VibrationRegistry
	clock    Clock
}

func defaultManagerOptions() managerOptions {
	return managerOptions{clock: SystemClock{}}
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerOptions)

// WithRegistry makes the Manager share reg with other owners.
func WithRegistry(reg *VibrationRegistry) ManagerOption {
	return func(o *managerOptions) {
		o.registry = reg
	}
}

// WithManagerClock sets the clock of the Manager's own registry. It has
// no effect together with WithRegistry.
func WithManagerClock(c Clock) ManagerOption {
	return func(o *managerOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// Manager owns the joysticks of one platform driver. It opens devices as
// they appear, closes them when they disappear and sweeps vibrations.
//
// Manager is not safe for concurrent use; drive it from the input tick.
type Manager struct {
	driver   Driver
	registry *VibrationRegistry
	slots    []Joystick
}

// NewManager creates a Manager over driver. No device is opened until the
// first Scan.
func NewManager(driver Driver, opts ...ManagerOption) *Manager {
	o := defaultManagerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	reg := o.registry
	if reg == nil {
		reg = NewVibrationRegistry(WithClock(o.clock))
	}
	return &Manager{
		driver:   driver,
		registry: reg,
		slots:    make([]Joystick, max(driver.MaxJoysticks(), 0)),
	}
}

// Driver returns the platform driver.
func (m *Manager) Driver() Driver { return m.driver }

// Registry returns the vibration registry shared by every joystick.
func (m *Manager) Registry() *VibrationRegistry { return m.registry }

// Scan checks every slot. Closed slots with a device present are opened
// and returned in added; open slots whose device is gone are closed and
// returned in removed.
func (m *Manager) Scan() (added, removed []Joystick) {
	log := love.Logger()
	for i := range m.slots {
		j := m.slots[i]
		if j == nil {
			j = m.driver.NewJoystick(i, m.registry)
			m.slots[i] = j
		}

		if j.InstanceID() >= 0 {
			if j.IsConnected() {
				continue
			}
			log.Info("joystick: removed", "id", i, "name", j.Name())
			j.Close()
			removed = append(removed, j)
			continue
		}

		if j.Open(i) {
			log.Info("joystick: added", "id", i, "name", j.Name(),
				"type", j.GamepadType().String(), "guid", j.GUID())
			added = append(added, j)
		}
	}
	return added, removed
}

// Joysticks returns the open joysticks in slot order.
func (m *Manager) Joysticks() []Joystick {
	var open []Joystick
	for _, j := range m.slots {
		if j != nil && j.InstanceID() >= 0 {
			open = append(open, j)
		}
	}
	return open
}

// Joystick returns the open joystick in slot id.
func (m *Manager) Joystick(id int) (Joystick, bool) {
	if id < 0 || id >= len(m.slots) {
		return nil, false
	}
	j := m.slots[id]
	if j == nil || j.InstanceID() < 0 {
		return nil, false
	}
	return j, true
}

// Count returns the number of open joysticks.
func (m *Manager) Count() int {
	n := 0
	for _, j := range m.slots {
		if j != nil && j.InstanceID() >= 0 {
			n++
		}
	}
	return n
}

// SweepVibrations stops expired vibrations and returns the affected ids.
func (m *Manager) SweepVibrations() []int {
	return m.registry.Sweep()
}

// Close closes every open joystick.
func (m *Manager) Close() {
	for _, j := range m.slots {
		if j != nil && j.InstanceID() >= 0 {
			love.Logger().Debug("joystick: close", "id", j.ID())
			j.Close()
		}
	}
}
