package joystick

import (
	"math"
	"slices"
	"time"
)

// MaxVibrationDuration is the longest finite vibration. Longer requests
// are clamped to it.
const MaxVibrationDuration = time.Duration(math.MaxUint32) * time.Millisecond

// Vibration is the motor state of a device.
type Vibration struct {
	Left  float32
	Right float32

	// EndTime is the absolute expiry time. The zero value means the
	// vibration runs until stopped.
	EndTime time.Time
}

// Forever reports whether v has no expiry.
func (v Vibration) Forever() bool { return v.EndTime.IsZero() }

// Active reports whether either motor is running.
func (v Vibration) Active() bool { return v.Left > 0 || v.Right > 0 }

// Expired reports whether a finite vibration has reached its end at now.
func (v Vibration) Expired(now time.Time) bool {
	return !v.EndTime.IsZero() && !v.EndTime.After(now)
}

// ClampAmplitude clamps a motor amplitude into [0, 1]. NaN becomes 0.
func ClampAmplitude(a float32) float32 {
	if !(a > 0) {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// EndTimeFor returns the expiry of a vibration of duration d started at
// now. A negative duration runs until stopped and yields the zero time.
func EndTimeFor(now time.Time, d time.Duration) time.Time {
	if d < 0 {
		return time.Time{}
	}
	return now.Add(min(d, MaxVibrationDuration))
}

// Clock is the time source used for vibration expiry.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so comparisons between its values are immune to clock changes.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Vibrator is a device whose vibration can be swept.
type Vibrator interface {
	ID() int
	StopVibration() bool
	VibrationState() Vibration
}

// VibrationRegistry tracks vibrating devices so that finite vibrations can
// be stopped once they expire.
//
// VibrationRegistry is not safe for concurrent use. Sweep must run on the
// goroutine that starts vibrations.
type VibrationRegistry struct {
	clock  Clock
	active map[int]Vibrator
}

// RegistryOption configures a VibrationRegistry.
type RegistryOption func(*VibrationRegistry)

// WithClock sets the time source used to detect expired vibrations.
func WithClock(c Clock) RegistryOption {
	return func(r *VibrationRegistry) {
		if c != nil {
			r.clock = c
		}
	}
}

// NewVibrationRegistry creates an empty registry.
func NewVibrationRegistry(opts ...RegistryOption) *VibrationRegistry {
	r := &VibrationRegistry{
		clock:  SystemClock{},
		active: make(map[int]Vibrator),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Clock returns the registry's time source.
func (r *VibrationRegistry) Clock() Clock { return r.clock }

// Add registers v under id, replacing any previous entry.
func (r *VibrationRegistry) Add(id int, v Vibrator) { r.active[id] = v }

// Remove forgets id.
func (r *VibrationRegistry) Remove(id int) { delete(r.active, id) }

// Len returns the number of registered devices.
func (r *VibrationRegistry) Len() int { return len(r.active) }

// Active returns the ids of registered devices in ascending order.
func (r *VibrationRegistry) Active() []int {
	ids := make([]int, 0, len(r.active))
	for id := range r.active {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Sweep stops every registered vibration whose end time has passed and
// returns the ids it stopped in ascending order. Devices whose stop request
// fails stay registered and are retried on the next sweep.
func (r *VibrationRegistry) Sweep() []int {
	now := r.clock.Now()
	var stopped []int
	for _, id := range r.Active() {
		v := r.active[id]
		if !v.VibrationState().Expired(now) {
			continue
		}
		if v.StopVibration() {
			delete(r.active, id)
			stopped = append(stopped, id)
		}
	}
	return stopped
}
