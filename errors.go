package love

import "errors"

// Errors shared by the graphics-state application path.
//
// Lookup failures and unavailable devices are reported with boolean
// results; only driver allocation failures surface as errors.
var (
	// ErrResourceExhausted wraps a native allocation failure (sampler,
	// texture or command memory). It is not recoverable by the caller.
	ErrResourceExhausted = errors.New("love: resource exhausted")

	// ErrNoDevice is returned when a backend is constructed without the
	// native device it needs.
	ErrNoDevice = errors.New("love: no native device")
)
