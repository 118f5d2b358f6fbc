package screen

import (
	"errors"
	"fmt"
)

var (
	// ErrScreenNotRegistered is returned when a screen name has no registry entry.
	ErrScreenNotRegistered = errors.New("screen not registered")

	// ErrUnknownReference is returned when a registry entry points at a
	// constructor that is missing from the catalog.
	ErrUnknownReference = errors.New("unknown screen reference")

	// ErrNotAttached means the surface does not hold the screen after a load.
	ErrNotAttached = errors.New("screen not attached")

	// ErrPayloadUnsupported means the target screen cannot receive data.
	ErrPayloadUnsupported = errors.New("screen does not accept payloads")

	// ErrReentrantNavigation is returned when a screen constructor tries to
	// load or navigate while another load is still running.
	ErrReentrantNavigation = errors.New("navigation requested during screen construction")
)

// LoadError reports a failed construction or attach of a screen. The screen
// stays unloaded and the next Load retries it.
type LoadError struct {
	Screen string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load screen %q: %v", e.Screen, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// NavigationError reports that a screen could not be activated. The active
// screen is left unchanged.
type NavigationError struct {
	Screen string
	Err    error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("could not navigate to %q: %v", e.Screen, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// PayloadError reports a failed payload delivery. The screen has already been
// activated when this error is returned and may show stale content.
type PayloadError struct {
	Screen string
	Err    error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("screen %q is active but did not accept payload: %v", e.Screen, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }
