package console

import "sync/atomic"

// Verbosity is the shared verbose switch read by status listeners and toggled by the panel
type Verbosity struct {
	enabled atomic.Bool
}

// NewVerbosity creates a switch with the given initial state
func NewVerbosity(enabled bool) *Verbosity {
	v := &Verbosity{}
	v.enabled.Store(enabled)

	return v
}

// Enabled reports whether verbose output is on
func (v *Verbosity) Enabled() bool {
	return v.enabled.Load()
}

// Set switches verbose output on or off
func (v *Verbosity) Set(enabled bool) {
	v.enabled.Store(enabled)
}

// Toggle flips the switch and returns the new state
func (v *Verbosity) Toggle() bool {
	for {
		old := v.enabled.Load()
		if v.enabled.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
