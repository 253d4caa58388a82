//go:build unix

package signals

import "time"

// Policy controls the readiness loop driven by Run.
type Policy struct {
	// PollInterval bounds how long Run blocks in poll(2) before rechecking
	// its context.
	PollInterval time.Duration
	// LogPanics logs a recovered handler panic with its stack.
	LogPanics bool
}

func defaultPolicy() Policy {
	return Policy{
		PollInterval: 100 * time.Millisecond,
		LogPanics:    true,
	}
}
