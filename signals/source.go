//go:build unix

package signals

import (
	"os"
	"os/signal"
)

// SignalSource abstracts delivery of signals to a channel.
// It is primarily useful for injecting fakes during testing.
type SignalSource interface {
	// Notify registers c to receive the given signals.
	Notify(c chan<- os.Signal, sig ...os.Signal)
	// Stop unregisters c from all signals. No value is sent on c after
	// Stop returns.
	Stop(c chan<- os.Signal)
}

// runtimeSource is the production SignalSource backed by os/signal.
type runtimeSource struct{}

func (runtimeSource) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (runtimeSource) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}
