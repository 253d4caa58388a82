//go:build unix && !linux

package signals

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

func raise(signo int) error {
	return unix.Kill(unix.Getpid(), syscall.Signal(signo))
}

// restoreDefault takes signo out of the ignored state. x/sys/unix has no
// sigaction here, so the runtime's handler is reinstalled and its default
// action applies.
func restoreDefault(signo int) error {
	sig := syscall.Signal(signo)
	if !signal.Ignored(sig) {
		return nil
	}
	c := make(chan os.Signal, 1)
	signal.Notify(c, sig)
	signal.Stop(c)
	return nil
}
