//go:build unix

package signals

import (
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// The functions below change process-wide (Ignore, Default) or thread-wide
// (Block, Unblock, Raise) state. Each processes its arguments in order and
// stops at the first failure, returning a *SystemError.

// Ignore sets the disposition of signos to ignore.
//
// On Linux the Listener is fed by os/signal, so ignoring a signal also stops
// its delivery to every Listener in the process until the signal is armed
// again with Listener.Add. kqueue Listeners keep recording it.
func Ignore(signos ...int) error {
	return setDisposition("ignore", signos, func(sig syscall.Signal) error {
		signal.Ignore(sig)
		return nil
	})
}

// Default restores the default disposition of signos. Like Ignore it
// detaches any Linux Listener observing them.
func Default(signos ...int) error {
	return setDisposition("default", signos, func(sig syscall.Signal) error {
		signal.Reset(sig)
		// Reset leaves a previously ignored signal at SIG_IGN.
		return restoreDefault(int(sig))
	})
}

func setDisposition(op string, signos []int, apply func(syscall.Signal) error) error {
	for _, signo := range signos {
		if !validSignal(signo) || signo == int(unix.SIGKILL) || signo == int(unix.SIGSTOP) {
			return &SystemError{Op: op, Errno: syscall.EINVAL}
		}
		if err := apply(syscall.Signal(signo)); err != nil {
			return wrapErrno(op, err)
		}
	}
	return nil
}

// Block adds signos to the calling thread's signal mask. Goroutines migrate
// between threads; pin with runtime.LockOSThread for the change to stick.
func Block(signos ...int) error {
	return wrapErrno("block", changeMask(true, signos))
}

// Unblock removes signos from the calling thread's signal mask.
func Unblock(signos ...int) error {
	return wrapErrno("unblock", changeMask(false, signos))
}

// Raise sends each signal to the calling thread in order.
func Raise(signos ...int) error {
	for _, signo := range signos {
		if !validSignal(signo) {
			return &SystemError{Op: "raise", Errno: syscall.EINVAL}
		}
		if err := raise(signo); err != nil {
			return wrapErrno("raise", err)
		}
	}
	return nil
}

// Describe returns a human readable description of signo, or
// "signal N" when the number is unknown.
func Describe(signo int) string {
	return syscall.Signal(signo).String()
}
