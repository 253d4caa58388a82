//go:build unix

package signals

import (
	"errors"
	"fmt"
	"syscall"
)

var (
	ErrNoHandler = errors.New("signals: no handler provided")
)

// SystemError reports a failed system call. Op names the operation that
// failed (listen, wait, ignore, ...).
type SystemError struct {
	Op    string
	Errno syscall.Errno
}

func (e *SystemError) Error() string {
	return "signals." + e.Op + ": " + e.Errno.Error()
}

func (e *SystemError) Unwrap() error { return e.Errno }

// wrapErrno converts err into a *SystemError when it carries an errno.
// A nil err stays nil.
func wrapErrno(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *SystemError
	if errors.As(err, &se) {
		return &SystemError{Op: op, Errno: se.Errno}
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return &SystemError{Op: op, Errno: errno}
	}
	return fmt.Errorf("signals.%s: %w", op, err)
}
