//go:build unix

package signals

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"golang.org/x/sys/unix"
)

// Handler is called once per drained signal.
type Handler func(signo int)

// Run drives the Listener with poll(2) until ctx is done, calling h for each
// signal in ascending order. It returns ctx.Err() on cancellation or the
// first error from Wait or poll. Panics in h are recovered.
func (l *Listener) Run(ctx context.Context, h Handler) error {
	if h == nil {
		return ErrNoHandler
	}
	interval := l.policy.PollInterval
	if interval <= 0 {
		interval = defaultPolicy().PollInterval
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		for {
			signo, ok, err := l.Wait()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			l.dispatch(h, signo)
		}

		timeout := interval
		if d, ok := l.Timeout(); ok && d < timeout {
			timeout = d
		}
		fds := []unix.PollFd{{Fd: int32(l.Fd()), Events: pollEvents(l.Events())}}
		if _, err := unix.Poll(fds, pollTimeout(timeout)); err != nil && !errors.Is(err, unix.EINTR) {
			return wrapErrno("run", err)
		}
	}
}

func (l *Listener) dispatch(h Handler, signo int) {
	defer func() {
		if rec := recover(); rec != nil && l.policy.LogPanics {
			l.logf("signals: panic in handler for %d: %v\n%s", signo, rec, string(debug.Stack()))
		}
	}()
	start := time.Now()
	h(signo)
	l.debugf("signals: handled %d in %s", signo, time.Since(start))
}

// pollTimeout converts d to poll(2) milliseconds, rounding up so a positive
// interval never turns into a busy loop.
func pollTimeout(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Millisecond - 1) / time.Millisecond)
}

func pollEvents(i Interest) int16 {
	if i&Readable != 0 {
		return unix.POLLIN
	}
	return 0
}
