//go:build unix

package signals

import (
	"errors"
	"runtime"
	"syscall"
	"time"
)

// Interest is the readiness a Listener's descriptor should be polled for.
type Interest uint8

// Readable is the only interest a Listener reports.
const Readable Interest = 1

func (i Interest) String() string {
	if i&Readable != 0 {
		return "r"
	}
	return ""
}

// eventQueue is a kernel-side registry of signal interest. Registrations are
// one-shot from the Listener's point of view: once poll reports a signal the
// Listener re-adds it. add must be idempotent.
type eventQueue interface {
	fd() int
	add(signo int) error
	del(signo int) error
	// poll returns at most one fired signal without blocking.
	poll() (signo int, ok bool, err error)
	close() error
}

// Listener turns signal delivery into readiness on a single descriptor.
// Register Fd with a poller for Events; when it becomes readable call Wait
// until it reports no signal.
//
// On Linux delivery goes through os/signal, so Ignore or Default on an
// observed signal detaches it from the Listener until Add arms it again.
// kqueue Listeners record deliveries whatever the disposition.
//
// A Listener is not safe for concurrent use.
type Listener struct {
	fd int
	q  eventQueue

	desired sigset
	polling sigset
	pending sigset

	source SignalSource
	policy Policy
	logf   LoggerFunc
	debug  bool
}

func newListener(opts ...Option) *Listener {
	cfg := getConfig()
	l := &Listener{
		fd:     -1,
		source: runtimeSource{},
		policy: defaultPolicy(),
		logf:   func(string, ...any) {},
		debug:  cfg.Debug,
	}
	if cfg.Logger != nil {
		l.logf = cfg.Logger
	}
	if cfg.Source != nil {
		l.source = cfg.Source
	}
	if cfg.Policy != nil {
		l.policy = *cfg.Policy
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Listen creates a Listener observing signos. Duplicates are collapsed.
// On failure nothing is left registered and the error is a *SystemError.
func Listen(signos []int, opts ...Option) (*Listener, error) {
	l := newListener(opts...)
	for _, signo := range signos {
		if !validSignal(signo) {
			return nil, &SystemError{Op: "listen", Errno: syscall.EINVAL}
		}
		l.desired.add(signo)
	}

	q, err := openQueue(l.source)
	if err != nil {
		return nil, wrapErrno("listen", err)
	}
	l.attach(q)

	if err := l.reconcile(); err != nil {
		_ = l.Close()
		return nil, wrapErrno("listen", err)
	}

	runtime.SetFinalizer(l, func(l *Listener) { _ = l.Close() })
	return l, nil
}

func (l *Listener) attach(q eventQueue) {
	l.q = q
	l.fd = q.fd()
}

// reconcile brings polling in line with desired, lowest signal first.
// Changes already applied are kept when a later one fails.
func (l *Listener) reconcile() error {
	for {
		signo := l.desired.diff(l.polling)
		if signo == 0 {
			return nil
		}
		if l.desired.has(signo) {
			if err := l.q.add(signo); err != nil {
				return err
			}
			l.polling.add(signo)
			l.debugf("signals: armed %d", signo)
		} else {
			if err := l.q.del(signo); err != nil {
				return err
			}
			l.polling.del(signo)
			l.debugf("signals: disarmed %d", signo)
		}
	}
}

// pollOnce moves at most one fired signal from the queue into pending and
// re-arms it.
func (l *Listener) pollOnce() error {
	for {
		signo, ok, err := l.q.poll()
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		if ok && validSignal(signo) {
			l.pending.add(signo)
			l.polling.del(signo)
			l.debugf("signals: fired %d", signo)
		}
		return l.reconcile()
	}
}

// Wait returns the lowest pending signal and removes it from the pending set.
// ok is false when nothing is pending; the caller should go back to waiting
// on Fd. Call Wait repeatedly to drain every pending signal.
func (l *Listener) Wait() (signo int, ok bool, err error) {
	if l.q == nil {
		return 0, false, &SystemError{Op: "wait", Errno: syscall.EBADF}
	}
	if err := l.pollOnce(); err != nil {
		return 0, false, wrapErrno("wait", err)
	}
	if signo = l.pending.lowest(); signo != 0 {
		l.pending.del(signo)
		return signo, true, nil
	}
	return 0, false, nil
}

// Add starts observing signos. Signals already observed are armed again,
// which reattaches them after Ignore or Default.
func (l *Listener) Add(signos ...int) error {
	return l.update("add", signos, func(signo int) {
		l.desired.add(signo)
		l.polling.del(signo)
	})
}

// Remove stops observing signos. Pending occurrences of them are discarded.
func (l *Listener) Remove(signos ...int) error {
	return l.update("remove", signos, func(signo int) {
		l.desired.del(signo)
		l.pending.del(signo)
	})
}

func (l *Listener) update(op string, signos []int, apply func(int)) error {
	if l.q == nil {
		return &SystemError{Op: op, Errno: syscall.EBADF}
	}
	for _, signo := range signos {
		if !validSignal(signo) {
			return &SystemError{Op: op, Errno: syscall.EINVAL}
		}
	}
	for _, signo := range signos {
		apply(signo)
	}
	return wrapErrno(op, l.reconcile())
}

// Fd returns the descriptor to poll, or -1 once closed.
// The Listener keeps ownership of it.
func (l *Listener) Fd() int { return l.fd }

// Events always reports Readable.
func (l *Listener) Events() Interest { return Readable }

// Timeout returns a zero deadline when signals are already pending, so a
// scheduler polls again immediately. ok is false when the caller may block
// on Fd indefinitely.
func (l *Listener) Timeout() (d time.Duration, ok bool) {
	if !l.pending.empty() {
		return 0, true
	}
	return 0, false
}

// Close releases the descriptor and resets the Listener. It may be called
// more than once.
func (l *Listener) Close() error {
	if l.q == nil {
		return nil
	}
	err := l.q.close()
	l.q = nil
	l.fd = -1
	l.desired, l.polling, l.pending = 0, 0, 0
	runtime.SetFinalizer(l, nil)
	if errors.Is(err, syscall.EBADF) {
		err = nil
	}
	return wrapErrno("close", err)
}
