//go:build linux

package signals

import (
	"encoding/binary"
	"math/bits"
	"os"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
)

// notifyQueue feeds an eventfd from the Go runtime's signal handler.
// The runtime owns every signal handler, so signalfd(2) would only see
// signals blocked on all of its threads; os/signal delivery avoids that.
//
// Each signal gets its own channel so one can be dropped without a window
// in which the others have no receiver.
type notifyQueue struct {
	efd   int
	src   SignalSource
	subs  map[int]*subscription
	fired atomic.Uint64
}

type subscription struct {
	ch   chan os.Signal
	done chan struct{}
}

func openQueue(src SignalSource) (eventQueue, error) {
	efd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, err
	}
	return &notifyQueue{
		efd:  efd,
		src:  src,
		subs: make(map[int]*subscription),
	}, nil
}

func (q *notifyQueue) forward(sub *subscription) {
	defer close(sub.done)
	for s := range sub.ch {
		sig, ok := s.(syscall.Signal)
		if !ok || !validSignal(int(sig)) {
			continue
		}
		q.fired.Or(1 << uint(sig))
		q.wake()
	}
}

func (q *notifyQueue) wake() {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)
	// EAGAIN means the counter is saturated, which still reads as ready.
	_, _ = unix.Write(q.efd, buf[:])
}

func (q *notifyQueue) fd() int { return q.efd }

func (q *notifyQueue) add(signo int) error {
	if signo == int(unix.SIGKILL) || signo == int(unix.SIGSTOP) {
		return unix.EINVAL
	}
	if sub, ok := q.subs[signo]; ok {
		// Ignore and Default detach the channel inside os/signal.
		q.src.Notify(sub.ch, syscall.Signal(signo))
		return nil
	}
	sub := &subscription{
		ch:   make(chan os.Signal, 1),
		done: make(chan struct{}),
	}
	q.subs[signo] = sub
	go q.forward(sub)
	q.src.Notify(sub.ch, syscall.Signal(signo))
	return nil
}

func (q *notifyQueue) del(signo int) error {
	sub, ok := q.subs[signo]
	if !ok {
		return nil
	}
	delete(q.subs, signo)
	q.unsubscribe(sub)
	q.fired.And(^uint64(1 << uint(signo)))
	return nil
}

func (q *notifyQueue) unsubscribe(sub *subscription) {
	q.src.Stop(sub.ch)
	close(sub.ch)
	<-sub.done
}

func (q *notifyQueue) poll() (int, bool, error) {
	var buf [8]byte
	if _, err := unix.Read(q.efd, buf[:]); err != nil && err != unix.EAGAIN {
		return 0, false, err
	}
	signo, ok := q.take()
	if q.fired.Load() != 0 {
		q.wake()
	}
	return signo, ok, nil
}

// take clears and returns the lowest fired signal.
func (q *notifyQueue) take() (int, bool) {
	for {
		old := q.fired.Load()
		if old == 0 {
			return 0, false
		}
		signo := bits.TrailingZeros64(old)
		if q.fired.CompareAndSwap(old, old&^(1<<uint(signo))) {
			return signo, true
		}
	}
}

func (q *notifyQueue) close() error {
	for signo, sub := range q.subs {
		delete(q.subs, signo)
		q.unsubscribe(sub)
	}
	return unix.Close(q.efd)
}
