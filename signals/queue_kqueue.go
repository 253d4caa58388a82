//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package signals

import "golang.org/x/sys/unix"

// kqueueQueue registers EVFILT_SIGNAL filters. The filter records
// deliveries whatever the disposition, and clears itself once reported.
type kqueueQueue struct {
	kq int
}

func openQueue(SignalSource) (eventQueue, error) {
	kq, err := unix.Kqueue()
	if err != nil {
		return nil, err
	}
	unix.CloseOnExec(kq)
	return &kqueueQueue{kq: kq}, nil
}

func (q *kqueueQueue) fd() int { return q.kq }

func (q *kqueueQueue) change(signo, flags int) error {
	changes := make([]unix.Kevent_t, 1)
	unix.SetKevent(&changes[0], signo, unix.EVFILT_SIGNAL, flags)
	_, err := unix.Kevent(q.kq, changes, nil, nil)
	return err
}

func (q *kqueueQueue) add(signo int) error { return q.change(signo, unix.EV_ADD) }

func (q *kqueueQueue) del(signo int) error { return q.change(signo, unix.EV_DELETE) }

func (q *kqueueQueue) poll() (int, bool, error) {
	events := make([]unix.Kevent_t, 1)
	n, err := unix.Kevent(q.kq, nil, events, &unix.Timespec{})
	if err != nil {
		return 0, false, err
	}
	if n == 1 && events[0].Filter == unix.EVFILT_SIGNAL {
		return int(events[0].Ident), true, nil
	}
	return 0, false, nil
}

func (q *kqueueQueue) close() error {
	return unix.Close(q.kq)
}
