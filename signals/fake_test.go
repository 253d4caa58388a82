//go:build unix

package signals

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeQueue records registration traffic and replays scripted poll results.
type fakeQueue struct {
	registered sigset
	ops        []string
	fired      []int
	pollErrs   []error
	failAdd    map[int]error
	failDel    map[int]error
	closeErr   error
	closed     int
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{failAdd: map[int]error{}, failDel: map[int]error{}}
}

func (f *fakeQueue) fd() int { return 42 }

func (f *fakeQueue) add(signo int) error {
	if err := f.failAdd[signo]; err != nil {
		return err
	}
	f.registered.add(signo)
	f.ops = append(f.ops, fmt.Sprintf("add %d", signo))
	return nil
}

func (f *fakeQueue) del(signo int) error {
	if err := f.failDel[signo]; err != nil {
		return err
	}
	f.registered.del(signo)
	f.ops = append(f.ops, fmt.Sprintf("del %d", signo))
	// Deleting a registration discards its queued events, as EV_DELETE does.
	kept := f.fired[:0]
	for _, s := range f.fired {
		if s != signo {
			kept = append(kept, s)
		}
	}
	f.fired = kept
	return nil
}

func (f *fakeQueue) poll() (int, bool, error) {
	if len(f.pollErrs) > 0 {
		err := f.pollErrs[0]
		f.pollErrs = f.pollErrs[1:]
		return 0, false, err
	}
	if len(f.fired) == 0 {
		return 0, false, nil
	}
	signo := f.fired[0]
	f.fired = f.fired[1:]
	return signo, true, nil
}

func (f *fakeQueue) close() error {
	f.closed++
	return f.closeErr
}

// fakeListener builds a Listener over q the way Listen does.
func fakeListener(t *testing.T, q *fakeQueue, signos ...int) *Listener {
	t.Helper()
	l := newListener()
	for _, signo := range signos {
		l.desired.add(signo)
	}
	l.attach(q)
	require.NoError(t, l.reconcile())
	return l
}

// fakeSource hands out the registered channels so tests can deliver
// signals without the OS.
type fakeSource struct {
	mu   sync.Mutex
	subs map[chan<- os.Signal][]os.Signal
}

func newFakeSource() *fakeSource {
	return &fakeSource{subs: make(map[chan<- os.Signal][]os.Signal)}
}

func (f *fakeSource) Notify(c chan<- os.Signal, sig ...os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs[c] = append(f.subs[c], sig...)
}

func (f *fakeSource) Stop(c chan<- os.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subs, c)
}

// send delivers sig to every subscribed channel, dropping when full like
// os/signal does. It reports how many channels were subscribed.
func (f *fakeSource) send(sig syscall.Signal) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for c, sigs := range f.subs {
		for _, s := range sigs {
			if s == sig {
				n++
				select {
				case c <- sig:
				default:
				}
			}
		}
	}
	return n
}

// detach drops sig from every channel, as os/signal does on Ignore.
func (f *fakeSource) detach(sig syscall.Signal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for c, sigs := range f.subs {
		kept := sigs[:0]
		for _, s := range sigs {
			if s != sig {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			delete(f.subs, c)
			continue
		}
		f.subs[c] = kept
	}
}

func (f *fakeSource) subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
