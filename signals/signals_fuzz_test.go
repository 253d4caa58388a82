//go:build unix

package signals

import (
	"syscall"
	"testing"
)

// FuzzListenerStateMachine drives a Listener over a fake queue through
// arbitrary operation sequences and checks the set invariants after each.
// It avoids real OS signals.
func FuzzListenerStateMachine(f *testing.F) {
	f.Add([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	f.Add([]byte{2, 2, 2, 3, 3, 3, 6, 6})
	f.Add([]byte{9, 5, 1, 7, 3, 0, 8})

	f.Fuzz(func(t *testing.T, data []byte) {
		q := newFakeQueue()
		l := newListener()
		l.attach(q)
		closed := false

		const maxOps = 256
		for i := 0; i < len(data) && i < maxOps; i++ {
			op := data[i] % 10
			signo := int(data[i]>>3)%MaxSignal + 1
			switch op {
			case 0, 1: // Add
				if err := l.Add(signo); err != nil && !closed {
					t.Fatalf("add %d: %v", signo, err)
				}
			case 2: // Remove
				if err := l.Remove(signo); err != nil && !closed {
					t.Fatalf("remove %d: %v", signo, err)
				}
			case 3, 4: // fire if registered
				if q.registered.has(signo) {
					q.fired = append(q.fired, signo)
				}
			case 5: // interrupted poll
				q.pollErrs = append(q.pollErrs, syscall.EINTR)
			case 6, 7: // Wait
				got, ok, err := l.Wait()
				if closed {
					if err == nil {
						t.Fatal("wait after close succeeded")
					}
					continue
				}
				if err != nil {
					t.Fatalf("wait: %v", err)
				}
				if ok && !validSignal(got) {
					t.Fatalf("wait returned %d", got)
				}
			case 8: // Timeout must agree with pending
				_, ok := l.Timeout()
				if ok == l.pending.empty() {
					t.Fatalf("timeout ok=%v with pending %b", ok, l.pending)
				}
			case 9: // Close
				if err := l.Close(); err != nil {
					t.Fatalf("close: %v", err)
				}
				closed = true
			}

			if closed {
				if l.Fd() != -1 || !l.desired.empty() || !l.polling.empty() || !l.pending.empty() {
					t.Fatal("closed listener kept state")
				}
				continue
			}
			if l.polling != l.desired {
				t.Fatalf("polling %b != desired %b", l.polling, l.desired)
			}
			if l.pending&^l.desired != 0 {
				t.Fatalf("pending %b outside desired %b", l.pending, l.desired)
			}
		}
	})
}

// FuzzSigset checks lowest and diff against a linear scan.
func FuzzSigset(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(1<<2|1<<15), uint64(1<<15))
	f.Add(^uint64(0), uint64(1))

	f.Fuzz(func(t *testing.T, a, b uint64) {
		sa, sb := sigset(a), sigset(b)
		want := 0
		for signo := 1; signo <= MaxSignal; signo++ {
			if sa.has(signo) != sb.has(signo) {
				want = signo
				break
			}
		}
		if got := sa.diff(sb); got != want {
			t.Fatalf("diff(%b, %b) = %d, want %d", a, b, got, want)
		}
		for _, signo := range sa.signals() {
			if !validSignal(signo) {
				t.Fatalf("signals() returned %d", signo)
			}
		}
	})
}
