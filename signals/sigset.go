//go:build unix

package signals

import "math/bits"

// MaxSignal is the highest signal number a Listener or disposition
// operation accepts. Real-time signals are not supported.
const MaxSignal = 31

// sigset is a bitmask of signal numbers; bit n represents signal n.
type sigset uint64

func validSignal(signo int) bool {
	return signo >= 1 && signo <= MaxSignal
}

func (s *sigset) add(signo int) { *s |= 1 << uint(signo) }

func (s *sigset) del(signo int) { *s &^= 1 << uint(signo) }

func (s sigset) has(signo int) bool { return s&(1<<uint(signo)) != 0 }

func (s sigset) empty() bool { return s == 0 }

// diff returns the lowest signal number present in exactly one of s and o,
// or 0 when they agree over 1..MaxSignal.
func (s sigset) diff(o sigset) int {
	return (s ^ o).lowest()
}

// lowest returns the lowest member in 1..MaxSignal, or 0.
func (s sigset) lowest() int {
	s &= sigset(1<<(MaxSignal+1)-1) &^ 1
	if s == 0 {
		return 0
	}
	return bits.TrailingZeros64(uint64(s))
}

// signals lists the members in ascending order.
func (s sigset) signals() []int {
	var out []int
	for signo := 1; signo <= MaxSignal; signo++ {
		if s.has(signo) {
			out = append(out, signo)
		}
	}
	return out
}
