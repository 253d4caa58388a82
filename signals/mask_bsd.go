//go:build darwin || dragonfly || freebsd || netbsd

package signals

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	sigBlock   = 1
	sigUnblock = 2
)

// bsdSigset covers the widest sigset_t of these kernels. darwin reads only
// the first word, which holds every signal up to MaxSignal.
type bsdSigset [4]uint32

func (s *bsdSigset) add(signo int) {
	s[(signo-1)/32] |= 1 << uint((signo-1)%32)
}

// changeMask calls sigprocmask(2), which acts on the calling thread.
func changeMask(block bool, signos []int) error {
	var set bsdSigset
	for _, signo := range signos {
		if !validSignal(signo) {
			return unix.EINVAL
		}
		set.add(signo)
	}
	how := sigUnblock
	if block {
		how = sigBlock
	}
	_, _, errno := unix.RawSyscall(sysSigprocmask, uintptr(how), uintptr(unsafe.Pointer(&set)), 0)
	if errno != 0 {
		return errno
	}
	return nil
}
