//go:build linux

package signals

import (
	"runtime"
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

func changeMask(block bool, signos []int) error {
	var set unix.Sigset_t
	for _, signo := range signos {
		if !validSignal(signo) {
			return unix.EINVAL
		}
		sigsetAdd(&set, signo)
	}
	how := unix.SIG_UNBLOCK
	if block {
		how = unix.SIG_BLOCK
	}
	return unix.PthreadSigmask(how, &set, nil)
}

// sigsetAdd sets signo in a kernel sigset. Word size varies by architecture.
func sigsetAdd(set *unix.Sigset_t, signo int) {
	const width = int(unsafe.Sizeof(set.Val[0]) * 8)
	set.Val[(signo-1)/width] |= 1 << uint((signo-1)%width)
}

// raise targets the current thread, like raise(3).
func raise(signo int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	return unix.Tgkill(unix.Getpid(), unix.Gettid(), syscall.Signal(signo))
}

const sigIgn = 1

// kernelAction holds a struct sigaction as rt_sigaction(2) reads and writes
// it. It is large enough for every Linux layout, and the zero value is
// SIG_DFL with no flags and an empty mask.
type kernelAction [8]uint64

// handler returns sa_handler. mips puts sa_flags first.
func (a *kernelAction) handler() uintptr {
	off := uintptr(0)
	if strings.HasPrefix(runtime.GOARCH, "mips") {
		off = unsafe.Sizeof(uintptr(0))
	}
	return *(*uintptr)(unsafe.Add(unsafe.Pointer(a), off))
}

// kernelSigsetSize is sizeof(sigset_t) in the kernel ABI, not libc's.
func kernelSigsetSize() uintptr {
	if strings.HasPrefix(runtime.GOARCH, "mips") {
		return 16
	}
	return 8
}

func rtSigaction(signo int, act, old *kernelAction) error {
	_, _, errno := unix.RawSyscall6(unix.SYS_RT_SIGACTION, uintptr(signo),
		uintptr(unsafe.Pointer(act)), uintptr(unsafe.Pointer(old)), kernelSigsetSize(), 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

// restoreDefault installs SIG_DFL when the kernel still ignores signo.
// Signals the runtime never ignored keep the runtime's handler.
func restoreDefault(signo int) error {
	var old kernelAction
	if err := rtSigaction(signo, nil, &old); err != nil {
		return err
	}
	if old.handler() != sigIgn {
		return nil
	}
	var dfl kernelAction
	return rtSigaction(signo, &dfl, nil)
}
