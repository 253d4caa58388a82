//go:build unix && !linux && !darwin && !dragonfly && !freebsd && !netbsd

package signals

import "golang.org/x/sys/unix"

// Raw syscalls are refused on openbsd and x/sys/unix exposes no thread mask
// primitive on the remaining platforms.
func changeMask(block bool, signos []int) error {
	for _, signo := range signos {
		if !validSignal(signo) {
			return unix.EINVAL
		}
	}
	return unix.ENOTSUP
}
