//go:build unix && !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package signals

import "golang.org/x/sys/unix"

func openQueue(SignalSource) (eventQueue, error) {
	return nil, unix.ENOSYS
}
