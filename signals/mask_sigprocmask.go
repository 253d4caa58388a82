//go:build darwin || dragonfly || freebsd

package signals

import "golang.org/x/sys/unix"

const sysSigprocmask = unix.SYS_SIGPROCMASK
