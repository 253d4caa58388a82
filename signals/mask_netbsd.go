//go:build netbsd

package signals

import "golang.org/x/sys/unix"

const sysSigprocmask = unix.SYS___SIGPROCMASK14
