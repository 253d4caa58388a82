//go:build unix

package signals

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// Names maps the commonly handled signals to their numbers.
var Names = map[string]int{
	"SIGALRM": int(unix.SIGALRM),
	"SIGCHLD": int(unix.SIGCHLD),
	"SIGHUP":  int(unix.SIGHUP),
	"SIGINT":  int(unix.SIGINT),
	"SIGPIPE": int(unix.SIGPIPE),
	"SIGQUIT": int(unix.SIGQUIT),
	"SIGTERM": int(unix.SIGTERM),
}

// Numbers is the inverse of Names.
var Numbers = map[int]string{
	int(unix.SIGALRM): "SIGALRM",
	int(unix.SIGCHLD): "SIGCHLD",
	int(unix.SIGHUP):  "SIGHUP",
	int(unix.SIGINT):  "SIGINT",
	int(unix.SIGPIPE): "SIGPIPE",
	int(unix.SIGQUIT): "SIGQUIT",
	int(unix.SIGTERM): "SIGTERM",
}

// Lookup converts a signal name ("SIGINT", "int") or number ("2") to its
// number. Only 1..MaxSignal is accepted.
func Lookup(s string) (int, error) {
	s = strings.TrimSpace(strings.ToUpper(s))

	if num, err := strconv.Atoi(s); err == nil {
		if !validSignal(num) {
			return 0, fmt.Errorf("signal number out of range: %d", num)
		}
		return num, nil
	}

	if !strings.HasPrefix(s, "SIG") {
		s = "SIG" + s
	}
	if num := int(unix.SignalNum(s)); validSignal(num) {
		return num, nil
	}
	return 0, fmt.Errorf("unknown signal: %s", s)
}

// Name returns the platform name of signo, or "SIG<n>" when it has none.
func Name(signo int) string {
	if name := unix.SignalName(syscall.Signal(signo)); name != "" {
		return name
	}
	return fmt.Sprintf("SIG%d", signo)
}
