//go:build unix

package signals

// debugf logs through the listener's logger when tracing is on.
func (l *Listener) debugf(format string, args ...any) {
	if l.debug {
		l.logf(format, args...)
	}
}
