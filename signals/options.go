//go:build unix

package signals

type LoggerFunc func(format string, args ...any)

type Option func(*Listener)

func WithPolicy(p Policy) Option {
	return func(l *Listener) { l.policy = p }
}

func WithLogger(lf LoggerFunc) Option {
	return func(l *Listener) {
		if lf != nil {
			l.logf = lf
		}
	}
}

func WithDebug(enabled bool) Option {
	return func(l *Listener) { l.debug = enabled }
}

// WithSource replaces the signal delivery used by the notify backend.
// It has no effect on kqueue platforms.
func WithSource(src SignalSource) Option {
	return func(l *Listener) {
		if src != nil {
			l.source = src
		}
	}
}
