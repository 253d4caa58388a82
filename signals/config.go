//go:build unix

package signals

import "sync"

// Config holds process-wide defaults applied to every new Listener before
// its options.
type Config struct {
	// Logger receives debug traces and recovered handler panics.
	// If nil, output is discarded.
	Logger LoggerFunc

	// Debug enables tracing of registration changes and fired signals.
	Debug bool

	// Source delivers signals to the notify backend. If nil, os/signal is used.
	Source SignalSource

	// Policy is used by Run. If nil, the default policy applies.
	Policy *Policy
}

var (
	configMu sync.RWMutex
	config   *Config
)

// SetConfig replaces the global defaults. It is safe to call concurrently.
// Use nil to clear configuration.
func SetConfig(cfg *Config) {
	configMu.Lock()
	defer configMu.Unlock()
	config = cfg
}

// getConfig returns a copy of the current configuration. It never returns nil.
func getConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	if config != nil {
		return *config
	}
	return Config{}
}

// updateConfig applies fn to a copy of the current configuration and
// installs the result.
func updateConfig(fn func(*Config)) {
	configMu.Lock()
	defer configMu.Unlock()
	var next Config
	if config != nil {
		next = *config
	}
	fn(&next)
	config = &next
}
