//go:build unix

package signals

// SetLogger sets the default logger for Listeners created afterwards.
// Safe for concurrent use.
func SetLogger(l LoggerFunc) {
	updateConfig(func(c *Config) { c.Logger = l })
}

// SetDebug toggles default debug tracing for Listeners created afterwards.
// Safe for concurrent use.
func SetDebug(enabled bool) {
	updateConfig(func(c *Config) { c.Debug = enabled })
}

// SetPolicy sets the default Run policy for Listeners created afterwards.
// Safe for concurrent use.
func SetPolicy(p Policy) {
	updateConfig(func(c *Config) { c.Policy = &p })
}

// SetSource sets the default signal source for Listeners created afterwards.
// Safe for concurrent use.
func SetSource(src SignalSource) {
	updateConfig(func(c *Config) { c.Source = src })
}
