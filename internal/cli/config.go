//go:build unix

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/srozzo/go-sigpoll/signals"
)

// Config is the sigwatch configuration file.
//
//	listen: [SIGHUP, SIGUSR1]
//	ignore: [SIGPIPE]
//	block: []
//	log_level: debug
//	poll_interval: 250ms
type Config struct {
	Listen       []string      `yaml:"listen"`
	Ignore       []string      `yaml:"ignore"`
	Block        []string      `yaml:"block"`
	LogLevel     string        `yaml:"log_level"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// LoadConfig reads path. An empty path yields the zero Config.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.PollInterval < 0 {
		return nil, fmt.Errorf("parse config %s: poll_interval must not be negative", path)
	}
	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level: %q", s)
}

// parseSignals resolves names or numbers, dropping duplicates.
func parseSignals(names []string) ([]int, error) {
	seen := make(map[int]bool, len(names))
	out := make([]int, 0, len(names))
	for _, name := range names {
		signo, err := signals.Lookup(name)
		if err != nil {
			return nil, err
		}
		if !seen[signo] {
			seen[signo] = true
			out = append(out, signo)
		}
	}
	return out, nil
}
