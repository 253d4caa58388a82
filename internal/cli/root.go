//go:build unix

package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/srozzo/go-sigpoll/signals"
)

func NewRoot(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sigwatch",
		Short:         "sigwatch: observe and manage process signals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Version = version
	cmd.SetVersionTemplate("sigwatch {{.Version}}\n")

	cmd.PersistentFlags().String("config", getenvDefault("SIGWATCH_CONFIG", ""), "Path to a YAML config file")
	cmd.PersistentFlags().String("log-level", getenvDefault("SIGWATCH_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")

	cmd.AddCommand(newListenCmd())
	cmd.AddCommand(newDescribeCmd())
	cmd.AddCommand(newNamesCmd())

	return cmd
}

// loadRootConfig reads the config file named by --config and applies a
// --log-level given on the command line over the file's value.
func loadRootConfig(cmd *cobra.Command) (*Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	level := cmd.Root().PersistentFlags().Lookup("log-level")
	if level != nil && (level.Changed || cfg.LogLevel == "") {
		cfg.LogLevel = level.Value.String()
	}
	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *Config) *slog.Logger {
	level, _ := parseLevel(cfg.LogLevel)
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loggerFunc adapts logger to the printf-style hook the signals package takes.
func loggerFunc(logger *slog.Logger) signals.LoggerFunc {
	return func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
