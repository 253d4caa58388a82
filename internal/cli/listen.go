//go:build unix

package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/srozzo/go-sigpoll/signals"
)

func newListenCmd() *cobra.Command {
	var count int
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "listen [SIGNAL...]",
		Short: "Print signals as they are delivered",
		Long: "Listen for the given signals (and those named in the config file) and\n" +
			"print one line per delivery. Repeated deliveries between polls collapse.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadRootConfig(cmd)
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			watch, err := parseSignals(append(append([]string{}, cfg.Listen...), args...))
			if err != nil {
				return err
			}
			if len(watch) == 0 {
				return errors.New("no signals to listen for")
			}
			ignore, err := parseSignals(cfg.Ignore)
			if err != nil {
				return err
			}
			block, err := parseSignals(cfg.Block)
			if err != nil {
				return err
			}

			if err := signals.Ignore(ignore...); err != nil {
				return err
			}
			if len(block) > 0 {
				// The mask is per thread; keep the poll loop on this one.
				runtime.LockOSThread()
				defer runtime.UnlockOSThread()
				if err := signals.Block(block...); err != nil {
					return err
				}
				defer func() { _ = signals.Unblock(block...) }()
			}

			level, _ := parseLevel(cfg.LogLevel)
			opts := []signals.Option{
				signals.WithLogger(loggerFunc(logger)),
				signals.WithDebug(level <= slog.LevelDebug),
			}
			if cfg.PollInterval > 0 {
				opts = append(opts, signals.WithPolicy(signals.Policy{PollInterval: cfg.PollInterval, LogPanics: true}))
			}
			l, err := signals.Listen(watch, opts...)
			if err != nil {
				return err
			}
			defer l.Close()
			logger.Info("listening", "signals", watch, "fd", l.Fd())

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancelTimeout context.CancelFunc
				ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
				defer cancelTimeout()
			}
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			seen := 0
			err = l.Run(ctx, func(signo int) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", signo, signals.Name(signo), signals.Describe(signo))
				seen++
				if count > 0 && seen >= count {
					cancel()
				}
			})
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				logger.Debug("listen finished", "seen", seen)
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Exit after this many signals (0 = run until interrupted)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Exit after this long (0 = no limit)")
	return cmd
}
