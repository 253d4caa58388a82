//go:build unix

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/srozzo/go-sigpoll/signals"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe SIGNAL...",
		Short: "Show the number, name and description of signals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseSignals(args)
			if err != nil {
				return err
			}
			for _, signo := range nums {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", signo, signals.Name(signo), signals.Describe(signo))
			}
			return nil
		},
	}
}

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the well-known signal constants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]int, 0, len(signals.Numbers))
			for signo := range signals.Numbers {
				nums = append(nums, signo)
			}
			sort.Ints(nums)
			for _, signo := range nums {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", signals.Numbers[signo], signo)
			}
			return nil
		},
	}
}
