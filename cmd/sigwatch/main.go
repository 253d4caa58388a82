//go:build unix

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/srozzo/go-sigpoll/internal/cli"
)

var version = "dev"

func main() {
	ctx := context.Background()
	if err := cli.NewRoot(strings.TrimSpace(version)).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
