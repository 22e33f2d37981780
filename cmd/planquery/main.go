package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/teflaherty67/PlanQuery/internal/cli"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the outcome to an exit code:
// 0 success, 1 failure, 2 cancelled.
func run() int {
	app := &cli.App{
		IsInteractive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, cli.ErrCancelled) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
