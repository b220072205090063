package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/liftgrid/liftgrid/internal/cli"
)

// main is the entrypoint for the liftgrid application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the command tree to outW so tests can drive it end to end.
func run(outW io.Writer, args []string) error {
	root := cli.New(outW)
	root.SetArgs(args)
	return root.Execute()
}
