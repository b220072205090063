// Package cmdexec runs shell commands for engine modules, streaming
// their combined output through the context logger.
package cmdexec

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/liftgrid/liftgrid/internal/ctxlog"
)

// ExitCodeError reports a command that ran to completion with a non-zero
// exit code.
type ExitCodeError struct {
	Cmd  string
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Cmd, e.Code)
}

// Run executes cmd through the shell and logs every line of combined
// stdout/stderr at debug level. A non-zero exit yields an ExitCodeError.
func Run(ctx context.Context, cmd string) error {
	log := ctxlog.FromContext(ctx)
	log.Debug("Executing command.", "cmd", cmd)
	return Lines(ctx, cmd, func(line string) error {
		log.Debug("Command output.", "line", line)
		return nil
	})
}

// RunQuiet is Run with a non-zero exit downgraded to a warning. Failures
// to start the command are still returned.
func RunQuiet(ctx context.Context, cmd string) error {
	err := Run(ctx, cmd)
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		ctxlog.FromContext(ctx).Warn("Command failed, continuing.", "cmd", cmd, "code", exitErr.Code)
		return nil
	}
	return err
}

// Lines executes cmd through the shell and feeds each line of combined
// stdout/stderr to fn as it arrives. When fn returns an error the command
// is killed and that error returned.
func Lines(ctx context.Context, cmd string, fn func(line string) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c := exec.CommandContext(ctx, "sh", "-c", cmd)
	stdout, err := c.StdoutPipe()
	if err != nil {
		return fmt.Errorf("piping %q: %w", cmd, err)
	}
	c.Stderr = c.Stdout

	if err := c.Start(); err != nil {
		return fmt.Errorf("starting %q: %w", cmd, err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cbErr error
	for scanner.Scan() {
		if cbErr = fn(scanner.Text()); cbErr != nil {
			cancel()
			break
		}
	}
	scanErr := scanner.Err()

	waitErr := c.Wait()
	if cbErr != nil {
		return cbErr
	}
	if scanErr != nil {
		return fmt.Errorf("reading output of %q: %w", cmd, scanErr)
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return &ExitCodeError{Cmd: cmd, Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %q: %w", cmd, waitErr)
	}
	return nil
}
