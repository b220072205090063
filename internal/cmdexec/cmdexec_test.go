package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftgrid/liftgrid/internal/ctxlog"
)

func loggingContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), &buf
}

func TestRun(t *testing.T) {
	t.Run("success logs output lines at debug", func(t *testing.T) {
		ctx, buf := loggingContext(t)
		require.NoError(t, Run(ctx, "echo hello"))
		assert.Contains(t, buf.String(), "hello")
	})

	t.Run("non-zero exit yields an ExitCodeError", func(t *testing.T) {
		ctx, _ := loggingContext(t)
		err := Run(ctx, "exit 3")
		require.Error(t, err)

		var exitErr *ExitCodeError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 3, exitErr.Code)
		assert.Contains(t, exitErr.Error(), "exited with code 3")
	})

	t.Run("stderr is captured alongside stdout", func(t *testing.T) {
		ctx, buf := loggingContext(t)
		require.NoError(t, Run(ctx, "echo warned 1>&2"))
		assert.Contains(t, buf.String(), "warned")
	})

	t.Run("context cancellation kills the command", func(t *testing.T) {
		ctx, _ := loggingContext(t)
		ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := Run(ctx, "sleep 10")
		assert.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestRunQuiet(t *testing.T) {
	t.Run("non-zero exit becomes a warning", func(t *testing.T) {
		ctx, buf := loggingContext(t)
		require.NoError(t, RunQuiet(ctx, "exit 5"))
		assert.Contains(t, buf.String(), "Command failed, continuing.")
		assert.Contains(t, buf.String(), "code=5")
	})

	t.Run("success stays quiet", func(t *testing.T) {
		ctx, buf := loggingContext(t)
		require.NoError(t, RunQuiet(ctx, "true"))
		assert.NotContains(t, buf.String(), "Command failed")
	})
}

func TestLines(t *testing.T) {
	t.Run("streams each line to the callback", func(t *testing.T) {
		ctx, _ := loggingContext(t)
		var lines []string
		err := Lines(ctx, `printf 'a\nb\nc\n'`, func(line string) error {
			lines = append(lines, line)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, lines)
	})

	t.Run("callback error aborts the command", func(t *testing.T) {
		ctx, _ := loggingContext(t)
		boom := errors.New("stop here")
		var seen int
		err := Lines(ctx, `printf 'a\nb\nc\n'`, func(string) error {
			seen++
			if seen == 2 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 2, seen)
	})

	t.Run("exit code still reported after full stream", func(t *testing.T) {
		ctx, _ := loggingContext(t)
		var lines []string
		err := Lines(ctx, "echo partial; exit 7", func(line string) error {
			lines = append(lines, line)
			return nil
		})
		assert.Equal(t, []string{"partial"}, lines)

		var exitErr *ExitCodeError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 7, exitErr.Code)
	})
}
