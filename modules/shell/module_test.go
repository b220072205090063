package shell

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftgrid/liftgrid/internal/cmdexec"
	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/registry"
)

func testContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func newEngine(t *testing.T) *registry.RegisteredEngine {
	t.Helper()
	r := registry.New()
	(&Module{}).Register(r)
	engine, ok := r.Engines["shell"]
	require.True(t, ok)
	return engine
}

func TestCommandsRunInOrder(t *testing.T) {
	engine := newEngine(t)
	out := filepath.Join(t.TempDir(), "out.txt")

	input := engine.NewInput().(*Input)
	input.Commands = []string{
		"echo first >> " + out,
		"echo second >> " + out,
	}

	var buf bytes.Buffer
	err := engine.Run(testContext(&buf), input)

	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestFailureAbortsRemainingCommands(t *testing.T) {
	engine := newEngine(t)
	out := filepath.Join(t.TempDir(), "out.txt")

	input := engine.NewInput().(*Input)
	input.Commands = []string{"exit 3", "echo too-late >> " + out}

	var buf bytes.Buffer
	err := engine.Run(testContext(&buf), input)

	var exitErr *cmdexec.ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.NoFileExists(t, out)
}

func TestAllowFailureContinues(t *testing.T) {
	engine := newEngine(t)
	out := filepath.Join(t.TempDir(), "out.txt")

	input := engine.NewInput().(*Input)
	input.Commands = []string{"exit 3", "echo resumed >> " + out}
	input.AllowFailure = true

	var buf bytes.Buffer
	err := engine.Run(testContext(&buf), input)

	require.NoError(t, err)
	assert.FileExists(t, out)
	assert.Contains(t, buf.String(), "Command failed, continuing.")
}
