package echo

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liftgrid/liftgrid/internal/ctxlog"
	"github.com/liftgrid/liftgrid/internal/registry"
)

func testContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

func TestEchoLogsMessage(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	engine, ok := r.Engines["echo"]
	require.True(t, ok)

	input := engine.NewInput().(*Input)
	input.Message = "hello from the plan"

	var buf bytes.Buffer
	err := engine.Run(testContext(&buf), input)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hello from the plan")
}
