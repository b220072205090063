package http_check

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
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

func newEngine(t *testing.T) *registry.RegisteredEngine {
	t.Helper()
	r := registry.New()
	(&Module{}).Register(r)
	engine, ok := r.Engines["http_check"]
	require.True(t, ok)
	return engine
}

func TestWaitsUntilExpectedStatus(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	engine := newEngine(t)
	input := engine.NewInput().(*Input)
	input.URL = srv.URL
	input.Timeout = "5s"
	input.Interval = "10ms"

	var buf bytes.Buffer
	err := engine.Run(testContext(&buf), input)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, hits.Load(), int32(3))
}

func TestNonDefaultExpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	engine := newEngine(t)
	input := engine.NewInput().(*Input)
	input.URL = srv.URL
	input.ExpectedStatus = 401
	input.Timeout = "5s"
	input.Interval = "10ms"

	var buf bytes.Buffer
	require.NoError(t, engine.Run(testContext(&buf), input))
}

func TestGivesUpAfterTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	engine := newEngine(t)
	input := engine.NewInput().(*Input)
	input.URL = srv.URL
	input.Timeout = "80ms"
	input.Interval = "10ms"

	var buf bytes.Buffer
	err := engine.Run(testContext(&buf), input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "waiting for")
}

func TestBadDurationRejected(t *testing.T) {
	engine := newEngine(t)
	input := engine.NewInput().(*Input)
	input.URL = "http://localhost:1"
	input.Timeout = "soon"

	var buf bytes.Buffer
	err := engine.Run(testContext(&buf), input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `bad timeout "soon"`)
}
