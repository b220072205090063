// Package testutil provides a shared harness for integration-style tests
// that exercise the full load, plan, and run lifecycle against plan files
// written to a temporary directory.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/liftgrid/liftgrid/internal/app"
	"github.com/liftgrid/liftgrid/internal/hclloader"
	"github.com/liftgrid/liftgrid/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a harness invocation.
type HarnessResult struct {
	LogOutput string
	Order     []string
	Err       error
	App       *app.App
}

// PlanTest loads the given files and computes the execution order without
// running a single stage. Files ending in .yaml or .yml become inventory,
// merged in lexical filename order; everything else is written into the plan
// directory.
func PlanTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	a, logBuf, err := setupApp(t, files, modules...)
	result := &HarnessResult{App: a, Err: err}
	if err == nil {
		result.Order, result.Err = a.Plan(context.Background())
	}
	result.LogOutput = logBuf.String()
	dumpLogs(t, result.LogOutput)
	return result
}

// RunPlanTest loads the given files and runs the full lifecycle with a
// background context.
func RunPlanTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunPlanTestWithContext(context.Background(), t, files, modules...)
}

// RunPlanTestWithContext is RunPlanTest with a caller-provided context, for
// cancellation and timeout scenarios.
func RunPlanTestWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	a, logBuf, err := setupApp(t, files, modules...)
	result := &HarnessResult{App: a, Err: err}
	if err == nil {
		result.Err = a.Run(ctx)
	}
	result.LogOutput = logBuf.String()
	dumpLogs(t, result.LogOutput)
	return result
}

func setupApp(t *testing.T, files map[string]string, modules ...registry.Module) (*app.App, *SafeBuffer, error) {
	t.Helper()

	tmpDir := t.TempDir()
	planDir := filepath.Join(tmpDir, "plan")
	require.NoError(t, os.Mkdir(planDir, 0o755))

	var inventoryPaths []string
	for name, content := range files {
		path := filepath.Join(planDir, name)
		switch filepath.Ext(name) {
		case ".yaml", ".yml":
			path = filepath.Join(tmpDir, name)
			inventoryPaths = append(inventoryPaths, path)
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	sort.Strings(inventoryPaths)

	cfg := &app.Config{
		PlanPaths:      []string{planDir},
		InventoryPaths: inventoryPaths,
		LogLevel:       "debug",
		LogFormat:      "text",
	}

	logBuf := &SafeBuffer{}
	a, err := app.New(logBuf, cfg, hclloader.NewLoader(), modules...)
	return a, logBuf, err
}

func dumpLogs(t *testing.T, output string) {
	t.Helper()
	if os.Getenv("LIFTGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), output)
	}
}
