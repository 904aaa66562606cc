package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/flowgrid/internal/app"
	"github.com/vk/flowgrid/internal/registry"
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

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Results   map[string]*registry.Result
}

// RunFlowTest provides a standardized harness for running integration tests
// using a default background context.
func RunFlowTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunFlowTestWithContext(context.Background(), t, files)
}

// RunFlowTestWithContext writes the given HCL files into a temporary flow
// directory, builds an App over it, and runs the full evaluation. A startup
// panic is recovered into HarnessResult.Err so load-phase failures can be
// asserted like any other error.
func RunFlowTestWithContext(ctx context.Context, t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-flow-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	flowDir := filepath.Join(tmpDir, "flow")
	require.NoError(t, os.Mkdir(flowDir, 0755))

	// Test files are given as paths relative to the flow directory, so
	// nested paths naturally create subdirectories.
	for name, content := range files {
		filePath := filepath.Join(flowDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		FlowPath:    flowDir,
		LogLevel:    "debug",
		LogFormat:   "text",
		WorkerCount: 4,
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("FLOWGRID_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)

	if os.Getenv("FLOWGRID_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		Results:   testApp.Results(),
	}
}
