package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/fredshone/factory/internal/hcl_adapter"
	"github.com/fredshone/factory/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest writes factoryHCL to a temporary file and creates an app
// instance loading it. It returns the app with its report and log buffers.
func SetupAppTest(t *testing.T, factoryHCL string, planOnly bool, modules ...registry.Module) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.hcl")
	if err := os.WriteFile(path, []byte(factoryHCL), 0o600); err != nil {
		t.Fatalf("failed to write factory file: %v", err)
	}

	appConfig := &Config{FactoryPath: path, LogLevel: "debug", LogFormat: "text", PlanOnly: planOnly}
	outBuffer, logBuffer := &SafeBuffer{}, &SafeBuffer{}
	testApp := NewApp(outBuffer, logBuffer, appConfig, hcl_adapter.NewLoader(), modules...)

	t.Cleanup(func() {
		if os.Getenv("FACTORY_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}
