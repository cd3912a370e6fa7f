//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedLingostatPath holds the path to a shared lingostat binary built once for all tests.
	sharedLingostatPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getLingostatBinary returns the path to the lingostat binary, building it once if needed.
func getLingostatBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "lingostat-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		lingostatPath := filepath.Join(tempDir, "lingostat")
		buildCmd := exec.Command("go", "build", "-o", lingostatPath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build lingostat: %v", err))
		}

		sharedLingostatPath = lingostatPath
	})

	return sharedLingostatPath
}

// sampleExportDoc is a minimal statistics export used to exercise the full
// load-derive-report path against a real database backend.
const sampleExportDoc = `{
  "name": "checkout",
  "dateRange": {"from": "2025-01-01", "to": "2025-01-31"},
  "data": [
    {
      "language": {"name": "German", "code": "de"},
      "ai": {
        "cumulativeStatistics": {
          "approvedWithoutEdit": 80,
          "postEdited": {"0-5": 10, "6-10": 5, "11-15": 3, "other": 2}
        }
      },
      "mt": {
        "cumulativeStatistics": {
          "approvedWithoutEdit": 20,
          "postEdited": {"0-5": 10, "6-10": 10, "11-15": 8, "other": 2}
        }
      }
    },
    {
      "language": {"name": "Thai", "code": "th"},
      "ai": {
        "cumulativeStatistics": {
          "approvedWithoutEdit": 30,
          "postEdited": {"0-5": 10, "6-10": 5, "11-15": 5, "other": 0}
        }
      }
    }
  ]
}`

// writeSampleExportDir creates a temp directory holding one export file and
// returns its path.
func writeSampleExportDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "checkout.json"), []byte(sampleExportDoc), 0o644); err != nil {
		t.Fatalf("failed to write sample export: %v", err)
	}
	return dir
}
