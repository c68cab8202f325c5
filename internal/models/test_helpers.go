package models

import (
	"os"
	"path/filepath"
	"testing"
)

// GetFixturePath returns the absolute path to a fixture file in the "testdata" directory
// at the module root. The root is found by walking up from the test's working directory
// to the first directory holding a go.mod, so packages at any depth share the fixtures.
func GetFixturePath(t *testing.T, fixturePath string) string {
	t.Helper()

	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory for testdata/%s: %v", fixturePath, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "testdata", fixturePath)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("Failed to find module root for testdata/%s", fixturePath)
		}
		dir = parent
	}
}
