// Package testhelpers provides common utilities for tests across packages.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// KeyflowDir creates a temporary directory with the .keyflow structure.
// Returns the temp dir root and the keyflow dir path.
// The temp dir is automatically cleaned up when the test completes.
func KeyflowDir(t *testing.T) (tempDir, keyflowDir string) {
	t.Helper()
	tempDir = t.TempDir()
	keyflowDir = filepath.Join(tempDir, ".keyflow")
	if err := os.MkdirAll(keyflowDir, 0755); err != nil {
		t.Fatalf("failed to create keyflow dir: %v", err)
	}
	return tempDir, keyflowDir
}

// StoragePath returns a storage file path inside a fresh temp directory.
// The temp dir is automatically cleaned up when the test completes.
func StoragePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "storage.json")
}
