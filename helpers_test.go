package pdfrender

// Notes:
// - Shared fixtures for bundle-based tests. Not under test themselves.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFolder creates baseDir/name populated with files (name -> content)
// and returns baseDir.
func writeFolder(t *testing.T, name string, files map[string]string) string {
	t.Helper()

	base := t.TempDir()
	dir := filepath.Join(base, name)
	if err := os.Mkdir(dir, 0o750); err != nil {
		t.Fatalf("creating folder: %v", err)
	}
	for file, content := range files {
		if err := os.WriteFile(filepath.Join(dir, file), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", file, err)
		}
	}
	return base
}

// mustResolve resolves a folder and fails the test on error.
func mustResolve(t *testing.T, base, name string) *Bundle {
	t.Helper()

	b, err := ResolveFolder(base, name)
	if err != nil {
		t.Fatalf("ResolveFolder(%q, %q) error: %v", base, name, err)
	}
	return b
}

func strPtr(s string) *string { return &s }
