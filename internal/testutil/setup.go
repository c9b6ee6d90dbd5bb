package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Dir describes a directory tree for BuildTree. Values are either a string
// (file contents) or a nested Dir.
type Dir map[string]any

// BuildTree creates root (if needed) and populates it from structure.
// Calls t.Fatal on any failure. Entries whose name starts with "." are
// created hidden on every platform.
//
// Example:
//
//	root := filepath.Join(t.TempDir(), "myFolder")
//	testutil.BuildTree(t, root, testutil.Dir{
//	    "Apple.txt": "",
//	    "Documents": testutil.Dir{"notes.txt": ""},
//	})
func BuildTree(t *testing.T, root string, structure Dir) {
	t.Helper()

	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("failed to create directory %s: %v", root, err)
	}

	for name, content := range structure {
		path := filepath.Join(root, name)

		switch v := content.(type) {
		case string:
			if err := os.WriteFile(path, []byte(v), 0o644); err != nil {
				t.Fatalf("failed to create file %s: %v", path, err)
			}
		case Dir:
			BuildTree(t, path, v)
		default:
			t.Fatalf("unsupported structure type %T for %s", content, name)
		}

		if strings.HasPrefix(name, ".") {
			markHidden(t, path)
		}
	}
}

// CreateHiddenFile creates an empty hidden file in dir. The name must start
// with a dot.
func CreateHiddenFile(t *testing.T, dir, name string) string {
	t.Helper()

	if !strings.HasPrefix(name, ".") {
		t.Fatalf("hidden files must start with '.', got %q", name)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("failed to create hidden file %s: %v", path, err)
	}
	markHidden(t, path)
	return path
}
