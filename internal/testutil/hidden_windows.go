//go:build windows

package testutil

import (
	"testing"

	"golang.org/x/sys/windows"
)

// markHidden sets FILE_ATTRIBUTE_HIDDEN on path.
func markHidden(t *testing.T, path string) {
	t.Helper()

	ptr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		t.Fatalf("invalid path %s: %v", path, err)
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		t.Fatalf("failed to read attributes of %s: %v", path, err)
	}
	if err := windows.SetFileAttributes(ptr, attrs|windows.FILE_ATTRIBUTE_HIDDEN); err != nil {
		t.Fatalf("failed to hide %s: %v", path, err)
	}
}
