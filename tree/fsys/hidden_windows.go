//go:build windows

package fsys

import (
	"golang.org/x/sys/windows"
)

// isHidden reports the FILE_ATTRIBUTE_HIDDEN attribute. Dotfiles are not
// hidden on Windows unless the attribute is set.
func isHidden(p string) bool {
	ptr, err := windows.UTF16PtrFromString(p)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}
