//go:build !windows

package fsys

import "path/filepath"

func isHidden(p string) bool {
	return isDotName(filepath.Base(p))
}
