// Package fsys is the filesystem capability consumed by the tree renderer:
// existence and type checks, hidden-status queries and directory listing.
//
// OS returns the host filesystem. FromFS adapts any io/fs.FS, which is how
// tests and embedded trees are rendered without touching the disk.
package fsys

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Entry is one child returned by List.
type Entry struct {
	// Name is the base name of the entry.
	Name string
	// Path is the full path, suitable for passing back into FS methods.
	Path string
}

// FS answers the questions the renderer asks about a path. Implementations
// report failures as false / error and never panic.
type FS interface {
	// Exists reports whether path names an existing entry.
	Exists(path string) bool
	// IsDir reports whether path names an existing directory.
	IsDir(path string) bool
	// IsHidden reports whether path is hidden by platform convention.
	IsHidden(path string) bool
	// List returns the children of the directory at path. A directory that
	// cannot be read yields a nil slice and a non-nil error.
	List(path string) ([]Entry, error)
	// Base returns the last element of path.
	Base(path string) string
}

// ErrNotDir is returned by List when path is not a directory.
var ErrNotDir = errors.New("not a directory")

// OS returns the host filesystem.
func OS() FS {
	return osFS{}
}

type osFS struct{}

func (osFS) Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

func (osFS) IsDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

func (osFS) IsHidden(p string) bool {
	return isHidden(p)
}

func (osFS) List(p string) ([]Entry, error) {
	des, err := os.ReadDir(p)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: filepath.Join(p, de.Name()),
		})
	}
	return entries, nil
}

func (osFS) Base(p string) string {
	return filepath.Base(p)
}

// isDotName reports whether name follows the Unix dotfile convention.
// "." and ".." refer to real directories and are never treated as hidden.
func isDotName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// FromFS adapts an io/fs.FS. Paths are slash-separated and relative to the
// root of fsys ("." is the root). Dot-prefixed names are hidden.
func FromFS(fsys fs.FS) FS {
	return ioFS{fsys: fsys}
}

type ioFS struct {
	fsys fs.FS
}

func (f ioFS) Exists(p string) bool {
	_, err := fs.Stat(f.fsys, p)
	return err == nil
}

func (f ioFS) IsDir(p string) bool {
	info, err := fs.Stat(f.fsys, p)
	return err == nil && info.IsDir()
}

func (f ioFS) IsHidden(p string) bool {
	return isDotName(path.Base(p))
}

func (f ioFS) List(p string) ([]Entry, error) {
	if !f.IsDir(p) {
		return nil, &fs.PathError{Op: "list", Path: p, Err: ErrNotDir}
	}
	des, err := fs.ReadDir(f.fsys, p)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		entries = append(entries, Entry{
			Name: de.Name(),
			Path: path.Join(p, de.Name()),
		})
	}
	return entries, nil
}

func (f ioFS) Base(p string) string {
	return path.Base(p)
}
