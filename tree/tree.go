// Package tree renders a directory as an indented, optionally colorized
// listing.
//
// # Output
//
// The root directory is printed first, followed by its children in
// pre-order, depth-first. Children are ordered with the sorter package.
// Each level of depth is indented by three spaces and directories carry a
// trailing "/":
//
//	myFolder/
//	   Apple.txt
//	   banana.txt
//	   Documents/
//	      images/
//	         Cat.png
//	         cat.png
//	         Dog.png
//	      notes.txt
//	      README.md
//	   zebra.txt
//
// Every line is written as color + text + line terminator + reset. The color
// for depth d is Colors[d mod len(Colors)] when UseColor is set and
// Colors[0] otherwise.
//
// # Hidden entries
//
// With ShowHidden unset, a hidden entry's own line is suppressed. A hidden
// directory is still descended into: its visible children are printed at
// their normal depth.
//
// # Failures
//
// A root that is missing or not a directory produces the single uncolored
// line "invalid directory". A directory that cannot be listed is treated as
// empty. Neither is reported as an error; Render only fails when the output
// sink does.
package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/truffula/internal/logger"
	"github.com/joshuapare/truffula/tree/color"
	"github.com/joshuapare/truffula/tree/fsys"
	"github.com/joshuapare/truffula/tree/printer"
	"github.com/joshuapare/truffula/tree/sorter"
)

const (
	// Indent is written once per level of depth.
	Indent = "   "

	// InvalidDirectory is printed when the root is missing or not a directory.
	InvalidDirectory = "invalid directory"
)

// Options controls rendering. It is not modified by the renderer.
type Options struct {
	// Root is the directory to render.
	Root string

	// ShowHidden prints hidden entries.
	// Default: false
	ShowHidden bool

	// UseColor cycles Colors by depth. When false every line uses the
	// first color of Colors.
	// Default: true
	UseColor bool

	// Colors is the sequence cycled by depth. The zero value is
	// color.Default() (white, purple, yellow).
	Colors color.Sequence
}

// DefaultOptions returns options for rendering root with colors enabled and
// hidden entries suppressed.
func DefaultOptions(root string) Options {
	return Options{
		Root:       root,
		ShowHidden: false,
		UseColor:   true,
		Colors:     color.Default(),
	}
}

// Renderer walks a filesystem and prints it as a tree.
type Renderer struct {
	opts Options
	fs   fsys.FS
	out  *printer.Printer
}

// New creates a Renderer.
//
// A nil fs selects the host filesystem and a nil w selects os.Stdout.
//
// Example:
//
//	r := tree.New(fsys.OS(), os.Stdout, tree.DefaultOptions("myFolder"))
//	if err := r.Render(); err != nil {
//	    log.Fatal(err)
//	}
func New(fs fsys.FS, w io.StringWriter, opts Options) *Renderer {
	if fs == nil {
		fs = fsys.OS()
	}
	return &Renderer{
		opts: opts,
		fs:   fs,
		out:  printer.New(w),
	}
}

// Print renders opts.Root from the host filesystem to w.
func Print(w io.StringWriter, opts Options) error {
	return New(fsys.OS(), w, opts).Render()
}

// Render prints the tree rooted at Options.Root. The returned error is
// always a write error from the output sink.
func (r *Renderer) Render() error {
	root := r.opts.Root
	if !r.fs.Exists(root) || !r.fs.IsDir(root) {
		logger.Debug("invalid root", "path", root)
		return r.out.PrintLine(color.None, InvalidDirectory)
	}
	return r.renderNode(root, 0)
}

func (r *Renderer) renderNode(path string, depth int) error {
	isDir := r.fs.IsDir(path)

	if r.opts.ShowHidden || !r.fs.IsHidden(path) {
		line := strings.Repeat(Indent, depth) + r.fs.Base(path)
		if isDir {
			line += "/"
		}
		c := r.opts.Colors.Pick(depth, r.opts.UseColor)
		if err := r.out.PrintLine(c, line); err != nil {
			return fmt.Errorf("print %s: %w", path, err)
		}
	}

	if !isDir {
		return nil
	}

	entries, err := r.fs.List(path)
	if err != nil {
		logger.Debug("unreadable directory", "path", path, "error", err)
		return nil
	}
	sorter.Sort(entries, func(e fsys.Entry) string { return e.Name })

	for _, e := range entries {
		if err := r.renderNode(e.Path, depth+1); err != nil {
			return err
		}
	}
	return nil
}
