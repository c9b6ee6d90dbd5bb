// Package color defines the console colors used by the tree renderer and the
// ordered sequence they are cycled through by depth.
package color

import (
	"errors"
	"fmt"
	"strings"
)

// Color is a console color. Its String form is the ANSI escape sequence that
// switches the terminal to that color.
type Color uint8

const (
	// None writes no escape sequence at all. It is the zero value.
	None Color = iota
	// Reset restores the terminal's default rendering.
	Reset
	Black
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	White
)

// ErrUnknownColor is returned by Parse for names outside the palette.
var ErrUnknownColor = errors.New("unknown color")

var escapes = [...]string{
	None:   "",
	Reset:  "\033[0m",
	Black:  "\033[0;30m",
	Red:    "\033[0;31m",
	Green:  "\033[0;32m",
	Yellow: "\033[0;33m",
	Blue:   "\033[0;34m",
	Purple: "\033[0;35m",
	Cyan:   "\033[0;36m",
	White:  "\033[0;37m",
}

var names = [...]string{
	None:   "none",
	Reset:  "reset",
	Black:  "black",
	Red:    "red",
	Green:  "green",
	Yellow: "yellow",
	Blue:   "blue",
	Purple: "purple",
	Cyan:   "cyan",
	White:  "white",
}

// String returns the escape sequence for c.
func (c Color) String() string {
	if int(c) >= len(escapes) {
		return ""
	}
	return escapes[c]
}

// Name returns the lowercase palette name of c.
func (c Color) Name() string {
	if int(c) >= len(names) {
		return fmt.Sprintf("Color(%d)", uint8(c))
	}
	return names[c]
}

// Parse looks up a color by name, ignoring case. "magenta" is accepted as an
// alias for Purple. None and Reset are not selectable colors.
func Parse(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "magenta" {
		return Purple, nil
	}
	for i, candidate := range names {
		if Color(i) > Reset && candidate == n {
			return Color(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}
