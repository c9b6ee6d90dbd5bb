package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// colorMode describes when depth colors are written.
type colorMode byte

const (
	colorModeAlways colorMode = iota
	colorModeAuto
	colorModeNever
)

var colorModeToString = []string{
	colorModeAlways: "always",
	colorModeAuto:   "auto",
	colorModeNever:  "never",
}

// String converts a colorMode to a string
func (m colorMode) String() string {
	if int(m) >= len(colorModeToString) {
		return fmt.Sprintf("colorMode(%d)", m)
	}
	return colorModeToString[m]
}

// Set a colorMode
func (m *colorMode) Set(s string) error {
	for n, name := range colorModeToString {
		if s != "" && name == strings.ToLower(s) {
			*m = colorMode(n)
			return nil
		}
	}
	return fmt.Errorf("unknown color mode %q (want always, auto or never)", s)
}

// Type of colorMode
func (m *colorMode) Type() string {
	return "mode"
}

// enabled resolves the mode against f. auto enables color only when f is a
// terminal.
func (m colorMode) enabled(f *os.File) bool {
	switch m {
	case colorModeNever:
		return false
	case colorModeAuto:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	default:
		return true
	}
}
