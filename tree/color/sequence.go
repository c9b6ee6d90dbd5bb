package color

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptySequence is returned when a sequence is built from zero colors.
var ErrEmptySequence = errors.New("color sequence must contain at least one color")

var defaultColors = []Color{White, Purple, Yellow}

// Sequence is an ordered, non-empty list of colors cycled by tree depth.
//
// The zero value behaves like Default().
type Sequence struct {
	colors []Color
}

// Default returns the sequence white, purple, yellow.
func Default() Sequence {
	return Sequence{colors: defaultColors}
}

// NewSequence builds a sequence from colors. It fails with ErrEmptySequence
// when no colors are given.
func NewSequence(colors ...Color) (Sequence, error) {
	if len(colors) == 0 {
		return Sequence{}, ErrEmptySequence
	}
	return Sequence{colors: append([]Color(nil), colors...)}, nil
}

// ParseSequence parses a comma-separated list of color names.
//
// Example:
//
//	seq, err := color.ParseSequence("white,purple,yellow")
func ParseSequence(s string) (Sequence, error) {
	var colors []Color
	for _, field := range strings.Split(s, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		c, err := Parse(field)
		if err != nil {
			return Sequence{}, err
		}
		colors = append(colors, c)
	}
	return NewSequence(colors...)
}

func (s Sequence) list() []Color {
	if len(s.colors) == 0 {
		return defaultColors
	}
	return s.colors
}

// Len returns the number of colors in the sequence.
func (s Sequence) Len() int {
	return len(s.list())
}

// Colors returns a copy of the colors in order.
func (s Sequence) Colors() []Color {
	return append([]Color(nil), s.list()...)
}

// Index returns the position in the sequence used for depth: depth mod Len
// when useColor is set, otherwise 0.
func (s Sequence) Index(depth int, useColor bool) int {
	if !useColor {
		return 0
	}
	n := s.Len()
	return ((depth % n) + n) % n
}

// Pick returns the color for entries at depth. With color disabled every
// depth maps to the first color of the sequence, not to a neutral color.
func (s Sequence) Pick(depth int, useColor bool) Color {
	return s.list()[s.Index(depth, useColor)]
}

// String renders the sequence as comma-separated color names.
func (s Sequence) String() string {
	list := s.list()
	parts := make([]string, len(list))
	for i, c := range list {
		parts[i] = c.Name()
	}
	return strings.Join(parts, ",")
}

// Value adapts a Sequence to the flag.Value / pflag.Value interfaces.
type Value struct {
	Seq *Sequence
}

// Set parses s and replaces the sequence.
func (v Value) Set(s string) error {
	seq, err := ParseSequence(s)
	if err != nil {
		return fmt.Errorf("invalid color sequence %q: %w", s, err)
	}
	*v.Seq = seq
	return nil
}

func (v Value) String() string {
	if v.Seq == nil {
		return Default().String()
	}
	return v.Seq.String()
}

// Type is reported in flag usage.
func (v Value) Type() string {
	return "colors"
}
