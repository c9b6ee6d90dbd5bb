// Package printer writes colored text to an output sink, bracketing every
// colored write with the reset sequence.
package printer

import (
	"io"
	"os"

	"github.com/joshuapare/truffula/tree/color"
)

// Printer emits colored text. Each call performs exactly one write to the
// underlying sink. Writes in color.None carry no escape sequences, so they
// are not followed by a reset either.
type Printer struct {
	w io.StringWriter
}

// New creates a Printer writing to w. A nil w selects os.Stdout.
//
// Example:
//
//	var buf strings.Builder
//	p := printer.New(&buf)
//	p.PrintLine(color.Red, "I speak for the trees")
func New(w io.StringWriter) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{w: w}
}

// PrintLine writes c, text, the native line terminator and the reset
// sequence, in that order.
func (p *Printer) PrintLine(c color.Color, text string) error {
	return p.write(c, text+Newline, true)
}

// Print writes c followed by text. The reset sequence is appended only when
// resetAfter is set. No line terminator is written.
func (p *Printer) Print(c color.Color, text string, resetAfter bool) error {
	return p.write(c, text, resetAfter)
}

func (p *Printer) write(c color.Color, text string, resetAfter bool) error {
	s := c.String() + text
	if resetAfter && c != color.None {
		s += color.Reset.String()
	}
	_, err := p.w.WriteString(s)
	return err
}
