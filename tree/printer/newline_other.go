//go:build !windows

package printer

// Newline is the platform's native line terminator.
const Newline = "\n"
