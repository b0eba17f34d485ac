//go:build !windows

package vm

// platformNewline is written to the current output stream in place of a literal LF byte, so that
// interactive output matches host line-ending conventions.
const platformNewline = "\n"
