// Package console adapts the host terminal to the machine's standard input stream: when standard
// input is an interactive terminal, it is switched to raw mode so RDCH sees every keystroke
// immediately rather than a line at a time, matching the BCPL runtime's expectation of
// character-at-a-time input.
package console

import (
	"io"
	"os"

	"golang.org/x/term"
)

// RawStdin puts the process's standard input into raw mode and returns a reader over it along
// with a restore function to call on shutdown. ok is false, and the returned reader and restore
// are nil, when standard input is not an interactive terminal (e.g. it is redirected from a file
// or pipe), in which case the caller should keep reading os.Stdin directly.
func RawStdin() (r io.Reader, restore func(), ok bool) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, nil, false
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, false
	}

	return os.Stdin, func() { _ = term.Restore(fd, state) }, true
}
