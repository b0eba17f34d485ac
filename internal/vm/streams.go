package vm

// streams.go implements the stream registry: a small table of open byte streams keyed by small
// integer handles, and the character I/O primitives that act on the currently selected input and
// output stream.

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/smoynes/intcode/internal/log"
)

// ENDSTREAMCH is returned by Rdch at end of stream.
const ENDSTREAMCH Word = -1

// Reserved stream handles for the process's standard input and output.
const (
	StdIn  = 1
	StdOut = 2
)

// stream wraps one side of an open byte stream. A stream is either readable or writable, never
// both, matching findinput/findoutput's separate open modes.
type stream struct {
	name   string
	reader *bufio.Reader
	writer io.Writer
	closer io.Closer
}

// Streams is the machine's stream registry. Handles are small positive integers; handle 0 means
// "no stream." Handles StdIn and StdOut denote the process's standard input and output and are
// never closed. Further handles are assigned monotonically and never reused within a run.
type Streams struct {
	entries map[int]*stream
	next    int

	curIn  int
	curOut int

	log *log.Logger
}

// NewStreams creates a stream registry with the process's standard input and output pre-opened
// as handles StdIn and StdOut.
func NewStreams() *Streams {
	s := &Streams{
		entries: make(map[int]*stream),
		next:    StdOut + 1,
		curIn:   StdIn,
		curOut:  StdOut,
		log:     log.DefaultLogger(),
	}

	s.entries[StdIn] = &stream{name: "stdin", reader: bufio.NewReader(os.Stdin)}
	s.entries[StdOut] = &stream{name: "stdout", writer: os.Stdout}

	return s
}

// SetStdin overrides the reader backing handle StdIn, e.g. with a raw-mode terminal adapter.
func (s *Streams) SetStdin(r io.Reader) {
	s.entries[StdIn] = &stream{name: "stdin", reader: bufio.NewReader(r)}
}

// SetStdout overrides the writer backing handle StdOut.
func (s *Streams) SetStdout(w io.Writer) {
	s.entries[StdOut] = &stream{name: "stdout", writer: w}
}

// SelectInput sets the current input stream by handle.
func (s *Streams) SelectInput(h Word) {
	s.curIn = int(h)
}

// SelectOutput sets the current output stream by handle.
func (s *Streams) SelectOutput(h Word) {
	s.curOut = int(h)
}

// CurrentInput returns the currently selected input handle.
func (s *Streams) CurrentInput() Word {
	return Word(s.curIn)
}

// CurrentOutput returns the currently selected output handle.
func (s *Streams) CurrentOutput() Word {
	return Word(s.curOut)
}

// FindInput opens name for reading and returns a fresh handle, or 0 if the file could not be
// opened under either its given spelling or a lowercased fallback.
func (s *Streams) FindInput(name string) Word {
	f, err := os.Open(name)
	if err != nil {
		f, err = os.Open(strings.ToLower(name))
	}

	if err != nil {
		s.log.Debug("findinput failed", "name", name, "err", err)
		return 0
	}

	h := s.next
	s.next++
	s.entries[h] = &stream{name: name, reader: bufio.NewReader(f), closer: f}

	return Word(h)
}

// FindOutput opens (truncating) name for writing and returns a fresh handle, or 0 on failure.
func (s *Streams) FindOutput(name string) Word {
	f, err := os.Create(name)
	if err != nil {
		s.log.Debug("findoutput failed", "name", name, "err", err)
		return 0
	}

	h := s.next
	s.next++
	s.entries[h] = &stream{name: name, writer: f, closer: f}

	return Word(h)
}

// EndRead closes the currently selected input stream, unless it is standard input, and resets
// the current input to standard input. Closing an unknown or already-closed handle is silently
// ignored.
func (s *Streams) EndRead() {
	s.closeCurrent(&s.curIn, StdIn)
}

// EndWrite closes the currently selected output stream, unless it is standard output, and resets
// the current output to standard output.
func (s *Streams) EndWrite() {
	s.closeCurrent(&s.curOut, StdOut)
}

func (s *Streams) closeCurrent(cur *int, fallback int) {
	h := *cur
	if h == StdIn || h == StdOut {
		*cur = fallback
		return
	}

	if e, ok := s.entries[h]; ok {
		if e.closer != nil {
			_ = e.closer.Close()
		}

		delete(s.entries, h)
	}

	*cur = fallback
}

// Rdch reads one byte from the currently selected input stream. Any carriage return is
// translated to line feed. It returns ENDSTREAMCH at end of stream, including reads against a
// handle that has already been closed.
func (s *Streams) Rdch() Word {
	e, ok := s.entries[s.curIn]
	if !ok || e.reader == nil {
		return ENDSTREAMCH
	}

	b, err := e.reader.ReadByte()
	if err != nil {
		return ENDSTREAMCH
	}

	if b == '\r' {
		b = '\n'
	}

	return Word(b)
}

// Wrch writes one byte to the currently selected output stream. A line-feed byte (10) writes a
// platform newline instead of the literal byte; standard output is flushed after every write so
// interactive output appears promptly.
func (s *Streams) Wrch(c Word) {
	e, ok := s.entries[s.curOut]
	if !ok || e.writer == nil {
		return
	}

	if c == 10 {
		_, _ = io.WriteString(e.writer, platformNewline)
	} else {
		_, _ = e.writer.Write([]byte{byte(c)})
	}

	if s.curOut == StdOut {
		if f, ok := e.writer.(*os.File); ok {
			_ = f.Sync()
		}
	}
}

// Newline writes a line feed to the current output, equivalent to Wrch(10).
func (s *Streams) Newline() {
	s.Wrch(10)
}
