package asm

// lexer.go is the byte-level scanner behind the single-pass assembler. Tokens are either a
// single non-separator character or a signed run of decimal digits; `$`, space and line feed
// separate tokens and are otherwise insignificant, and a `/` begins a comment extending through
// any run of line feeds that follows it.

import (
	"bufio"
	"errors"
	"io"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokChar
	tokNumber
)

type token struct {
	kind tokenKind
	ch   byte
	num  int
}

// lexer scans tokens from an input stream, with one token of pushback.
type lexer struct {
	r *bufio.Reader

	pending  *token
	haveNext bool
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r)}
}

// unread pushes tok back so the next call to next returns it again.
func (l *lexer) unread(tok token) {
	l.pending = &tok
	l.haveNext = true
}

// next returns the next token, skipping separators and comments.
func (l *lexer) next() (token, error) {
	if l.haveNext {
		l.haveNext = false
		tok := *l.pending
		l.pending = nil

		return tok, nil
	}

	for {
		b, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return token{kind: tokEOF}, nil
			}

			return token{}, err
		}

		switch {
		case b == '$' || b == ' ' || b == '\n' || b == '\r' || b == '\t':
			continue

		case b == '/':
			if err := l.skipComment(); err != nil {
				return token{}, err
			}

			continue

		case b == '-' || (b >= '0' && b <= '9'):
			return l.number(b)

		default:
			return token{kind: tokChar, ch: b}, nil
		}
	}
}

// skipComment consumes characters through the next line feed, then any further consecutive line
// feeds, so that a run of blank commented lines collapses to a single separator.
func (l *lexer) skipComment() error {
	for {
		b, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if b == '\n' {
			break
		}
	}

	for {
		b, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}

		if b != '\n' {
			_ = l.r.UnreadByte()
			return nil
		}
	}
}

func (l *lexer) number(first byte) (token, error) {
	neg := false
	digits := []byte{}

	if first == '-' {
		neg = true
	} else {
		digits = append(digits, first)
	}

	for {
		b, err := l.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return token{}, err
		}

		if b < '0' || b > '9' {
			_ = l.r.UnreadByte()
			break
		}

		digits = append(digits, b)
	}

	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}

	if neg {
		n = -n
	}

	return token{kind: tokNumber, num: n}, nil
}
