package asm

import (
	"strings"
	"testing"
)

func tokens(t *testing.T, src string) []token {
	t.Helper()

	l := newLexer(strings.NewReader(src))

	var toks []token

	for {
		tok, err := l.next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}

		if tok.kind == tokEOF {
			return toks
		}

		toks = append(toks, tok)
	}
}

func TestLexer_SpacedSingleChars(t *testing.T) {
	t.Parallel()

	toks := tokens(t, "L I 1")

	want := []token{
		{kind: tokChar, ch: 'L'},
		{kind: tokChar, ch: 'I'},
		{kind: tokNumber, num: 1},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}

	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestLexer_AdjacentDirectiveLetters(t *testing.T) {
	t.Parallel()

	toks := tokens(t, "DL 5")

	want := []token{
		{kind: tokChar, ch: 'D'},
		{kind: tokChar, ch: 'L'},
		{kind: tokNumber, num: 5},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}

	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestLexer_NegativeNumber(t *testing.T) {
	t.Parallel()

	toks := tokens(t, "-42")

	if len(toks) != 1 || toks[0].kind != tokNumber || toks[0].num != -42 {
		t.Fatalf("got %+v, want one tokNumber(-42)", toks)
	}
}

func TestLexer_CommentRunsToLineFeed(t *testing.T) {
	t.Parallel()

	toks := tokens(t, "L / this is a comment\n\n\nI 1")

	want := []token{
		{kind: tokChar, ch: 'L'},
		{kind: tokChar, ch: 'I'},
		{kind: tokNumber, num: 1},
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}

	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, toks[i], want[i])
		}
	}
}

func TestLexer_Pushback(t *testing.T) {
	t.Parallel()

	l := newLexer(strings.NewReader("A B"))

	first, err := l.next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}

	l.unread(first)

	again, err := l.next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}

	if again != first {
		t.Errorf("next after unread = %+v, want %+v", again, first)
	}

	second, err := l.next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}

	if second.ch != 'B' {
		t.Errorf("second token = %+v, want ch='B'", second)
	}
}
