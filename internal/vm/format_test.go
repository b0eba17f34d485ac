package vm

import (
	"bytes"
	"strings"
	"testing"
)

func TestPackedStringRoundTrip(t *testing.T) {
	t.Parallel()

	m := New()

	p := Word(500)
	want := []byte("FLUID PROFILE")

	m.setPackedString(p, want)

	got := m.packedString(p)
	if string(got) != string(want) {
		t.Errorf("packedString = %q, want %q", got, want)
	}
}

func TestSetPackedStringTruncates(t *testing.T) {
	t.Parallel()

	m := New()

	long := bytes.Repeat([]byte{'x'}, 300)
	m.setPackedString(500, long)

	got := m.packedString(500)
	if len(got) != 255 {
		t.Errorf("len(packedString) = %d, want 255", len(got))
	}
}

func TestWrited(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, d Word
		want string
	}{
		{0, 0, "0"},
		{42, 0, "42"},
		{-42, 0, "-42"},
		{42, 5, "   42"},
		{-42, 5, "  -42"},
		{42, 2, "42"},
	}

	for _, tc := range cases {
		var buf bytes.Buffer

		m := New()
		m.Streams.SetStdout(&buf)

		m.writed(tc.n, tc.d)

		if got := buf.String(); got != tc.want {
			t.Errorf("writed(%d,%d) = %q, want %q", tc.n, tc.d, got, tc.want)
		}
	}
}

func TestWriteHexOct(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	m := New()
	m.Streams.SetStdout(&buf)

	hexVal := uint16(0xBEEF)
	m.writeHex(Word(hexVal), 4)

	if got := strings.ToUpper(buf.String()); got != "BEEF" {
		t.Errorf("writeHex = %q, want BEEF", buf.String())
	}

	buf.Reset()
	m.writeOct(8, 3)

	if got := buf.String(); got != "010" {
		t.Errorf("writeOct = %q, want 010", got)
	}
}

func TestWritefPercentS(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	m := New()
	m.Streams.SetStdout(&buf)

	fmtAddr := Word(600)
	m.setPackedString(fmtAddr, []byte("hi %S!%N"))

	nameAddr := Word(620)
	m.setPackedString(nameAddr, []byte("bob"))

	argvec := Word(700)
	m.Mem.SetWord(argvec, fmtAddr)
	m.Mem.SetWord(argvec+1, nameAddr)
	m.Mem.SetWord(argvec+2, 5)

	m.writef(argvec)

	if got, want := buf.String(), "hi bob!5"; got != want {
		t.Errorf("writef = %q, want %q", got, want)
	}
}

func TestReadn(t *testing.T) {
	t.Parallel()

	m := New()
	m.Streams.SetStdin(strings.NewReader("   -123,"))

	got := m.readn()
	if got != -123 {
		t.Errorf("readn = %d, want -123", got)
	}

	if term := m.Mem.Word(K71Terminator); term != ',' {
		t.Errorf("terminator = %q, want ','", rune(term))
	}
}
