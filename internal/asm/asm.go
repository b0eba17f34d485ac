package asm

// asm.go is the assembler's top-level, single-pass read loop over the INTCODE grammar described
// in spec §4.3: numeric label definitions, the C/D/DL/G/Z directives, and the eight instruction
// mnemonics.

import (
	"io"

	"github.com/smoynes/intcode/internal/log"
	"github.com/smoynes/intcode/internal/vm"
)

// Assembler reads textual INTCODE and emits words into a machine's memory image at its
// monotonically rising load pointer.
type Assembler struct {
	Mem *vm.Memory

	lex *lexer
	cp  int // Byte cursor within the word at Mem.LoMem, advanced by the C directive.
	log *log.Logger
}

// OptionFn configures an Assembler during New.
type OptionFn func(*Assembler)

// WithLogger overrides the assembler's logger.
func WithLogger(logger *log.Logger) OptionFn {
	return func(a *Assembler) { a.log = logger }
}

// New creates an assembler that emits into mem.
func New(mem *vm.Memory, opts ...OptionFn) *Assembler {
	a := &Assembler{
		Mem: mem,
		log: log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Assemble reads INTCODE source from r to end of stream, emitting into Mem as it goes. Multiple
// calls against the same Assembler continue loading at the current LoMem, so that several source
// files assemble into one contiguous image.
func (a *Assembler) Assemble(r io.Reader) error {
	a.lex = newLexer(r)
	a.cp = 0

	for {
		tok, err := a.lex.next()
		if err != nil {
			return err
		}

		if tok.kind == tokEOF {
			return nil
		}

		if err := a.statement(tok); err != nil {
			return err
		}
	}
}

func (a *Assembler) statement(tok token) error {
	switch tok.kind {
	case tokNumber:
		return a.defineLabel(tok.num)

	case tokChar:
		switch tok.ch {
		case 'C':
			return a.directiveC()
		case 'D':
			return a.directiveD()
		case 'G':
			return a.directiveG()
		case 'Z':
			return a.directiveZ()
		case 'L', 'S', 'A', 'J', 'T', 'F', 'K', 'X':
			return a.instruction(tok.ch)
		default:
			return &BadCharError{Ch: tok.ch}
		}
	}

	return &BadCharError{}
}

// directiveC emits one byte at the current byte cursor, auto-extending into a new word once two
// bytes have been written.
func (a *Assembler) directiveC() error {
	n, err := a.number()
	if err != nil {
		return err
	}

	byteAddr := a.Mem.LoMem.Add(a.Mem.LoMem).Add(vm.Word(a.cp))
	a.Mem.SetByte(byteAddr, vm.Word(n))

	if a.cp == 0 {
		a.cp = 1
	} else {
		a.cp = 0
		a.Mem.LoMem++
	}

	return nil
}

// directiveD handles both D (literal data word) and DL (data word patched to a label's address),
// distinguished by whether the D is immediately followed by an L token with no intervening
// separator semantics beyond the usual ones.
func (a *Assembler) directiveD() error {
	tok, err := a.lex.next()
	if err != nil {
		return err
	}

	a.cp = 0

	if tok.kind == tokChar && tok.ch == 'L' {
		label, err := a.number()
		if err != nil {
			return err
		}

		addr := a.Mem.Emit(0)
		a.labRef(label, addr)

		return nil
	}

	a.lex.unread(tok)

	n, err := a.number()
	if err != nil {
		return err
	}

	a.Mem.Emit(vm.Word(n))

	return nil
}

// directiveG writes 0 into global-vector word n, then records a reference to label m at n: "G n L m".
func (a *Assembler) directiveG() error {
	n, err := a.number()
	if err != nil {
		return err
	}

	tok, err := a.lex.next()
	if err != nil {
		return err
	}

	if tok.kind != tokChar || tok.ch != 'L' {
		return &BadCharError{Ch: tok.ch}
	}

	m, err := a.number()
	if err != nil {
		return err
	}

	a.cp = 0
	slot := vm.Word(n)
	a.Mem.SetWord(slot, 0)
	a.labRef(m, slot)

	return nil
}

// directiveZ ends an assembly section: every label slot must be <= 0, then the label vector is
// cleared for the next section.
func (a *Assembler) directiveZ() error {
	a.cp = 0

	if err := a.checkLabels(); err != nil {
		return err
	}

	a.Mem.ClearLabels()

	return nil
}

// number reads the next token, requiring it to be a number.
func (a *Assembler) number() (int, error) {
	tok, err := a.lex.next()
	if err != nil {
		return 0, err
	}

	if tok.kind != tokNumber {
		return 0, &BadCodeError{Pos: int(a.Mem.LoMem)}
	}

	return tok.num, nil
}
