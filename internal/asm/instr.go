package asm

// instr.go assembles the eight instruction mnemonics with their addressing modifiers (spec §4.3
// item: "Instructions").

import "github.com/smoynes/intcode/internal/vm"

func fnFor(letter byte) (vm.Fn, bool) {
	switch letter {
	case 'L':
		return vm.FnL, true
	case 'S':
		return vm.FnS, true
	case 'A':
		return vm.FnA, true
	case 'J':
		return vm.FnJ, true
	case 'T':
		return vm.FnT, true
	case 'F':
		return vm.FnF, true
	case 'K':
		return vm.FnK, true
	case 'X':
		return vm.FnX, true
	default:
		return 0, false
	}
}

// instruction assembles one instruction word (and its operand) for the given function letter.
func (a *Assembler) instruction(letter byte) error {
	fn, ok := fnFor(letter)
	if !ok {
		return &BadCodeError{Pos: int(a.Mem.LoMem)}
	}

	a.cp = 0

	var flags uint8

	for {
		tok, err := a.lex.next()
		if err != nil {
			return err
		}

		if tok.kind != tokChar {
			a.lex.unread(tok)
			break
		}

		switch tok.ch {
		case 'I':
			flags |= vm.FIBit
			continue
		case 'P':
			flags |= vm.FPBit
			continue
		case 'G':
			// Consumed and ignored: a readability separator between modifier letters.
			continue
		case 'L':
			return a.longLabelOperand(fn, flags)
		}

		a.lex.unread(tok)

		break
	}

	d, err := a.number()
	if err != nil {
		return err
	}

	if d >= 0 && d <= 0xff {
		a.Mem.Emit(vm.Word(vm.Encode(fn, flags, uint8(d))))
		return nil
	}

	a.Mem.Emit(vm.Word(vm.EncodeLong(fn, flags)))
	a.Mem.Emit(vm.Word(d))

	return nil
}

// longLabelOperand assembles the two-word form whose operand is a forward or backward reference
// to a numeric label: "fn L n".
func (a *Assembler) longLabelOperand(fn vm.Fn, flags uint8) error {
	label, err := a.number()
	if err != nil {
		return err
	}

	a.Mem.Emit(vm.Word(vm.EncodeLong(fn, flags)))
	operand := a.Mem.Emit(0)
	a.labRef(label, operand)

	return nil
}
