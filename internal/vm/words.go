package vm

// words.go defines the base data types of the machine: 16-bit signed words and the register
// types built on top of them.

import "fmt"

// Word is the base data type on which the machine operates: a 16-bit two's-complement signed
// integer. All arithmetic on words wraps modulo 2^16 and is then reinterpreted as signed.
type Word int16

func (w Word) String() string {
	return fmt.Sprintf("%0#4x", uint16(w))
}

// wrap reduces a wider signed intermediate result to a Word modulo 2^16, matching the machine's
// fixed-width arithmetic regardless of host integer width.
func wrap(v int32) Word {
	return Word(int16(uint16(v)))
}

// Add returns a+b wrapped to 16 bits.
func (w Word) Add(v Word) Word {
	return wrap(int32(w) + int32(v))
}

// Sub returns a-b wrapped to 16 bits.
func (w Word) Sub(v Word) Word {
	return wrap(int32(w) - int32(v))
}

// Neg returns -w wrapped to 16 bits; -32768 negates to itself, as in any two's-complement machine.
func (w Word) Neg() Word {
	return wrap(-int32(w))
}

// Unsigned returns the word's bit pattern as an unsigned 16-bit integer, used for logical
// (zero-fill) shifts and octal/hex formatting.
func (w Word) Unsigned() uint16 {
	return uint16(w)
}

// Bool converts a boolean test to the machine's true/false encoding: -1 for true, 0 for false.
func Bool(b bool) Word {
	if b {
		return -1
	}

	return 0
}

// Addr is a word-aligned memory address: a non-negative index into the machine's memory array.
type Addr = Word

// ByteAddr is a byte-granular address over the same backing store as Addr; byte address b names
// the low byte of word b>>1 when b is even, the high byte when b is odd (little-endian).
type ByteAddr = Word
