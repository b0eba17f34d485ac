package asm

// errors.go defines the assembler's fatal error types (spec §4.3, §7).

import (
	"errors"
	"fmt"
)

// ErrAssembler is the sentinel wrapped by all fatal assembler errors.
var ErrAssembler = errors.New("assembler error")

// DuplicateLabelError is returned when a numeric label is defined a second time.
type DuplicateLabelError struct {
	Label int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("DUPLICATE LABEL %d", e.Label)
}

func (e *DuplicateLabelError) Is(target error) bool { return target == ErrAssembler }
func (e *DuplicateLabelError) Unwrap() error         { return ErrAssembler }

// UnsetLabelError is returned when a Z directive finds a label that was referenced but never
// defined.
type UnsetLabelError struct {
	Label int
}

func (e *UnsetLabelError) Error() string {
	return fmt.Sprintf("UNSET LABEL %d", e.Label)
}

func (e *UnsetLabelError) Is(target error) bool { return target == ErrAssembler }
func (e *UnsetLabelError) Unwrap() error         { return ErrAssembler }

// BadCharError is returned when the assembler encounters a character that cannot begin any
// directive, instruction or label definition.
type BadCharError struct {
	Ch byte
}

func (e *BadCharError) Error() string {
	return fmt.Sprintf("BAD CH %d", e.Ch)
}

func (e *BadCharError) Is(target error) bool { return target == ErrAssembler }
func (e *BadCharError) Unwrap() error         { return ErrAssembler }

// BadCodeError is returned when a directive or instruction is not followed by the number it
// expects (or an instruction's function letter is not one of L S A J T F K X); Pos is the load
// pointer at that point.
type BadCodeError struct {
	Pos int
}

func (e *BadCodeError) Error() string {
	return fmt.Sprintf("BAD CODE AT P %d", e.Pos)
}

func (e *BadCodeError) Is(target error) bool { return target == ErrAssembler }
func (e *BadCodeError) Unwrap() error         { return ErrAssembler }
