package vm

// exec.go is the fetch/decode/execute loop (spec §4.4).

import (
	"context"
	"errors"
)

// Step fetches, decodes and executes exactly one instruction. It returns a *Halt when the
// program finishes normally (FINISH or STOP) and any other error for a fatal interpreter
// condition (UNKNOWN CALL, UNKNOWN EXEC).
func (m *Machine) Step() error {
	ir := Instruction(m.Mem.Word(m.PC))
	m.PC++

	var d Word
	if ir.Long() {
		d = m.Mem.Word(m.PC)
		m.PC++
	} else {
		d = ir.ShortOperand()
	}

	if ir.StackRelative() {
		d = d.Add(m.SP)
	}

	if ir.Indirect() {
		d = m.Mem.Word(d)
	}

	switch ir.Fn() {
	case FnL:
		m.B = m.A
		m.A = d
	case FnS:
		m.Mem.SetWord(d, m.A)
	case FnA:
		m.A = m.A.Add(d)
	case FnJ:
		m.PC = d
	case FnT:
		if m.A != 0 {
			m.PC = d
		}
	case FnF:
		if m.A == 0 {
			m.PC = d
		}
	case FnK:
		return m.call(d)
	case FnX:
		return m.exec(d)
	}

	return nil
}

// Run steps the machine until it halts, an interpreter error occurs, or ctx is cancelled. It
// returns the process exit code: the Halt's code on normal termination, 1 on a cancelled context
// or any other error.
func (m *Machine) Run(ctx context.Context) (Word, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 1, err
		}

		err := m.Step()
		if err == nil {
			continue
		}

		var halt *Halt
		if errors.As(err, &halt) {
			return halt.Code, nil
		}

		m.log.Error("interpreter error", "err", err, "state", m.String())

		return 1, err
	}
}

// call implements the K (call) instruction. d is the generically-decoded operand; per spec §4.4
// a K instruction always recomputes d := d + SP regardless of the FP flag, giving the base of the
// callee's argument frame.
func (m *Machine) call(d Word) error {
	d = d.Add(m.SP)

	if m.A >= ProgStart {
		m.Mem.SetWord(d, m.SP)
		m.Mem.SetWord(d+1, m.PC)
		m.SP = d
		m.PC = m.A

		return nil
	}

	return m.syscall(int(m.A), d)
}
