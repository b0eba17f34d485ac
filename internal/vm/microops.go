package vm

// microops.go implements the X instruction's micro-op table: unary and binary operations on A
// and B, relational tests, logical shifts, bitwise operations, RTN, FINISH and SWITCHON
// (spec §4.4, §4.5).

const (
	xLoadIndirect = 1 + iota // @A: A <- m[A]
	xNeg
	xNot
	xRtn
	xMul
	xDiv
	xMod
	xAdd
	xSub
	xEq
	xNe
	xLt
	xGe
	xGt
	xLe
	xLsh
	xRsh
	xAnd
	xOr
	xXor
	xEqv
	xFinish
	xSwitchon
)

// exec implements the X (execute micro-op) instruction.
func (m *Machine) exec(d Word) error {
	switch d {
	case xLoadIndirect:
		m.A = m.Mem.Word(m.A)
	case xNeg:
		m.A = m.A.Neg()
	case xNot:
		m.A = wrap(int32(^uint16(m.A)))
	case xRtn:
		m.PC = m.Mem.Word(m.SP + 1)
		m.SP = m.Mem.Word(m.SP)
	case xMul:
		m.A = wrap(int32(m.B) * int32(m.A))
	case xDiv:
		if m.A == 0 {
			m.A = 0
		} else {
			m.A = wrap(int32(m.B) / int32(m.A))
		}
	case xMod:
		if m.A == 0 {
			m.A = 0
		} else {
			m.A = wrap(int32(m.B) % int32(m.A))
		}
	case xAdd:
		m.A = m.B.Add(m.A)
	case xSub:
		m.A = m.B.Sub(m.A)
	case xEq:
		m.A = Bool(m.B == m.A)
	case xNe:
		m.A = Bool(m.B != m.A)
	case xLt:
		m.A = Bool(m.B < m.A)
	case xGe:
		m.A = Bool(m.B >= m.A)
	case xGt:
		m.A = Bool(m.B > m.A)
	case xLe:
		m.A = Bool(m.B <= m.A)
	case xLsh:
		count := uint16(m.A) & 0x1f
		m.A = wrap(int32(uint16(m.B)) << count)
	case xRsh:
		count := uint16(m.A) & 0x1f
		m.A = wrap(int32(uint16(m.B) >> count))
	case xAnd:
		m.A = wrap(int32(uint16(m.B) & uint16(m.A)))
	case xOr:
		m.A = wrap(int32(uint16(m.B) | uint16(m.A)))
	case xXor:
		m.A = wrap(int32(uint16(m.B) ^ uint16(m.A)))
	case xEqv:
		m.A = wrap(int32(uint16(m.B) ^ ^uint16(m.A)))
	case xFinish:
		return &Halt{Code: 0}
	case xSwitchon:
		return m.switchon()
	default:
		return &UnknownExecError{Code: d}
	}

	return nil
}

// switchon reads an inline jump table immediately following the X instruction in memory: a
// count n, a default target, then n (case, target) pairs. PC is advanced past the whole table
// regardless of which branch is taken.
func (m *Machine) switchon() error {
	n := m.Mem.Word(m.PC)
	m.PC++

	def := m.Mem.Word(m.PC)
	m.PC++

	target := def

	for i := Word(0); i < n; i++ {
		caseVal := m.Mem.Word(m.PC)
		m.PC++
		caseTarget := m.Mem.Word(m.PC)
		m.PC++

		if caseVal == m.A {
			target = caseTarget
		}
	}

	m.PC = target

	return nil
}
