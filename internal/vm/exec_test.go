package vm

import (
	"context"
	"testing"
)

func TestStep_LoadAddStore(t *testing.T) {
	t.Parallel()

	m := New()

	start := m.Mem.LoMem
	m.Mem.Emit(Word(Encode(FnL, 0, 5)))
	m.Mem.Emit(Word(Encode(FnA, 0, 3)))
	m.Mem.Emit(Word(Encode(FnS, 0, 20)))
	m.Mem.Emit(Word(Encode(FnX, 0, xFinish)))

	m.PC = start
	m.SP = m.Mem.LoMem

	code, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	if got := m.Mem.Word(20); got != 8 {
		t.Errorf("mem[20] = %d, want 8", got)
	}
}

func TestStep_UserCallAndReturn(t *testing.T) {
	t.Parallel()

	m := New()

	subAddr := m.Mem.LoMem
	m.Mem.Emit(Word(Encode(FnL, 0, 42)))
	m.Mem.Emit(Word(Encode(FnX, 0, xRtn)))

	mainAddr := m.Mem.LoMem
	m.Mem.Emit(Word(EncodeLong(FnL, 0)))
	m.Mem.Emit(subAddr)
	m.Mem.Emit(Word(Encode(FnK, 0, 0)))
	m.Mem.Emit(Word(Encode(FnS, 0, 20)))
	m.Mem.Emit(Word(Encode(FnX, 0, xFinish)))

	m.PC = mainAddr
	m.SP = m.Mem.LoMem

	code, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	if got := m.Mem.Word(20); got != 42 {
		t.Errorf("mem[20] = %d, want 42", got)
	}
}

func TestStep_Stop(t *testing.T) {
	t.Parallel()

	m := New()

	start := m.Mem.LoMem
	// K STOP(v[0]): A <- 30 (kStop), d <- 0, argvec slot 0 holds the exit code.
	m.Mem.Emit(Word(EncodeLong(FnL, 0)))
	m.Mem.Emit(kStop)
	m.Mem.Emit(Word(Encode(FnK, 0, 0)))

	m.PC = start
	m.SP = m.Mem.LoMem

	// The K call computes d = 0 + SP = m.SP, and reads syscall argument v[0] from m[d+2].
	m.Mem.SetWord(m.SP+2, 7)

	code, err := m.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if code != 7 {
		t.Errorf("exit code = %d, want 7", code)
	}
}

func TestSwitchon(t *testing.T) {
	t.Parallel()

	m := New()

	start := m.Mem.LoMem
	m.Mem.Emit(Word(Encode(FnL, 0, 2))) // A <- 2
	m.Mem.Emit(Word(Encode(FnX, 0, xSwitchon)))

	m.Mem.Emit(3) // n = 3 cases
	defaultTarget := m.Mem.LoMem + 1 + 3*2 + 10
	m.Mem.Emit(defaultTarget)
	m.Mem.Emit(1)
	m.Mem.Emit(m.Mem.LoMem + 100)
	m.Mem.Emit(2)
	matchTarget := m.Mem.LoMem + 20
	m.Mem.Emit(matchTarget)
	m.Mem.Emit(3)
	m.Mem.Emit(m.Mem.LoMem + 200)

	m.PC = start
	m.SP = m.Mem.LoMem

	if err := m.Step(); err != nil {
		t.Fatalf("Step (load): %v", err)
	}

	if err := m.Step(); err != nil {
		t.Fatalf("Step (switchon): %v", err)
	}

	if m.PC != matchTarget {
		t.Errorf("PC = %d, want %d (case 2's target)", m.PC, matchTarget)
	}
}

func TestExec_UnknownMicroOp(t *testing.T) {
	t.Parallel()

	m := New()

	start := m.Mem.LoMem
	m.Mem.Emit(Word(Encode(FnX, 0, 99)))
	m.PC = start
	m.SP = m.Mem.LoMem

	err := m.Step()
	if _, ok := err.(*UnknownExecError); !ok {
		t.Errorf("Step err = %v (%T), want *UnknownExecError", err, err)
	}
}

func TestCall_UnknownSyscall(t *testing.T) {
	t.Parallel()

	m := New()

	start := m.Mem.LoMem
	m.Mem.Emit(Word(Encode(FnL, 0, 9))) // A <- 9: no such syscall code
	m.Mem.Emit(Word(Encode(FnK, 0, 0)))

	m.PC = start
	m.SP = m.Mem.LoMem

	if err := m.Step(); err != nil {
		t.Fatalf("Step (load): %v", err)
	}

	err := m.Step()
	if _, ok := err.(*UnknownCallError); !ok {
		t.Errorf("Step err = %v (%T), want *UnknownCallError", err, err)
	}
}
