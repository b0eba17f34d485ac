package vm

// vm.go assembles the machine from its smaller parts: memory, streams and the working registers.

import (
	"fmt"
	"io"

	"github.com/smoynes/intcode/internal/log"
)

// Well-known global-vector slots (spec §4.4, §4.2, §6).
const (
	K01Start       = 1  // Global slot holding the program's entry-point address.
	K71Terminator  = 71 // Global slot Readn stores its terminating character into.
	bootstrapCode2 = 2  // Operand of the bootstrap's K instruction: the callee's frame is based at SP+2.
)

// Machine is the INTCODE virtual machine: memory, the stream registry and the working
// registers A, B, SP and PC.
type Machine struct {
	Mem     *Memory
	Streams *Streams

	A, B Word // Working accumulators.
	SP   Word // Stack pointer: word address of the current frame base.
	PC   Word // Program counter.

	log *log.Logger
}

// OptionFn configures a Machine during New.
type OptionFn func(*Machine)

// WithLogger overrides the machine's logger.
func WithLogger(logger *log.Logger) OptionFn {
	return func(m *Machine) { m.log = logger }
}

// WithStdin overrides the reader backing the standard-input stream handle, e.g. with a raw-mode
// terminal adapter.
func WithStdin(r io.Reader) OptionFn {
	return func(m *Machine) { m.Streams.SetStdin(r) }
}

// New creates a machine with an initialised global vector and standard streams, and plants the
// bootstrap sequence at ProgStart (spec §4.4).
//
//	L I (K01_START<<8)   ; A <- global[K01_START], i.e. the program's entry point
//	K 2                   ; call A with its frame at SP+2; the program's RTN returns to X 22
//	X 22                  ; FINISH, reached only if the program returns
func New(opts ...OptionFn) *Machine {
	m := &Machine{
		Mem:     NewMemory(),
		Streams: NewStreams(),
		PC:      ProgStart,
		log:     log.DefaultLogger(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.plantBootstrap()

	return m
}

// Start primes the working registers for execution once all source files have been assembled:
// SP is set to LOMEM, the first free address above all assembled code and data, and PC is reset
// to the bootstrap sequence at ProgStart. The driver calls Start after assembly completes and
// before Run.
func (m *Machine) Start() {
	m.SP = m.Mem.LoMem
	m.PC = ProgStart
}

// plantBootstrap writes the three-instruction startup sequence described in spec §4.4 at
// ProgStart, then advances the load pointer past it so that SP starts above the bootstrap code
// exactly as it would above any other assembled program.
func (m *Machine) plantBootstrap() {
	m.Mem.LoMem = ProgStart

	m.Mem.Emit(Word(Encode(FnL, FIBit, K01Start)))
	m.Mem.Emit(Word(Encode(FnK, 0, bootstrapCode2)))
	m.Mem.Emit(Word(Encode(FnX, 0, 22)))
}

func (m *Machine) String() string {
	return fmt.Sprintf("A: %s B: %s SP: %s PC: %s", m.A, m.B, m.SP, m.PC)
}
