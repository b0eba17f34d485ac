package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/smoynes/intcode/internal/asm"
	"github.com/smoynes/intcode/internal/cli"
	"github.com/smoynes/intcode/internal/encoding"
	"github.com/smoynes/intcode/internal/log"
	"github.com/smoynes/intcode/internal/vm"
)

// Assembler is the "asm" sub-command: it assembles source files without running them and dumps
// the resulting memory image, for inspecting or diffing assembler output directly.
//
//	intcode asm -o out.hex FILE.imc
func Assembler() cli.Command {
	return &assembler{log: log.DefaultLogger()}
}

type assembler struct {
	debug bool
	out   string

	log *log.Logger
}

func (assembler) Description() string {
	return "assemble source files and dump the resulting memory image"
}

func (assembler) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `asm [-o file.hex] file.imc ...

Assembles source files, in order, into one contiguous memory image and writes
the assembled range (ProgStart up to, not including, the first free word) to -o in an
Intel-Hex-style encoding, without running the program. With no -o, the dump
goes to standard output.`)

	return err
}

func (a *assembler) FlagSet() *cli.FlagSet {
	fs := flag.NewFlagSet("asm", flag.ContinueOnError)
	fs.BoolVar(&a.debug, "debug", false, "enable debug logging")
	fs.StringVar(&a.out, "o", "", "write assembled memory to `file` in hex encoding")

	return fs
}

func (a *assembler) Run(_ context.Context, args []string, stdout io.Writer, logger *log.Logger) int {
	if a.debug {
		log.LogLevel.Set(log.Debug)
	}

	mem := vm.NewMemory()
	assembler := asm.New(mem, asm.WithLogger(logger))

	for _, fn := range args {
		f, err := os.Open(fn)
		if err != nil {
			logger.Error("NO ICFILE", "file", fn, "err", err)
			return 1
		}

		err = assembler.Assemble(f)
		_ = f.Close()

		if err != nil {
			logger.Error("assemble error", "file", fn, "err", err)
			return 1
		}
	}

	logger.Debug("assembled", "lomem", mem.LoMem)

	origin := vm.Word(vm.ProgStart)

	words := make([]vm.Word, 0, int(mem.LoMem)-vm.ProgStart)
	for addr := origin; addr < mem.LoMem; addr++ {
		words = append(words, mem.Word(addr))
	}

	// A record's length field is one byte, so the range is split into records of at most 127
	// words.
	var records []encoding.Record
	for len(words) > 127 {
		records = append(records, encoding.Record{Orig: origin, Code: words[:127]})
		origin += 127
		words = words[127:]
	}

	records = append(records, encoding.Record{Orig: origin, Code: words})

	enc := encoding.HexEncoding{
		Code: records,
	}

	text, err := enc.MarshalText()
	if err != nil {
		logger.Error("encode error", "err", err)
		return 1
	}

	out := io.Writer(stdout)

	if a.out != "" {
		f, err := os.Create(a.out)
		if err != nil {
			logger.Error("NO OUTPUT", "file", a.out, "err", err)
			return 1
		}
		defer f.Close()

		out = f
	}

	if _, err := out.Write(text); err != nil {
		logger.Error("I/O error", "err", err)
		return 1
	}

	return 0
}
