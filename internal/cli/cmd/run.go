package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/smoynes/intcode/internal/asm"
	"github.com/smoynes/intcode/internal/cli"
	"github.com/smoynes/intcode/internal/console"
	"github.com/smoynes/intcode/internal/log"
	"github.com/smoynes/intcode/internal/vm"
)

// Runner is the default command: assemble one or more INTCODE source files and run the result
// (spec §6).
func Runner() cli.Command {
	return &runner{log: log.DefaultLogger()}
}

type runner struct {
	log *log.Logger
}

func (runner) Description() string {
	return "assemble and run one or more INTCODE source files"
}

func (runner) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, `intcode [-iPATH] [-oPATH] file.imc ...

Assembles the given INTCODE source files, in order, into one contiguous memory
image, then runs it. -iPATH and -oPATH (no space before the path) redirect
standard input and standard output before assembly and before any file that
follows them on the command line.`)

	return err
}

// FlagSet exists only to satisfy cli.Command: the default command is not registered as a named
// sub-command, and -iPATH/-oPATH are glued to their value and parsed by hand in Run, not through
// flag.FlagSet.
func (runner) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("run", flag.ContinueOnError)
}

// Run implements the CLI contract of spec §6: INVALID OPTION for an unrecognised flag, NO ICFILE
// for a source file that fails to open, NO INPUT / NO OUTPUT for a failed -i / -o redirect. The
// process exit code is 0 on FINISH, v[0] on STOP, 1 on any fatal error.
func (r *runner) Run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) int {
	machine := vm.New(vm.WithLogger(logger))
	machine.Streams.SetStdout(stdout)

	redirectedInput := false

	var files []string

	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "-i"):
			path := a[2:]

			f, err := os.Open(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, "NO INPUT", path)
				return 1
			}

			machine.Streams.SetStdin(f)
			redirectedInput = true

		case strings.HasPrefix(a, "-o"):
			path := a[2:]

			f, err := os.Create(path)
			if err != nil {
				fmt.Fprintln(os.Stderr, "NO OUTPUT", path)
				return 1
			}

			machine.Streams.SetStdout(f)

		case strings.HasPrefix(a, "-"):
			fmt.Fprintln(os.Stderr, "INVALID OPTION", a)
			return 1

		default:
			files = append(files, a)
		}
	}

	if !redirectedInput {
		if raw, restore, ok := console.RawStdin(); ok {
			cancel := console.RestoreOnSignal(restore)
			defer cancel()
			defer restore()

			machine.Streams.SetStdin(raw)
		}
	}

	assembler := asm.New(machine.Mem, asm.WithLogger(logger))

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "NO ICFILE", path)
			return 1
		}

		err = assembler.Assemble(f)
		_ = f.Close()

		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	machine.Start()

	code, err := machine.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return int(code)
}
