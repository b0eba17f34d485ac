// Package cli contains the command-line interface: a small Commander that dispatches to
// sub-commands, defaulting to the run command when the first argument is not a known
// sub-command name (spec §6: positional arguments are INTCODE source files, not verbs).
package cli

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/smoynes/intcode/internal/log"
)

// Command represents a sub-command in the CLI. Each sub-command can have their own flags, config
// and action to perform.
type Command interface {
	// FlagSet returns a set of command options the command accepts.
	FlagSet() *flag.FlagSet

	// Description returns a brief description of the command's function.
	Description() string

	// Usage prints detailed command documentation.
	Usage(out io.Writer) error

	// Run executes the command with arguments. Command output should be written to |out|. It
	// returns a process exit code.
	Run(ctx context.Context, args []string, out io.Writer, logger *log.Logger) int
}

// Commander is a CLI command-runner that handles the life cycle of a CLI command execution.
type Commander struct {
	ctx context.Context
	log *log.Logger

	help     Command
	def      Command
	commands []Command
}

// New creates a new |Commander| that can start sub-commands.
func New(ctx context.Context) *Commander {
	return &Commander{
		ctx: ctx,
		log: log.DefaultLogger(),
	}
}

// Execute runs a command. An empty argument list runs the help command and exits 0. Otherwise,
// if the first argument names a registered sub-command it is dispatched to that command;
// otherwise the entire argument list is handed to the default command (normally run), since an
// INTCODE source file path is indistinguishable from an arbitrary word.
func (cli *Commander) Execute(args []string) int {
	if len(args) == 0 {
		cli.help.Run(cli.ctx, nil, os.Stdout, cli.log)
		return 0
	}

	found := cli.def
	rest := args
	matched := false

	for _, cmd := range cli.commands {
		if args[0] == cmd.FlagSet().Name() {
			found = cmd
			rest = args[1:]
			matched = true

			break
		}
	}

	if found == nil {
		found = cli.help
	}

	// The default (run) command owns -iPATH/-oPATH style flags glued to their value, which the
	// flag package cannot parse; it receives the raw, unparsed argument list instead.
	if !matched {
		return found.Run(cli.ctx, rest, os.Stdout, cli.log)
	}

	fs := found.FlagSet()
	if err := fs.Parse(rest); err != nil {
		cli.log.Error("parse error", "err", err)
		return 1
	}

	return found.Run(cli.ctx, fs.Args(), os.Stdout, cli.log)
}

// WithCommands adds a list of commands as sub-commands, matched against the first CLI argument
// by FlagSet().Name().
func (cli *Commander) WithCommands(cmds []Command) *Commander {
	cli.commands = append([]Command(nil), cmds...)
	return cli
}

// WithHelp configures the command run with no arguments.
func (cli *Commander) WithHelp(cmd Command) *Commander {
	cli.help = cmd
	return cli
}

// WithDefault configures the command run when the first argument does not name a registered
// sub-command.
func (cli *Commander) WithDefault(cmd Command) *Commander {
	cli.def = cmd
	return cli
}

// WithLogger configures the logger for the CLI. Logs are written to out; main passes os.Stderr to
// leave os.Stdout for program output.
func (cli *Commander) WithLogger(out *os.File) *Commander {
	logger := log.NewFormattedLogger(out)
	cli.log = logger

	log.SetDefault(logger)

	return cli
}

// Type aliases from std lib.
type (
	Flag    = flag.Flag
	FlagSet = flag.FlagSet
)
