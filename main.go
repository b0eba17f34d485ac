// Command intcode assembles and runs INTCODE, the 16-bit stack-machine intermediate
// representation historically emitted by BCPL compilers.
package main

import (
	"context"
	"os"

	"github.com/smoynes/intcode/internal/cli"
	"github.com/smoynes/intcode/internal/cli/cmd"
)

var commands = []cli.Command{
	cmd.Assembler(),
}

func main() {
	result :=
		cli.New(context.Background()).
			WithLogger(os.Stderr).
			WithCommands(commands).
			WithDefault(cmd.Runner()).
			WithHelp(cmd.Help(commands)).
			Execute(os.Args[1:])

	os.Exit(result)
}
