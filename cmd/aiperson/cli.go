package aiperson

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/jessevdk/go-flags"
)

// Run parses flags and executes the selected command; without a command the
// interactive menu starts.
func Run(args []string) {
	opts := &Options{}
	var first string
	if len(args) > 0 {
		first = args[0]
	}
	opts.Init(first)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	parser.CommandHandler = func(command flags.Commander, cmdArgs []string) error {
		closeLog := setup(opts)
		defer closeLog()
		if command == nil {
			return (&MenuCmd{}).Run(ctx)
		}
		if runner, ok := command.(runner); ok {
			return runner.Run(ctx)
		}
		return command.Execute(cmdArgs)
	}
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			fmt.Println(flagsErr.Message)
			return
		}
		log.Fatalf("%v", err)
	}
}

// runner is implemented by commands that honour the interrupt context.
type runner interface {
	Run(ctx context.Context) error
}

// RunWithCommands is kept for symmetry with scy CLI.
func RunWithCommands(args []string) {
	Run(args)
}
