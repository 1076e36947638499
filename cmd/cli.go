package cmd

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Run is the CLI entry point; it is kept outside package main so that tests
// can drive commands.
func Run(args []string) {
	if err := RunWithArgs(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// RunWithArgs parses args and executes the selected command.
func RunWithArgs(args []string) error {
	opts := &Options{}
	var first string
	if len(args) > 0 {
		first = args[0]
	}
	opts.Init(first)
	setOptions(opts)

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}
