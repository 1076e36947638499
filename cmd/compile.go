package cmd

import (
	"context"

	"github.com/viant/fluxor-organize/organize/action"
)

// CompileCmd validates a pattern and prints its tokens and capture names.
type CompileCmd struct {
	IgnoreCase bool `short:"i" long:"ignore-case" description:"case-insensitive comparison"`
	Args       struct {
		Pattern string `positional-arg-name:"pattern" required:"yes"`
	} `positional-args:"yes"`
}

func (c *CompileCmd) Execute(_ []string) error {
	caseSensitive := !c.IgnoreCase
	output, err := action.New(nil, nil).Compile(context.Background(), &action.CompileInput{
		Match:         c.Args.Pattern,
		CaseSensitive: &caseSensitive,
	})
	if err != nil {
		return err
	}
	return printJSON(output, true)
}
