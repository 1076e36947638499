package cmd

import (
	"context"

	"github.com/viant/afs"
	"github.com/viant/fluxor-organize/organize/action"
	"github.com/viant/fluxor-organize/organize/filter/name"
)

// MatchCmd evaluates names (or locations with --location) against a name
// filter built from flags.
type MatchCmd struct {
	Pattern    string   `short:"p" long:"pattern" description:"pattern with * and {capture} wildcards" required:"yes"`
	StartsWith []string `long:"startswith" description:"name must start with one of the values (repeatable)"`
	Contains   []string `long:"contains" description:"name must contain one of the values (repeatable)"`
	EndsWith   []string `long:"endswith" description:"name must end with one of the values (repeatable)"`
	IgnoreCase bool     `short:"i" long:"ignore-case" description:"case-insensitive comparison"`
	Location   bool     `short:"l" long:"location" description:"treat arguments as locations and derive the name (stem for files)"`
	JSON       bool     `long:"json" description:"indent JSON output"`
	Args       struct {
		Names []string `positional-arg-name:"name" required:"1"`
	} `positional-args:"yes"`
}

type matchResult struct {
	Input string `json:"input"`
	*action.MatchOutput
}

func (c *MatchCmd) Execute(_ []string) error {
	ctx := context.Background()
	service := action.New(afs.New(), nil)
	caseSensitive := !c.IgnoreCase
	for _, arg := range c.Args.Names {
		input := &action.MatchInput{
			Match:         c.Pattern,
			StartsWith:    name.Values(c.StartsWith),
			Contains:      name.Values(c.Contains),
			EndsWith:      name.Values(c.EndsWith),
			CaseSensitive: &caseSensitive,
		}
		if c.Location {
			input.Location = arg
		} else {
			input.Name = arg
		}
		output, err := service.Match(ctx, input)
		if err != nil {
			return err
		}
		if err = printJSON(&matchResult{Input: arg, MatchOutput: output}, c.JSON); err != nil {
			return err
		}
	}
	return nil
}
