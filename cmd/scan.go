package cmd

import (
	"context"
	"fmt"

	"github.com/viant/fluxor-organize/organize/rule"
)

// ScanCmd runs configured rules and prints one JSON line per match.
type ScanCmd struct {
	Rules []string `short:"r" long:"rule" description:"rule name to run (repeatable, default all)"`
}

func (c *ScanCmd) Execute(_ []string) error {
	if globalOptions == nil || globalOptions.Config == "" {
		return fmt.Errorf("scan requires -f/--config")
	}
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	defer svc.Shutdown(context.Background())
	return svc.Scan(context.Background(), func(match *rule.Match) error {
		return printJSON(match, false)
	}, c.Rules...)
}
