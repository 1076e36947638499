package cmd

import (
	"fmt"
	"sort"

	serverproto "github.com/viant/mcp-protocol/server"
)

// ListToolsCmd prints registered tools, optionally filtered by a pattern such
// as "organize/*" or "system_*".
type ListToolsCmd struct {
	Args struct {
		Pattern string `positional-arg-name:"pattern"`
	} `positional-args:"yes"`
}

func (c *ListToolsCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	var tools serverproto.Tools
	if c.Args.Pattern == "" {
		tools = svc.Tools()
	} else if tools, err = svc.MatchTools(c.Args.Pattern); err != nil {
		return err
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Metadata.Name < tools[j].Metadata.Name })
	for _, t := range tools {
		desc := ""
		if t.Metadata.Description != nil {
			desc = *t.Metadata.Description
		}
		fmt.Fprintf(stdout, "%s\t%s\n", t.Metadata.Name, desc)
	}
	return nil
}
