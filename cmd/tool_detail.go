package cmd

import (
	"encoding/json"
	"fmt"
)

type toolDetail struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema interface{} `json:"inputSchema"`
}

// ToolCmd prints metadata and input schema for a single tool.
type ToolCmd struct {
	Name string `short:"n" long:"name" description:"tool name (service/method)" required:"yes"`
	JSON bool   `long:"json" description:"print result as JSON"`
}

func (c *ToolCmd) Execute(_ []string) error {
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}
	entry, err := svc.LookupTool(c.Name)
	if err != nil {
		return err
	}
	detail := &toolDetail{Name: entry.Metadata.Name, InputSchema: entry.Metadata.InputSchema}
	if entry.Metadata.Description != nil {
		detail.Description = *entry.Metadata.Description
	}

	if c.JSON {
		return printJSON(detail, true)
	}
	fmt.Fprintf(stdout, "Name : %s\n", detail.Name)
	fmt.Fprintf(stdout, "Desc : %s\n", detail.Description)
	js, _ := json.MarshalIndent(detail.InputSchema, "", "  ")
	fmt.Fprintf(stdout, "InputSchema:\n%s\n", string(js))
	return nil
}
