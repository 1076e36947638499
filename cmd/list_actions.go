package cmd

import (
	"fmt"
	"sort"

	"github.com/viant/fluxor-organize/organize/action"
	"github.com/viant/fluxor-organize/organize/pattern"
)

// ListActionsCmd prints fluxor services and their methods. An optional
// pattern such as "system/*" selects services by name; the name filter
// service is flagged so it stands out among builtins.
type ListActionsCmd struct {
	Args struct {
		Pattern string `positional-arg-name:"pattern"`
	} `positional-args:"yes"`
}

func (c *ListActionsCmd) Execute(_ []string) error {
	selector := "*"
	if c.Args.Pattern != "" {
		selector = c.Args.Pattern
	}
	matcher, err := pattern.Compile(selector, true)
	if err != nil {
		return err
	}
	svc, err := serviceSingleton()
	if err != nil {
		return err
	}

	actions := svc.WorkflowService().Actions()
	names := actions.Services()
	sort.Strings(names)
	for _, name := range names {
		service := actions.Lookup(name)
		if service == nil || !matcher.Test(name) {
			continue
		}
		if name == action.Name {
			fmt.Fprintf(stdout, "%s\t[name filter]\n", name)
		} else {
			fmt.Fprintln(stdout, name)
		}
		sigs := service.Methods()
		sort.Slice(sigs, func(i, j int) bool { return sigs[i].Name < sigs[j].Name })
		for _, sig := range sigs {
			fmt.Fprintf(stdout, "  %s\t%s\n", sig.Name, sig.Description)
		}
	}
	return nil
}
