package rule

import (
	"context"
	"fmt"

	"github.com/viant/fluxor-organize/organize/filter"
)

// Filter modes.
const (
	ModeAll  = "all"
	ModeAny  = "any"
	ModeNone = "none"
)

// Targets.
const (
	TargetFiles = "files"
	TargetDirs  = "dirs"
)

// Rule is a compiled rule.
type Rule struct {
	Name       string
	Locations  []string
	Subfolders bool
	Targets    string
	FilterMode string
	Filters    []filter.Filter
}

// Init applies defaults.
func (r *Rule) Init() {
	if r.Targets == "" {
		r.Targets = TargetFiles
	}
	if r.FilterMode == "" {
		r.FilterMode = ModeAll
	}
}

// Validate checks the rule after Init.
func (r *Rule) Validate() error {
	switch r.Targets {
	case TargetFiles, TargetDirs:
	default:
		return fmt.Errorf("rule %q: invalid targets %q", r.Name, r.Targets)
	}
	switch r.FilterMode {
	case ModeAll, ModeAny, ModeNone:
	default:
		return fmt.Errorf("rule %q: invalid filter_mode %q", r.Name, r.FilterMode)
	}
	if len(r.Locations) == 0 {
		return fmt.Errorf("rule %q: no locations", r.Name)
	}
	return nil
}

// Evaluate runs the rule filters for one entry and combines them by filter
// mode. Updates of every matching filter are merged into the returned
// context.
func (r *Rule) Evaluate(ctx context.Context, args *filter.Args) (bool, filter.Context, error) {
	fCtx := filter.Context{}
	matches := 0
	for _, f := range r.Filters {
		result, err := f.Pipeline(ctx, args)
		if err != nil {
			return false, nil, fmt.Errorf("rule %q: filter %s: %w", r.Name, f.Name(), err)
		}
		if result.Matches {
			matches++
			fCtx.Merge(result)
		}
		switch r.FilterMode {
		case ModeAll:
			if !result.Matches {
				return false, nil, nil
			}
		case ModeAny:
			if result.Matches {
				return true, fCtx, nil
			}
		case ModeNone:
			if result.Matches {
				return false, nil, nil
			}
		}
	}
	switch r.FilterMode {
	case ModeAny:
		return matches > 0 || len(r.Filters) == 0, fCtx, nil
	case ModeNone:
		return true, filter.Context{}, nil
	}
	return true, fCtx, nil
}
