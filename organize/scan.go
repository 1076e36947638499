package organize

import (
	"context"
	"fmt"

	"github.com/viant/fluxor-organize/organize/rule"
)

// Scan runs the named rules (all rules when none is given) and calls visit
// for every match.
func (s *Service) Scan(ctx context.Context, visit rule.Visitor, ruleNames ...string) error {
	selected := s.rules
	if len(ruleNames) > 0 {
		selected = nil
		for _, ruleName := range ruleNames {
			r := s.lookupRule(ruleName)
			if r == nil {
				return fmt.Errorf("rule %q not found", ruleName)
			}
			selected = append(selected, r)
		}
	}
	runner := rule.NewRunner(s.fs, rule.WithLogger(s.logger))
	for _, r := range selected {
		s.logger.Info().Str("rule", r.Name).Strs("locations", r.Locations).Msg("running rule")
		if err := runner.Run(ctx, r, visit); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) lookupRule(name string) *rule.Rule {
	for _, r := range s.rules {
		if r.Name == name {
			return r
		}
	}
	return nil
}
