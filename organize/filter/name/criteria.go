package name

import (
	"strings"

	"github.com/viant/fluxor-organize/organize/pattern"
)

// Criteria combines a pattern with startswith/contains/endswith literal
// groups. Every group must pass; a literal group passes when any of its
// values does. Criteria is immutable and safe for concurrent use.
type Criteria struct {
	pattern       *pattern.Pattern
	startsWith    []string
	contains      []string
	endsWith      []string
	caseSensitive bool
}

// NewCriteria builds criteria around a compiled pattern; literal groups
// follow the pattern's case sensitivity.
func NewCriteria(p *pattern.Pattern, startsWith, contains, endsWith Values) *Criteria {
	caseSensitive := p.CaseSensitive()
	return &Criteria{
		pattern:       p,
		startsWith:    startsWith.normalize(caseSensitive),
		contains:      contains.normalize(caseSensitive),
		endsWith:      endsWith.normalize(caseSensitive),
		caseSensitive: caseSensitive,
	}
}

// Pattern returns the compiled pattern.
func (c *Criteria) Pattern() *pattern.Pattern { return c.pattern }

// Evaluate reports whether name satisfies every group. When it does the
// payload is the ordered *pattern.Captures or, if nothing was captured, name
// itself. The payload is nil when name does not match.
func (c *Criteria) Evaluate(name string) (bool, interface{}) {
	subject := name
	if !c.caseSensitive {
		subject = pattern.Fold(name)
	}
	captures, ok := c.pattern.Match(name)
	if !ok ||
		!anyOf(c.contains, func(v string) bool { return strings.Contains(subject, v) }) ||
		!anyOf(c.startsWith, func(v string) bool { return strings.HasPrefix(subject, v) }) ||
		!anyOf(c.endsWith, func(v string) bool { return strings.HasSuffix(subject, v) }) {
		return false, nil
	}
	if captures.Len() > 0 {
		return true, captures
	}
	return true, name
}

func anyOf(values []string, fn func(string) bool) bool {
	for _, v := range values {
		if fn(v) {
			return true
		}
	}
	return false
}
