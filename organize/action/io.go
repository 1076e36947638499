package action

import "github.com/viant/fluxor-organize/organize/filter/name"

// MatchInput describes one evaluation. Either Name (tested as is) or
// Location (name derived from the entry, stem for files) must be set.
type MatchInput struct {
	Name          string      `json:"name,omitempty" description:"name under test, used as is"`
	Location      string      `json:"location,omitempty" description:"entry URL, the tested name is derived from it"`
	Match         string      `json:"match" description:"pattern with * and {capture} wildcards"`
	StartsWith    name.Values `json:"startswith,omitempty" description:"name must start with one of the values"`
	Contains      name.Values `json:"contains,omitempty" description:"name must contain one of the values"`
	EndsWith      name.Values `json:"endswith,omitempty" description:"name must end with one of the values"`
	CaseSensitive *bool       `json:"case_sensitive,omitempty" description:"defaults to true"`
}

func (i *MatchInput) config() *name.Config {
	return &name.Config{
		Match:         i.Match,
		StartsWith:    i.StartsWith,
		Contains:      i.Contains,
		EndsWith:      i.EndsWith,
		CaseSensitive: i.CaseSensitive,
	}
}

// MatchOutput reports the evaluation result.
type MatchOutput struct {
	Matched bool                   `json:"matched"`
	Tested  string                 `json:"tested"`
	Updates map[string]interface{} `json:"updates,omitempty"`
}

// CompileInput names a pattern to validate.
type CompileInput struct {
	Match         string `json:"match" description:"pattern with * and {capture} wildcards"`
	CaseSensitive *bool  `json:"case_sensitive,omitempty" description:"defaults to true"`
}

// CompileOutput describes a valid pattern.
type CompileOutput struct {
	Pattern       string   `json:"pattern"`
	CaseSensitive bool     `json:"caseSensitive"`
	Captures      []string `json:"captures,omitempty"`
	Tokens        []string `json:"tokens"`
}
