package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/fluxor-organize/organize/filter/name"
	"github.com/viant/fluxor-organize/organize/pattern"
	"github.com/viant/fluxor-organize/organize/rule"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Builtins []string           `yaml:"builtins,omitempty" json:"builtins,omitempty"`
	Rules    []*Rule            `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// Rule is the rule file representation of rule.Rule. Filters is a list of
// single-key maps: the key selects the filter type, the value holds its
// settings (a bare string for positional settings).
type Rule struct {
	Name       string                   `yaml:"name,omitempty" json:"name,omitempty"`
	Locations  name.Values              `yaml:"locations" json:"locations"`
	Subfolders bool                     `yaml:"subfolders,omitempty" json:"subfolders,omitempty"`
	Targets    string                   `yaml:"targets,omitempty" json:"targets,omitempty"`
	FilterMode string                   `yaml:"filter_mode,omitempty" json:"filter_mode,omitempty"`
	Filters    []map[string]interface{} `yaml:"filters,omitempty" json:"filters,omitempty"`
}

// Load reads a YAML (or JSON) config from a local path or afs URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	return Parse(data)
}

// Parse decodes and validates config data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Init names anonymous rules after their position.
func (c *Config) Init() {
	for i, r := range c.Rules {
		if r != nil && r.Name == "" {
			r.Name = fmt.Sprintf("rule%d", i+1)
		}
	}
}

// Validate checks builtin patterns and rule structure; filter settings are
// checked when rules are built.
func (c *Config) Validate() error {
	for _, builtin := range c.Builtins {
		if _, err := pattern.Compile(builtin, true); err != nil {
			return fmt.Errorf("builtins: %w", err)
		}
	}
	for i, r := range c.Rules {
		if r == nil {
			return fmt.Errorf("rules[%d]: empty rule", i)
		}
		for j, settings := range r.Filters {
			if len(settings) != 1 {
				return fmt.Errorf("rule %q: filters[%d]: expected exactly one filter type, got %d", r.Name, j, len(settings))
			}
		}
	}
	return nil
}

// Lookup returns the named rule.
func (c *Config) Lookup(ruleName string) *Rule {
	for _, r := range c.Rules {
		if r.Name == ruleName {
			return r
		}
	}
	return nil
}

// Build compiles the rule; every filter shares cache.
func (r *Rule) Build(cache *pattern.Cache) (*rule.Rule, error) {
	result := &rule.Rule{
		Name:       r.Name,
		Locations:  []string(r.Locations),
		Subfolders: r.Subfolders,
		Targets:    r.Targets,
		FilterMode: r.FilterMode,
	}
	for i, settings := range r.Filters {
		for kind, value := range settings {
			f, err := rule.NewFilter(kind, value, cache)
			if err != nil {
				return nil, fmt.Errorf("rule %q: filters[%d]: %w", r.Name, i, err)
			}
			result.Filters = append(result.Filters, f)
		}
	}
	result.Init()
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

// BuildRules compiles every configured rule.
func (c *Config) BuildRules(cache *pattern.Cache) ([]*rule.Rule, error) {
	result := make([]*rule.Rule, 0, len(c.Rules))
	for _, r := range c.Rules {
		built, err := r.Build(cache)
		if err != nil {
			return nil, err
		}
		result = append(result, built)
	}
	return result, nil
}
