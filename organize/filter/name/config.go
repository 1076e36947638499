package name

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config holds the name filter settings as they appear in rule files.
type Config struct {
	Match         string `yaml:"match" json:"match" mapstructure:"match" description:"pattern, e.g. {stem}_{year}"`
	StartsWith    Values `yaml:"startswith,omitempty" json:"startswith,omitempty" mapstructure:"startswith" description:"name must start with one of the values"`
	Contains      Values `yaml:"contains,omitempty" json:"contains,omitempty" mapstructure:"contains" description:"name must contain one of the values"`
	EndsWith      Values `yaml:"endswith,omitempty" json:"endswith,omitempty" mapstructure:"endswith" description:"name must end with one of the values"`
	CaseSensitive *bool  `yaml:"case_sensitive,omitempty" json:"case_sensitive,omitempty" mapstructure:"case_sensitive" description:"defaults to true"`
}

// IsCaseSensitive returns the effective case sensitivity.
func (c *Config) IsCaseSensitive() bool {
	return c.CaseSensitive == nil || *c.CaseSensitive
}

// Validate checks required settings.
func (c *Config) Validate() error {
	if c.Match == "" {
		return fmt.Errorf("name filter: match is required")
	}
	return nil
}

// DecodeConfig builds a Config from rule file settings. A bare string is
// taken as the match pattern; a map is decoded field by field and unknown
// keys are rejected.
func DecodeConfig(settings interface{}) (*Config, error) {
	cfg := &Config{}
	switch actual := settings.(type) {
	case nil:
		return nil, fmt.Errorf("name filter: missing settings")
	case string:
		cfg.Match = actual
	case *Config:
		cfg = actual
	default:
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook:  valuesHook,
			ErrorUnused: true,
			Result:      cfg,
		})
		if err != nil {
			return nil, err
		}
		if err = decoder.Decode(settings); err != nil {
			return nil, fmt.Errorf("name filter: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
