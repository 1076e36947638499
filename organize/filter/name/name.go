package name

import (
	"context"
	"fmt"

	"github.com/viant/fluxor-organize/organize/filter"
	"github.com/viant/fluxor-organize/organize/pattern"
)

// FilterName is the filter type key and the context key updates are
// published under.
const FilterName = "name"

// Filter is the configured name filter.
type Filter struct {
	config   *Config
	criteria *Criteria
	compile  func(string, bool) (*pattern.Pattern, error)
}

// Option customises a Filter.
type Option func(*Filter)

// WithCache compiles the pattern through a shared cache.
func WithCache(cache *pattern.Cache) Option {
	return func(f *Filter) {
		if cache != nil {
			f.compile = cache.Compile
		}
	}
}

// New compiles cfg into a Filter. Pattern syntax errors surface here.
func New(cfg *Config, opts ...Option) (*Filter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("name filter: missing config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Filter{config: cfg, compile: pattern.Compile}
	for _, opt := range opts {
		opt(f)
	}
	p, err := f.compile(cfg.Match, cfg.IsCaseSensitive())
	if err != nil {
		return nil, fmt.Errorf("name filter: %w", err)
	}
	f.criteria = NewCriteria(p, cfg.StartsWith, cfg.Contains, cfg.EndsWith)
	return f, nil
}

// Name returns the filter type key.
func (f *Filter) Name() string { return FilterName }

// Config returns the filter settings.
func (f *Filter) Config() *Config { return f.config }

// Criteria returns the compiled criteria.
func (f *Filter) Criteria() *Criteria { return f.criteria }

// Pipeline derives the name under test from args and evaluates it.
func (f *Filter) Pipeline(_ context.Context, args *filter.Args) (*filter.Result, error) {
	if args == nil {
		return nil, fmt.Errorf("name filter: missing args")
	}
	entry := args.Entry
	if entry == nil {
		base := filter.BaseName(args.URL)
		if base == "" {
			return nil, fmt.Errorf("name filter: missing entry")
		}
		entry = filter.NewEntry(base, false)
	}
	matched, payload := f.criteria.Evaluate(Derive(entry))
	result := &filter.Result{Matches: matched}
	if matched {
		result.Updates = map[string]interface{}{FilterName: payload}
	}
	return result, nil
}

// Derive returns the name under test: the base name of a directory or the
// stem of a file. A file without a stem (".bashrc") is tested by its
// extension.
func Derive(entry filter.Entry) string {
	if entry.IsDir() {
		return entry.Name()
	}
	stem, ext := filter.SplitExt(entry.Name())
	if stem == "" {
		return ext
	}
	return stem
}

var _ filter.Filter = (*Filter)(nil)
