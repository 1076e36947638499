package rule

import (
	"fmt"
	"sort"

	"github.com/viant/fluxor-organize/organize/filter"
	"github.com/viant/fluxor-organize/organize/filter/name"
	"github.com/viant/fluxor-organize/organize/pattern"
)

// Factory builds a filter from rule file settings.
type Factory func(settings interface{}, cache *pattern.Cache) (filter.Filter, error)

var factories = map[string]Factory{
	name.FilterName: func(settings interface{}, cache *pattern.Cache) (filter.Filter, error) {
		cfg, err := name.DecodeConfig(settings)
		if err != nil {
			return nil, err
		}
		return name.New(cfg, name.WithCache(cache))
	},
}

// NewFilter builds a filter of the given type.
func NewFilter(kind string, settings interface{}, cache *pattern.Cache) (filter.Filter, error) {
	factory, ok := factories[kind]
	if !ok {
		return nil, fmt.Errorf("unknown filter %q, supported: %v", kind, FilterKinds())
	}
	return factory(settings, cache)
}

// FilterKinds lists supported filter types.
func FilterKinds() []string {
	kinds := make([]string, 0, len(factories))
	for kind := range factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
