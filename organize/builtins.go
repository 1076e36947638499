package organize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/fluxor-organize/organize/pattern"
	"github.com/viant/fluxor/model/types"

	nop "github.com/viant/fluxor/service/action/nop"
	printer "github.com/viant/fluxor/service/action/printer"
	secret "github.com/viant/fluxor/service/action/system/secret"
	storage "github.com/viant/fluxor/service/action/system/storage"
	exec "github.com/viant/fluxor/service/action/system/exec"
)

// builtinFactories lists fluxor action services that can be instantiated
// without external dependencies, keyed by service name.
var builtinFactories = map[string]func() types.Service{
	"nop":            func() types.Service { return nop.New() },
	"printer":        func() types.Service { return printer.New() },
	"system/exec":    func() types.Service { return exec.New() },
	"system/storage": func() types.Service { return storage.New() },
	"system/secret":  func() types.Service { return secret.New() },
}

// resolveBuiltinServices instantiates builtin services whose name matches
// any of the patterns. A pattern ending with "/" selects the whole
// namespace ("system/" is the same as "system/*").
func resolveBuiltinServices(patterns []string) ([]types.Service, error) {
	var matchers []*pattern.Pattern
	for _, p := range patterns {
		if strings.HasSuffix(p, "/") {
			p += "*"
		}
		compiled, err := pattern.Compile(p, true)
		if err != nil {
			return nil, fmt.Errorf("builtins: %w", err)
		}
		matchers = append(matchers, compiled)
	}

	names := make([]string, 0, len(builtinFactories))
	for name := range builtinFactories {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []types.Service
	for _, name := range names {
		for _, matcher := range matchers {
			if matcher.Test(name) {
				out = append(out, builtinFactories[name]())
				break
			}
		}
	}
	return out, nil
}
