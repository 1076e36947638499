package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/viant/fluxor-organize/internal/logging"
	"github.com/viant/fluxor-organize/organize"
	"github.com/viant/fluxor-organize/organize/config"
)

var (
	globalOptions *Options
	stdout        io.Writer = os.Stdout

	svcOnce sync.Once
	svcInst *organize.Service
	svcErr  error
)

// setOptions remembers the root options; go-flags populates them before any
// command executes.
func setOptions(opts *Options) {
	globalOptions = opts
	svcOnce = sync.Once{}
	svcInst, svcErr = nil, nil
}

func logger(module string) zerolog.Logger {
	level, pretty := "warn", false
	if globalOptions != nil {
		level, pretty = globalOptions.LogLevel, globalOptions.Pretty
	}
	return logging.New(level, module, pretty)
}

// serviceSingleton initialises an organize.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*organize.Service, error) {
	svcOnce.Do(func() {
		ctx := context.Background()
		var cfg *config.Config
		if globalOptions != nil && globalOptions.Config != "" {
			cfg, svcErr = config.Load(ctx, globalOptions.Config)
			if svcErr != nil {
				return
			}
		}
		svcInst, svcErr = organize.New(ctx, organize.WithConfig(cfg), organize.WithLogger(logger("service")))
		if svcErr == nil {
			svcErr = svcInst.Start(ctx)
		}
	})
	return svcInst, svcErr
}

// printJSON writes v as one JSON line, or indented when pretty is set.
func printJSON(v interface{}, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}
