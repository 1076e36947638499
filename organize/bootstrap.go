package organize

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/afs"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor-organize/organize/action"
	"github.com/viant/fluxor-organize/organize/config"
	"github.com/viant/fluxor-organize/organize/pattern"
	"github.com/viant/x"
)

// init orchestrates the bootstrap steps once all options were applied.
func (s *Service) init(ctx context.Context) error {
	s.initDefaults()

	if err := s.config.Validate(); err != nil {
		return err
	}

	cache, err := pattern.NewCache(s.cacheSize)
	if err != nil {
		return fmt.Errorf("pattern cache: %w", err)
	}
	s.cache = cache

	if s.rules, err = s.config.BuildRules(s.cache); err != nil {
		return fmt.Errorf("build rules: %w", err)
	}

	if err = s.initWorkflowService(ctx); err != nil {
		return err
	}
	s.logger.Debug().Int("rules", len(s.rules)).Strs("services", s.Workflow.Service.Actions().Services()).Msg("service initialised")
	return nil
}

// initDefaults applies fall-back values for optional dependencies.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if len(s.config.Builtins) == 0 {
		s.config.Builtins = append(s.config.Builtins, "*")
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
}

// initWorkflowService assembles fluxor options: builtin actions selected by
// pattern, the organize/name action and its types, then caller options.
func (s *Service) initWorkflowService(_ context.Context) error {
	builtins, err := resolveBuiltinServices(s.config.Builtins)
	if err != nil {
		return err
	}
	s.Workflow.Extensions = append(s.Workflow.Extensions, builtins...)
	s.Workflow.Extensions = append(s.Workflow.Extensions, action.New(s.fs, s.cache))

	for _, t := range []reflect.Type{
		reflect.TypeOf(action.MatchInput{}),
		reflect.TypeOf(action.MatchOutput{}),
		reflect.TypeOf(action.CompileInput{}),
		reflect.TypeOf(action.CompileOutput{}),
	} {
		s.Workflow.ExtensionTypes = append(s.Workflow.ExtensionTypes, x.NewType(t))
	}

	opts := []fluxor.Option{
		fluxor.WithExtensionTypes(s.Workflow.ExtensionTypes...),
		fluxor.WithExtensionServices(s.Workflow.Extensions...),
	}
	opts = append(opts, s.Workflow.Options...)

	s.Workflow.Service = fluxor.New(opts...)
	s.Workflow.Runtime = s.Workflow.Service.Runtime()
	return nil
}
