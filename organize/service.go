package organize

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/fluxor"
	"github.com/viant/fluxor-organize/organize/config"
	"github.com/viant/fluxor-organize/organize/pattern"
	"github.com/viant/fluxor-organize/organize/rule"
	"github.com/viant/fluxor/model/types"
	"github.com/viant/x"
)

// Service bundles configuration, the fluxor workflow engine and the compiled
// organize rules. Bootstrap steps live in bootstrap.go.
type Service struct {
	Workflow
	started   int32
	config    *config.Config
	fs        afs.Service
	logger    zerolog.Logger
	cache     *pattern.Cache
	cacheSize int
	rules     []*rule.Rule
}

type Workflow struct {
	Options        []fluxor.Option
	Runtime        *fluxor.Runtime
	Service        *fluxor.Service
	Extensions     []types.Service
	ExtensionTypes []*x.Type `json:"-"`
}

// WorkflowRuntime returns the underlying fluxor runtime.
func (s *Service) WorkflowRuntime() *fluxor.Runtime { return s.Workflow.Runtime }

// WorkflowService returns the fluxor service exposing all actions.
func (s *Service) WorkflowService() *fluxor.Service { return s.Workflow.Service }

// Config returns the effective configuration. Callers must treat it as
// read-only.
func (s *Service) Config() *config.Config { return s.config }

// PatternCache returns the cache shared by rules and the organize/name action.
func (s *Service) PatternCache() *pattern.Cache { return s.cache }

// Rules returns the compiled rules.
func (s *Service) Rules() []*rule.Rule { return s.rules }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a custom configuration instance. When omitted a zero value
// config is assumed.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithWorkflowOptions appends fluxor options applied after the defaults.
func WithWorkflowOptions(opts ...fluxor.Option) Option {
	return func(s *Service) {
		s.Workflow.Options = append(s.Workflow.Options, opts...)
	}
}

// WithExtensions registers additional fluxor services.
func WithExtensions(ext ...types.Service) Option {
	return func(s *Service) {
		s.Workflow.Extensions = append(s.Workflow.Extensions, ext...)
	}
}

// WithFS overrides the storage service used for rule locations.
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithLogger sets the service logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithPatternCacheSize sets the compiled pattern cache size.
func WithPatternCacheSize(size int) Option {
	return func(s *Service) {
		s.cacheSize = size
	}
}

// New constructs a service; see bootstrap.go for the initialisation steps.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// Start launches the fluxor runtime. Subsequent calls are ignored.
func (s *Service) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return nil
	}
	return s.Workflow.Runtime.Start(ctx)
}

// Shutdown stops the fluxor runtime. Calls after the first have no effect.
func (s *Service) Shutdown(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.started, 1, 2) {
		return nil
	}
	return s.Workflow.Runtime.Shutdown(ctx)
}
