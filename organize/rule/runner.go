package rule

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/fluxor-organize/organize/filter"
	"golang.org/x/sync/errgroup"
)

// Match is an entry that passed a rule.
type Match struct {
	Rule    string         `json:"rule"`
	URL     string         `json:"url"`
	IsDir   bool           `json:"isDir,omitempty"`
	Context filter.Context `json:"context"`
}

// Visitor receives matches. Calls are serialized.
type Visitor func(match *Match) error

// Runner lists rule locations and evaluates their entries.
type Runner struct {
	fs          afs.Service
	logger      zerolog.Logger
	concurrency int
}

// Option customises a Runner.
type Option func(*Runner)

// WithLogger sets the runner logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// WithConcurrency limits how many locations are listed in parallel.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewRunner creates a runner; a nil fs uses afs.New().
func NewRunner(fs afs.Service, opts ...Option) *Runner {
	if fs == nil {
		fs = afs.New()
	}
	r := &Runner{fs: fs, logger: zerolog.Nop(), concurrency: 4}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every entry of every rule location and calls visit for each
// match. Locations are processed concurrently; the first error stops the run.
func (r *Runner) Run(ctx context.Context, rule *Rule, visit Visitor) error {
	rule.Init()
	if err := rule.Validate(); err != nil {
		return err
	}
	var mux sync.Mutex
	serialized := func(match *Match) error {
		mux.Lock()
		defer mux.Unlock()
		return visit(match)
	}
	group, gCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.concurrency)
	for _, location := range rule.Locations {
		location := location
		group.Go(func() error {
			return r.runLocation(gCtx, rule, location, serialized)
		})
	}
	return group.Wait()
}

func (r *Runner) runLocation(ctx context.Context, rule *Rule, location string, visit Visitor) error {
	base, err := r.fs.Object(ctx, location)
	if err != nil {
		return fmt.Errorf("rule %q: location %v: %w", rule.Name, location, err)
	}
	if !base.IsDir() {
		return fmt.Errorf("rule %q: location %v is not a folder", rule.Name, location)
	}
	return r.walk(ctx, rule, base, visit)
}

func (r *Runner) walk(ctx context.Context, rule *Rule, parent storage.Object, visit Visitor) error {
	objects, err := r.fs.List(ctx, parent.URL())
	if err != nil {
		r.logger.Warn().Err(err).Str("rule", rule.Name).Str("url", parent.URL()).Msg("list failed")
		return fmt.Errorf("rule %q: list %v: %w", rule.Name, parent.URL(), err)
	}
	for _, object := range objects {
		if err := ctx.Err(); err != nil {
			return err
		}
		if sameURL(object.URL(), parent.URL()) {
			continue
		}
		if object.IsDir() && rule.Subfolders {
			if err := r.walk(ctx, rule, object, visit); err != nil {
				return err
			}
		}
		if object.IsDir() != (rule.Targets == TargetDirs) {
			continue
		}
		matched, fCtx, err := rule.Evaluate(ctx, &filter.Args{URL: object.URL(), Entry: object})
		if err != nil {
			return err
		}
		if !matched {
			r.logger.Debug().Str("rule", rule.Name).Str("url", object.URL()).Msg("skipped")
			continue
		}
		r.logger.Debug().Str("rule", rule.Name).Str("url", object.URL()).Msg("matched")
		if err := visit(&Match{Rule: rule.Name, URL: object.URL(), IsDir: object.IsDir(), Context: fCtx}); err != nil {
			return err
		}
	}
	return nil
}

func sameURL(a, b string) bool {
	return strings.TrimRight(a, "/") == strings.TrimRight(b, "/")
}
