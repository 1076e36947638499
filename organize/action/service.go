package action

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/afs"
	"github.com/viant/fluxor-organize/internal/conv"
	"github.com/viant/fluxor-organize/organize/filter"
	"github.com/viant/fluxor-organize/organize/filter/name"
	"github.com/viant/fluxor-organize/organize/pattern"
	"github.com/viant/fluxor/model/types"
)

// Name is the fluxor service name.
const Name = "organize/name"

// Service implements types.Service for the name filter.
type Service struct {
	fs        afs.Service
	cache     *pattern.Cache
	sigs      types.Signatures
	executors map[string]types.Executable
}

// New creates the service; patterns are compiled through cache.
func New(fs afs.Service, cache *pattern.Cache) *Service {
	if fs == nil {
		fs = afs.New()
	}
	s := &Service{fs: fs, cache: cache, executors: map[string]types.Executable{}}

	type op struct {
		name string
		in   reflect.Type
		out  reflect.Type
		desc string
		call func(ctx context.Context, in interface{}) (interface{}, error)
	}
	ops := []op{
		{
			name: "match",
			in:   reflect.TypeOf(&MatchInput{}),
			out:  reflect.TypeOf(&MatchOutput{}),
			desc: "Test a name or location against a name pattern with optional startswith/contains/endswith literals",
			call: func(ctx context.Context, in interface{}) (interface{}, error) {
				return s.Match(ctx, in.(*MatchInput))
			},
		},
		{
			name: "compile",
			in:   reflect.TypeOf(&CompileInput{}),
			out:  reflect.TypeOf(&CompileOutput{}),
			desc: "Validate a name pattern and list its captures",
			call: func(ctx context.Context, in interface{}) (interface{}, error) {
				return s.Compile(ctx, in.(*CompileInput))
			},
		},
	}

	for _, o := range ops {
		opCopy := o
		s.executors[opCopy.name] = func(ctx context.Context, input, output interface{}) error {
			param := reflect.New(opCopy.in.Elem()).Interface()
			if err := conv.Convert(input, param); err != nil {
				return fmt.Errorf("%v.%v: invalid input: %w", Name, opCopy.name, err)
			}
			res, err := opCopy.call(ctx, param)
			if err != nil {
				return err
			}
			return conv.Assign(output, res)
		}
		s.sigs = append(s.sigs, types.Signature{
			Name:        opCopy.name,
			Description: opCopy.desc,
			Input:       opCopy.in,
			Output:      opCopy.out,
		})
	}
	return s
}

func (s *Service) Name() string { return Name }

func (s *Service) Methods() types.Signatures { return s.sigs }

func (s *Service) Method(name string) (types.Executable, error) {
	if exec, ok := s.executors[name]; ok {
		return exec, nil
	}
	return nil, types.NewMethodNotFoundError(name)
}

// Match evaluates input.
func (s *Service) Match(ctx context.Context, input *MatchInput) (*MatchOutput, error) {
	f, err := name.New(input.config(), name.WithCache(s.cache))
	if err != nil {
		return nil, err
	}
	if input.Location == "" {
		matched, payload := f.Criteria().Evaluate(input.Name)
		output := &MatchOutput{Matched: matched, Tested: input.Name}
		if matched {
			output.Updates = map[string]interface{}{name.FilterName: payload}
		}
		return output, nil
	}
	object, err := s.fs.Object(ctx, input.Location)
	if err != nil {
		return nil, fmt.Errorf("%v: location %v: %w", Name, input.Location, err)
	}
	result, err := f.Pipeline(ctx, &filter.Args{URL: input.Location, Entry: object})
	if err != nil {
		return nil, err
	}
	return &MatchOutput{Matched: result.Matches, Tested: name.Derive(object), Updates: result.Updates}, nil
}

// Compile validates input.Match.
func (s *Service) Compile(_ context.Context, input *CompileInput) (*CompileOutput, error) {
	caseSensitive := input.CaseSensitive == nil || *input.CaseSensitive
	compile := pattern.Compile
	if s.cache != nil {
		compile = s.cache.Compile
	}
	p, err := compile(input.Match, caseSensitive)
	if err != nil {
		return nil, err
	}
	output := &CompileOutput{Pattern: p.String(), CaseSensitive: p.CaseSensitive(), Captures: p.Names()}
	for _, token := range p.Tokens() {
		switch token.Kind {
		case pattern.Literal:
			output.Tokens = append(output.Tokens, fmt.Sprintf("literal(%q)", token.Text))
		case pattern.NamedWildcard:
			output.Tokens = append(output.Tokens, "named("+token.Text+")")
		default:
			output.Tokens = append(output.Tokens, "wildcard")
		}
	}
	return output, nil
}

var _ types.Service = (*Service)(nil)
