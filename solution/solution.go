// Package solution adapts puzzle solutions to the benchmark harness and
// keeps them addressable by name.
package solution

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/weiihann/ferriself/bench"
	"github.com/weiihann/ferriself/input"
)

// ErrUnknownSolution is returned by Lookup for unregistered names.
var ErrUnknownSolution = errors.New("unknown solution")

// Solution is a named, benchmarkable function of the input.
type Solution interface {
	Name() string
	// Bench runs the harness over the solution. The input view the
	// solution needs is taken before any timing starts.
	Bench(ctx context.Context, in *input.Input, cfg bench.Config) (*bench.Result, error)
}

// FromBytes wraps a solution that reads the raw input bytes.
func FromBytes[T any](name string, fn func([]byte) T) Solution {
	return bytesSolution[T]{name: name, fn: fn}
}

// FromText wraps a solution that reads the input as text. Bench fails with
// input.ErrInvalidText before timing when the input is not valid UTF-8.
func FromText[T any](name string, fn func(string) T) Solution {
	return textSolution[T]{name: name, fn: fn}
}

type bytesSolution[T any] struct {
	name string
	fn   func([]byte) T
}

func (s bytesSolution[T]) Name() string { return s.name }

func (s bytesSolution[T]) Bench(
	ctx context.Context,
	in *input.Input,
	cfg bench.Config,
) (*bench.Result, error) {
	return bench.Run(ctx, in.Bytes(), s.fn, cfg)
}

type textSolution[T any] struct {
	name string
	fn   func(string) T
}

func (s textSolution[T]) Name() string { return s.name }

func (s textSolution[T]) Bench(
	ctx context.Context,
	in *input.Input,
	cfg bench.Config,
) (*bench.Result, error) {
	text, err := in.Text()
	if err != nil {
		return nil, fmt.Errorf("solution %s: %w", s.name, err)
	}

	return bench.Run(ctx, text, s.fn, cfg)
}

// Registry maps names to solutions.
type Registry struct {
	byName map[string]Solution
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Solution)}
}

// Register adds s. Names must be unique and non-empty.
func (r *Registry) Register(s Solution) error {
	name := s.Name()
	if name == "" {
		return errors.New("register solution: empty name")
	}

	if _, ok := r.byName[name]; ok {
		return fmt.Errorf("register solution: %q already registered", name)
	}

	r.byName[name] = s

	return nil
}

// Lookup returns the solution registered under name.
func (r *Registry) Lookup(name string) (Solution, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownSolution, name, r.Names())
	}

	return s, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
