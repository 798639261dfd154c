// Package statespace defines the option surface and sentinel errors for
// bounded breadth-first search over implicit state graphs.
package statespace

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrBoundExceeded indicates the pass bound was reached, or the
	// reachable space was exhausted, without generating the target.
	ErrBoundExceeded = errors.New("statespace: transition bound exceeded")

	// ErrNoTransitions indicates an empty transition collection.
	ErrNoTransitions = errors.New("statespace: no transitions supplied")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("statespace: invalid option supplied")
)

// DefaultMaxSteps bounds the search when WithMaxSteps is not supplied.
const DefaultMaxSteps = 10_000

// Transition maps a state to a successor state. Implementations must be
// pure: the argument is never mutated, and equal inputs produce equal
// outputs across calls.
type Transition[S any] interface {
	Apply(S) S
}

// TransitionFunc adapts a plain function to the Transition interface.
type TransitionFunc[S any] func(S) S

// Apply invokes f on s.
func (f TransitionFunc[S]) Apply(s S) S { return f(s) }

// Option configures search behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters that customize a search.
type Options struct {
	// Ctx carries cancellation and deadlines; checked once per pass.
	Ctx context.Context

	// MaxSteps bounds the number of completed passes.
	MaxSteps int

	// err captures the first invalid option for deferred reporting.
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Ctx:      context.Background()
//   - MaxSteps: DefaultMaxSteps
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxSteps: DefaultMaxSteps,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation or deadlines.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps bounds the search at n completed passes.
//
//	n ≥ 1: fail with ErrBoundExceeded once n passes have run fruitlessly
//	n < 1: invalid → search returns ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}
