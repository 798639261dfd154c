// Package lincomb defines the option surface and sentinel errors for the
// minimal-combination solver.
package lincomb

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for solve execution.
var (
	// ErrDimensionMismatch indicates a basis vector whose length differs
	// from the target's.
	ErrDimensionMismatch = errors.New("lincomb: basis vector dimension mismatch")

	// ErrNegativeComponent indicates a negative basis or target component.
	ErrNegativeComponent = errors.New("lincomb: negative component")

	// ErrInfeasible indicates no non-negative integer combination of the
	// basis vectors equals the target.
	ErrInfeasible = errors.New("lincomb: no feasible combination")

	// ErrBackend indicates the solver stopped without proving optimality
	// or infeasibility.
	ErrBackend = errors.New("lincomb: solver returned no verdict")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("lincomb: invalid option supplied")
)

// Option configures solving via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Minimize is invoked.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	// MaxTime, when positive, bounds the solver's wall-clock time.
	// Zero means run until a verdict is proven.
	MaxTime time.Duration

	// err captures the first invalid option for deferred reporting.
	err error
}

// DefaultOptions returns Options with no time limit.
func DefaultOptions() Options {
	return Options{MaxTime: 0, err: nil}
}

// WithMaxTime bounds the solver's wall-clock time. When the limit expires
// before optimality is proven, Minimize fails with ErrBackend.
//
//	d > 0: limit the solve to d
//	d ≤ 0: invalid → Minimize returns ErrOptionViolation
func WithMaxTime(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: MaxTime must be positive (%v)", ErrOptionViolation, d)
			return
		}
		o.MaxTime = d
	}
}
