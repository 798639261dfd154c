package lincomb

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"google.golang.org/protobuf/proto"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
)

// Minimize finds non-negative integers c, one per basis vector, such that
// Σᵢ c[i]·basis[i] equals target componentwise and Σᵢ c[i] is minimal.
// Coefficients are returned in basis order. Ties between distinct optimal
// combinations are broken arbitrarily; the total is always the same.
func Minimize(basis [][]int64, target []int64, opts ...Option) ([]int64, error) {
	// 1) Fold options over defaults; surface deferred validation errors.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2) Fail fast on malformed input, before any model is built.
	if err := validate(basis, target); err != nil {
		return nil, err
	}

	// 3) Build the model: one bounded count per basis vector, one equality
	//    row per target component, minimize the sum of counts.
	builder := cpmodel.NewCpModelBuilder()

	counts := make([]cpmodel.IntVar, len(basis))
	for i, vec := range basis {
		counts[i] = builder.NewIntVar(0, upperBound(vec, target))
	}

	for j, want := range target {
		row := cpmodel.NewLinearExpr()
		for i, vec := range basis {
			if vec[j] != 0 {
				row.AddTerm(counts[i], vec[j])
			}
		}
		builder.AddEquality(row, cpmodel.NewConstant(want))
	}

	objective := cpmodel.NewLinearExpr()
	for _, c := range counts {
		objective.Add(c)
	}
	builder.Minimize(objective)

	m, err := builder.Model()
	if err != nil {
		return nil, fmt.Errorf("lincomb: building model: %w", err)
	}

	// 4) Solve and map the verdict onto the package's error surface.
	response, err := cpmodel.SolveCpModelWithParameters(m, o.parameters())
	if err != nil {
		return nil, fmt.Errorf("lincomb: solving: %w", err)
	}

	switch response.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL:
		// Proven minimal; extract below.
	case cmpb.CpSolverStatus_INFEASIBLE:
		return nil, ErrInfeasible
	default:
		// FEASIBLE and UNKNOWN both mean minimality was not proven.
		return nil, fmt.Errorf("%w: status %s", ErrBackend, response.GetStatus())
	}

	solution := response.GetSolution()
	result := make([]int64, len(counts))
	for i, c := range counts {
		result[i] = solution[c.Index()]
	}

	return result, nil
}

// validate rejects dimension and sign violations.
func validate(basis [][]int64, target []int64) error {
	for j, t := range target {
		if t < 0 {
			return fmt.Errorf("%w: target[%d] = %d", ErrNegativeComponent, j, t)
		}
	}
	for i, vec := range basis {
		if len(vec) != len(target) {
			return fmt.Errorf("%w: basis[%d] has %d components, target has %d",
				ErrDimensionMismatch, i, len(vec), len(target))
		}
		for j, v := range vec {
			if v < 0 {
				return fmt.Errorf("%w: basis[%d][%d] = %d", ErrNegativeComponent, i, j, v)
			}
		}
	}

	return nil
}

// upperBound returns the largest useful coefficient for vec: contributions
// are non-negative, so any vec[j] > 0 caps the count at target[j]/vec[j].
// An all-zero vector contributes nothing and is pinned to 0.
func upperBound(vec, target []int64) int64 {
	var bound int64
	first := true
	for j, v := range vec {
		if v == 0 {
			continue
		}
		limit := target[j] / v
		if first || limit < bound {
			bound = limit
			first = false
		}
	}
	if first {
		return 0
	}

	return bound
}

// parameters renders the options as solver parameters. Search-progress
// logging stays off; callers own their stdout.
func (o Options) parameters() *sppb.SatParameters {
	params := &sppb.SatParameters{
		LogSearchProgress: proto.Bool(false),
	}
	if o.MaxTime > 0 {
		params.MaxTimeInSeconds = proto.Float64(o.MaxTime.Seconds())
	}

	return params
}
