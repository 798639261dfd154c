// Package lincomb finds the cheapest non-negative integer combination of
// basis vectors that reproduces a target vector exactly.
//
// What
//
//   - Minimize returns coefficients c, one per basis vector, such that
//     Σᵢ c[i]·basis[i] equals the target componentwise and Σᵢ c[i] is as
//     small as possible.
//   - All data is non-negative: basis components, target components, and
//     the returned coefficients.
//   - The model is handed to the CP-SAT solver; only a proven optimum is
//     accepted as a result.
//
// Why
//
//   - Componentwise equality over non-negative integers is an integer
//     program, not a search problem: greedy and per-component reasoning
//     both miss combinations where vectors overlap on several components.
//   - Non-negativity gives every coefficient a finite domain for free:
//     once c[i]·basis[i][j] would overshoot target[j], no larger c[i] can
//     appear in any feasible solution.
//
// Usage
//
//	basis := [][]int64{
//	    {1, 0, 0},
//	    {0, 1, 1},
//	}
//	target := []int64{2, 3, 3}
//
//	counts, err := lincomb.Minimize(basis, target)
//	// counts == []int64{2, 3}
//
// Options
//
//   - DefaultOptions(): no wall-clock limit.
//   - WithMaxTime(d):   bound the solver's wall-clock time to d.
//
// Errors
//
//   - ErrDimensionMismatch if a basis vector's length differs from the
//     target's.
//   - ErrNegativeComponent if any basis or target component is negative.
//   - ErrInfeasible        if no combination reproduces the target.
//   - ErrBackend           if the solver stops without proving optimality
//     or infeasibility (for example when WithMaxTime expires).
//   - ErrOptionViolation   if an invalid Option is supplied.
package lincomb
