// Package statespace provides a level-synchronous breadth-first search over
// implicit state graphs: states and edges are never materialized up front,
// only generated on demand by applying transition functions.
//
// What
//
//   - MinTransitions returns the minimum number of transition applications
//     needed to reach a target state from an initial state, where one
//     application of any single transition counts as one step.
//   - States are plain comparable values with cheap copies; transitions are
//     pure State → State functions supplied as data.
//   - The search is bounded: a configurable pass limit converts an
//     unreachable target (or an impractically large space) into
//     ErrBoundExceeded instead of non-termination.
//
// Why
//
//   - Toggle-style transitions are self-inverse, so the state graph is full
//     of cycles; only breadth-first layering guarantees the returned count
//     is minimal.
//   - Keeping the searcher generic over the state type separates the
//     algorithm from any one caller's state encoding.
//
// Determinism
//
//	The returned count is indexed by pass, not by the order states are
//	drained within a pass, so repeated calls with identical inputs always
//	return identical results.
//
// Complexity (R = states reachable within the bound, T = |transitions|)
//
//   - Time:   O(R · T), every reachable state is expanded at most once.
//   - Memory: O(R) for the known and visited sets.
//
// Usage
//
//	flip := statespace.TransitionFunc[int](func(s int) int { return s ^ 1 })
//	steps, err := statespace.MinTransitions(0, 1, []statespace.TransitionFunc[int]{flip})
//
//	// With options:
//	steps, err := statespace.MinTransitions(
//	    initial, target, transitions,
//	    statespace.WithMaxSteps(500),
//	    statespace.WithContext(ctx),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, MaxSteps = DefaultMaxSteps.
//   - WithContext(ctx): set a custom context for cancellation.
//   - WithMaxSteps(n):  fail once n passes have completed fruitlessly (n ≥ 1).
//
// Errors
//
//   - ErrNoTransitions   if the transition collection is empty.
//   - ErrOptionViolation if an invalid Option is supplied.
//   - ErrBoundExceeded   if the pass bound is exceeded, or every reachable
//     state was visited without finding the target.
package statespace
