package statespace

import "context"

// walker encapsulates all mutable state of a single MinTransitions call.
type walker[S comparable, T Transition[S]] struct {
	transitions []T
	target      S
	opts        Options
	ctx         context.Context

	// known holds every state generated so far, including unprocessed ones.
	known map[S]struct{}
	// visited holds states whose successors have already been generated.
	visited map[S]struct{}
	// steps counts completed passes; it is the candidate answer.
	steps int
}

// MinTransitions returns the minimum number of transition applications
// needed to drive initial to target. The implicit graph is explored
// breadth-first, one layer per pass, so the first pass that generates the
// target yields the minimal count.
//
// When initial already equals target the answer is 0 and no transition is
// applied. The search fails with ErrBoundExceeded when the configured pass
// bound is exceeded, or when every reachable state has been visited without
// generating the target; the two causes are indistinguishable to callers.
func MinTransitions[S comparable, T Transition[S]](initial, target S, transitions []T, opts ...Option) (int, error) {
	// 1) Fold options over defaults; surface deferred validation errors.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	// 2) Validate input: without transitions no state is reachable.
	if len(transitions) == 0 {
		return 0, ErrNoTransitions
	}

	// 3) Trivial case: already at the target, zero applications.
	if initial == target {
		return 0, nil
	}

	// 4) Seed the walker and run.
	w := &walker[S, T]{
		transitions: transitions,
		target:      target,
		opts:        o,
		ctx:         o.Ctx,
		known:       map[S]struct{}{initial: {}},
		visited:     make(map[S]struct{}),
	}

	return w.search()
}

// search runs passes until the target is generated, the bound trips, or the
// frontier empties.
func (w *walker[S, T]) search() (int, error) {
	for {
		// Honor cancellation once per pass.
		select {
		case <-w.ctx.Done():
			return 0, w.ctx.Err()
		default:
		}

		if w.steps > w.opts.MaxSteps {
			return 0, ErrBoundExceeded
		}

		frontier := w.frontier()
		if len(frontier) == 0 {
			// Reachable space exhausted; the target is not in it.
			return 0, ErrBoundExceeded
		}

		w.steps++
		if w.expand(frontier) {
			return w.steps, nil
		}

		// States expanded this pass never need expanding again.
		for _, s := range frontier {
			w.visited[s] = struct{}{}
		}
	}
}

// frontier snapshots known minus visited, so states generated during a pass
// are not expanded until the next one. Snapshot order is irrelevant to the
// result: the answer is indexed by pass.
func (w *walker[S, T]) frontier() []S {
	frontier := make([]S, 0, len(w.known)-len(w.visited))
	for s := range w.known {
		if _, seen := w.visited[s]; !seen {
			frontier = append(frontier, s)
		}
	}

	return frontier
}

// expand applies every transition to every frontier state and reports
// whether the target was generated. Fresh states join known; states already
// expanded are not re-added.
func (w *walker[S, T]) expand(frontier []S) bool {
	for _, s := range frontier {
		for _, t := range w.transitions {
			next := t.Apply(s)
			if next == w.target {
				return true
			}
			if _, seen := w.visited[next]; !seen {
				w.known[next] = struct{}{}
			}
		}
	}

	return false
}
