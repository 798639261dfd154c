package day08

// circuitSet is a disjoint-set forest over junction box indices, with path
// compression and union by size.
type circuitSet struct {
	parent []int
	size   []int
	count  int
}

// newCircuitSet places each of the n boxes in its own circuit.
func newCircuitSet(n int) *circuitSet {
	cs := &circuitSet{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range cs.parent {
		cs.parent[i] = i
		cs.size[i] = 1
	}

	return cs
}

// find walks up to the root of x's circuit, pointing nodes at their
// grandparents along the way to keep the forest shallow.
func (cs *circuitSet) find(x int) int {
	for cs.parent[x] != x {
		cs.parent[x] = cs.parent[cs.parent[x]]
		x = cs.parent[x]
	}

	return x
}

// union merges the circuits holding a and b, reporting whether they were
// previously separate. The smaller circuit is attached under the larger
// root.
func (cs *circuitSet) union(a, b int) bool {
	rootA, rootB := cs.find(a), cs.find(b)
	if rootA == rootB {
		return false
	}
	if cs.size[rootA] < cs.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	cs.parent[rootB] = rootA
	cs.size[rootA] += cs.size[rootB]
	cs.count--

	return true
}

// sizes returns the size of every remaining circuit, in root-index order.
func (cs *circuitSet) sizes() []int {
	out := make([]int, 0, cs.count)
	for i := range cs.parent {
		if cs.find(i) == i {
			out = append(out, cs.size[i])
		}
	}

	return out
}
