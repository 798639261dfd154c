// Package day08 wires playground junction boxes into circuits, nearest
// pairs first, and watches how the circuits merge.
package day08

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// ErrBadBox indicates an input line that does not hold three integer
// coordinates.
var ErrBadBox = errors.New("day08: bad junction box")

// connectBudget is how many of the nearest pairs part one wires together.
const connectBudget = 1000

// JunctionBox is a powered box on the playground floor at integer
// coordinates.
type JunctionBox struct {
	X, Y, Z int64
}

// sqDistance returns the squared Euclidean distance to other.
func (b JunctionBox) sqDistance(other JunctionBox) int64 {
	dx := b.X - other.X
	dy := b.Y - other.Y
	dz := b.Z - other.Z

	return dx*dx + dy*dy + dz*dz
}

// Playground holds the junction boxes and the circuits they form.
type Playground struct {
	boxes    []JunctionBox
	circuits *circuitSet
}

// ParsePlayground reads one "x,y,z" junction box per line. Every box starts
// in its own circuit.
func ParsePlayground(lines []string) (*Playground, error) {
	boxes := make([]JunctionBox, 0, len(lines))
	for _, line := range lines {
		box, err := parseBox(line)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, box)
	}

	return &Playground{boxes: boxes, circuits: newCircuitSet(len(boxes))}, nil
}

// parseBox parses a single "x,y,z" coordinate triple.
func parseBox(line string) (JunctionBox, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return JunctionBox{}, fmt.Errorf("%w: %q", ErrBadBox, line)
	}
	coords := make([]int64, 3)
	for i, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return JunctionBox{}, fmt.Errorf("%w: %q", ErrBadBox, line)
		}
		coords[i] = v
	}

	return JunctionBox{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ClosestPairs returns every pair of box indices ordered from nearest to
// farthest. Ties keep the (i, j) lexicographic order.
func (p *Playground) ClosestPairs() [][2]int {
	if len(p.boxes) < 2 {
		return nil
	}
	list := combin.Combinations(len(p.boxes), 2)
	pairs := make([][2]int, len(list))
	for i, c := range list {
		pairs[i] = [2]int{c[0], c[1]}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return p.sqDistance(pairs[i]) < p.sqDistance(pairs[j])
	})

	return pairs
}

func (p *Playground) sqDistance(pair [2]int) int64 {
	return p.boxes[pair[0]].sqDistance(p.boxes[pair[1]])
}

// Connect joins the circuits of boxes a and b, reporting whether they were
// previously separate.
func (p *Playground) Connect(a, b int) bool {
	return p.circuits.union(a, b)
}

// CircuitCount returns the number of circuits.
func (p *Playground) CircuitCount() int { return p.circuits.count }

// CircuitSizes returns the size of every circuit, in no particular order.
func (p *Playground) CircuitSizes() []int { return p.circuits.sizes() }

// X returns the x coordinate of box i.
func (p *Playground) X(i int) int64 { return p.boxes[i].X }

// topProduct multiplies the k largest values in sizes.
func topProduct(sizes []int, k int) int64 {
	sorted := append([]int(nil), sizes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	product := int64(1)
	for _, s := range sorted {
		product *= int64(s)
	}

	return product
}

// Run solves the puzzle over raw input lines and writes both answers to w.
// Part one connects the nearest pairs up to the budget and multiplies the
// three largest circuit sizes. Part two replays all pairs from the start
// and reports the pair whose connection leaves a single circuit.
func Run(lines []string, w io.Writer) error {
	playground, err := ParsePlayground(lines)
	if err != nil {
		return err
	}
	pairs := playground.ClosestPairs()

	limit := connectBudget
	if len(pairs) < limit {
		limit = len(pairs)
	}
	for _, pair := range pairs[:limit] {
		playground.Connect(pair[0], pair[1])
	}
	fmt.Fprintf(w, "Part 1 Answer: %d\n", topProduct(playground.CircuitSizes(), 3))

	for _, pair := range pairs {
		playground.Connect(pair[0], pair[1])
		if playground.CircuitCount() == 1 {
			fmt.Fprintf(w, "Part 2 Answer: %d\n", playground.X(pair[0])*playground.X(pair[1]))
			break
		}
	}

	return nil
}
