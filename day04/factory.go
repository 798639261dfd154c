// Package day04 clears the factory floor: a paper roll is accessible while
// at most three of its eight neighbors are occupied, and accessible rolls
// come off in waves until a wave removes nothing.
package day04

import (
	"fmt"
	"io"
	"strings"

	"github.com/ffoxdd/advent-of-code-2025/grid"
)

// Floor plan markers.
const (
	Empty     byte = '.'
	PaperRoll byte = '@'
)

// maxNeighbors is the most occupied neighbors an accessible roll tolerates.
const maxNeighbors = 3

// Floor is the factory floor plan.
type Floor struct {
	g grid.Grid
}

// ParseFloor builds a Floor from plan lines of '.' and '@'.
func ParseFloor(lines []string) (*Floor, error) {
	g, err := grid.New(lines, func(b byte) bool { return b == Empty || b == PaperRoll })
	if err != nil {
		return nil, fmt.Errorf("day04: %w", err)
	}

	return &Floor{g: g}, nil
}

// RollCount reports the paper rolls currently on the floor.
func (f *Floor) RollCount() int { return f.g.Count(PaperRoll) }

// AccessibleRollCount reports how many rolls are accessible right now.
func (f *Floor) AccessibleRollCount() int { return len(f.accessibleRolls()) }

// IsAccessible reports whether position (i, j) has few enough occupied
// neighbors to be reached by a forklift.
func (f *Floor) IsAccessible(i, j int) bool {
	return f.neighborCount(i, j) <= maxNeighbors
}

// RemoveAccessibleRolls clears accessible rolls in waves. Each wave is
// snapshotted before clearing, so rolls exposed mid-wave wait for the next
// one. Stops when a wave would remove nothing; dense interiors can survive.
func (f *Floor) RemoveAccessibleRolls() {
	for {
		rolls := f.accessibleRolls()
		if len(rolls) == 0 {
			return
		}
		for _, p := range rolls {
			f.g.Set(p[0], p[1], Empty)
		}
	}
}

// neighborCount counts occupied cells around (i, j).
func (f *Floor) neighborCount(i, j int) int {
	var count int
	for _, b := range f.g.Neighbors8(i, j) {
		if b != Empty {
			count++
		}
	}

	return count
}

// accessibleRolls snapshots the positions of all currently accessible
// rolls, row-major.
func (f *Floor) accessibleRolls() [][2]int {
	var rolls [][2]int
	for i := 0; i < f.g.Rows(); i++ {
		for j := 0; j < f.g.Cols(); j++ {
			if f.g.At(i, j) == PaperRoll && f.IsAccessible(i, j) {
				rolls = append(rolls, [2]int{i, j})
			}
		}
	}

	return rolls
}

// String renders the floor with accessible rolls marked 'x', one row per
// line, with a trailing newline.
func (f *Floor) String() string {
	var sb strings.Builder
	sb.Grow(f.g.Rows() * (f.g.Cols() + 1))
	for i := 0; i < f.g.Rows(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < f.g.Cols(); j++ {
			b := f.g.At(i, j)
			if b == PaperRoll && f.IsAccessible(i, j) {
				b = 'x'
			}
			sb.WriteByte(b)
		}
	}
	sb.WriteByte('\n')

	return sb.String()
}

// Run renders the floor before and after removal and reports the counts.
func Run(lines []string, w io.Writer) error {
	floor, err := ParseFloor(lines)
	if err != nil {
		return err
	}

	original := floor.RollCount()

	fmt.Fprintf(w, "Factory Floor: \n%v\n", floor)
	fmt.Fprintf(w, "Roll Count: %d\n", floor.RollCount())
	fmt.Fprintf(w, "Accessible Rolls: %d\n", floor.AccessibleRollCount())

	fmt.Fprint(w, "\n--------------------------------\n\n")

	floor.RemoveAccessibleRolls()
	final := floor.RollCount()

	fmt.Fprintf(w, "Final Factory Floor: \n%v\n", floor)
	fmt.Fprintf(w, "Final roll count: %d\n", final)
	fmt.Fprintf(w, "Removed rolls: %d\n", original-final)

	return nil
}
