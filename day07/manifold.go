// Package day07 traces tachyon beams through the manifold. Beams travel
// straight down; a splitter forks arrivals to its diagonals and shades the
// cell directly below; every fork doubles the timelines in flight.
package day07

import (
	"fmt"
	"io"
	"strings"

	"github.com/ffoxdd/advent-of-code-2025/grid"
)

// CellType distinguishes manifold cells.
type CellType byte

const (
	// Source emits one illuminated timeline.
	Source CellType = 'S'
	// Space carries whatever reaches it.
	Space CellType = '.'
	// Splitter forks arrivals to both diagonals.
	Splitter CellType = '^'
)

// Cell tracks a position's illumination and the timelines through it.
type Cell struct {
	Type          CellType
	Illuminated   bool
	TimelineCount uint64
}

func newCell(t CellType) Cell {
	if t == Source {
		return Cell{Type: t, Illuminated: true, TimelineCount: 1}
	}

	return Cell{Type: t}
}

// render returns the display byte; illuminated space shows as '|'.
func (c Cell) render() byte {
	if c.Type == Space && c.Illuminated {
		return '|'
	}

	return byte(c.Type)
}

// Manifold is the beam chamber.
type Manifold struct {
	cells [][]Cell
}

// ParseManifold builds a Manifold from lines of 'S', '.' and '^'.
func ParseManifold(lines []string) (*Manifold, error) {
	g, err := grid.New(lines, func(b byte) bool {
		return b == byte(Source) || b == byte(Space) || b == byte(Splitter)
	})
	if err != nil {
		return nil, fmt.Errorf("day07: %w", err)
	}

	cells := make([][]Cell, g.Rows())
	for i := range cells {
		row := make([]Cell, g.Cols())
		for j := range row {
			row[j] = newCell(CellType(g.At(i, j)))
		}
		cells[i] = row
	}

	return &Manifold{cells: cells}, nil
}

// ExtendBeam propagates each row into the one below it, top to bottom, so
// one call floods the whole manifold. Within a row, cells emit left to
// right; a later write overwrites the illumination flag and adds to the
// timeline count. Splitters emit whether or not they are lit. That
// ordering and overwrite behavior is the contract splitter chains rely on.
func (m *Manifold) ExtendBeam() {
	for i := 0; i+1 < len(m.cells); i++ {
		prev, next := m.cells[i], m.cells[i+1]
		for j := range prev {
			cell := prev[j]
			switch {
			case cell.Type == Source:
				update(next, j, true, cell.TimelineCount)
			case cell.Type == Space && cell.Illuminated:
				update(next, j, true, cell.TimelineCount)
			case cell.Type == Splitter:
				update(next, j-1, true, cell.TimelineCount)
				update(next, j, false, 0)
				update(next, j+1, true, cell.TimelineCount)
			}
		}
	}
}

// update records one beam arrival. Writes outside the row are dropped.
func update(row []Cell, j int, illuminated bool, count uint64) {
	if j < 0 || j >= len(row) {
		return
	}
	row[j].Illuminated = illuminated
	row[j].TimelineCount += count
}

// SplitCount reports illuminated splitters across the whole manifold.
func (m *Manifold) SplitCount() int {
	var count int
	for _, row := range m.cells {
		for _, cell := range row {
			if cell.Type == Splitter && cell.Illuminated {
				count++
			}
		}
	}

	return count
}

// TimelineCount sums the timelines reaching the bottom row.
func (m *Manifold) TimelineCount() uint64 {
	var total uint64
	for _, cell := range m.cells[len(m.cells)-1] {
		total += cell.TimelineCount
	}

	return total
}

// String renders the manifold, one row per line with a trailing newline.
func (m *Manifold) String() string {
	var sb strings.Builder
	for _, row := range m.cells {
		for _, cell := range row {
			sb.WriteByte(cell.render())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Run renders the manifold before and after beam extension and reports the
// split and timeline counts.
func Run(lines []string, w io.Writer) error {
	manifold, err := ParseManifold(lines)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Manifold:\n%v\n", manifold)

	manifold.ExtendBeam()

	fmt.Fprintf(w, "Updated Manifold:\n%v\n", manifold)
	fmt.Fprintf(w, "Split Count: %d\n", manifold.SplitCount())
	fmt.Fprintf(w, "Timeline Count: %d\n", manifold.TimelineCount())

	return nil
}
