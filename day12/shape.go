package day12

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadShape indicates a sapling shape that is empty, ragged, not made of
// '#' and '.' cells, or has a blank row or column.
var ErrBadShape = errors.New("day12: bad shape")

// Shape is a sapling footprint on a rectangular grid.
type Shape struct {
	cells   [][]bool
	covered [][2]int
}

// parseShape reads '#'/'.' grid lines, skipping blank ones.
func parseShape(lines []string) (Shape, error) {
	var cells [][]bool
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, len(line))
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '#':
				row[i] = true
			case '.':
			default:
				return Shape{}, fmt.Errorf("%w: cell %q", ErrBadShape, line[i])
			}
		}
		cells = append(cells, row)
	}

	return newShape(cells)
}

// newShape validates the grid: non-empty, rectangular, and no blank row or
// column.
func newShape(cells [][]bool) (Shape, error) {
	if len(cells) == 0 {
		return Shape{}, fmt.Errorf("%w: empty grid", ErrBadShape)
	}
	width := len(cells[0])
	for _, row := range cells {
		if len(row) != width {
			return Shape{}, fmt.Errorf("%w: ragged grid", ErrBadShape)
		}
	}
	if hasBlankRow(cells) || hasBlankColumn(cells) {
		return Shape{}, fmt.Errorf("%w: blank row or column", ErrBadShape)
	}

	return Shape{cells: cells, covered: coveredCells(cells)}, nil
}

func hasBlankRow(cells [][]bool) bool {
	for _, row := range cells {
		blank := true
		for _, present := range row {
			if present {
				blank = false
				break
			}
		}
		if blank {
			return true
		}
	}

	return false
}

func hasBlankColumn(cells [][]bool) bool {
	for x := 0; x < len(cells[0]); x++ {
		blank := true
		for _, row := range cells {
			if row[x] {
				blank = false
				break
			}
		}
		if blank {
			return true
		}
	}

	return false
}

// coveredCells lists the planted cells as (x, y) offsets, row by row.
func coveredCells(cells [][]bool) [][2]int {
	var covered [][2]int
	for y, row := range cells {
		for x, present := range row {
			if present {
				covered = append(covered, [2]int{x, y})
			}
		}
	}

	return covered
}

// Width returns the number of grid columns.
func (s Shape) Width() int { return len(s.cells[0]) }

// Height returns the number of grid rows.
func (s Shape) Height() int { return len(s.cells) }

// cellCount returns how many cells the shape plants.
func (s Shape) cellCount() int { return len(s.covered) }

// String renders the shape with '#' planted cells, one row per line.
func (s Shape) String() string {
	var b strings.Builder
	for y, row := range s.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, present := range row {
			if present {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}

	return b.String()
}

// flip mirrors the shape horizontally. Transforms of a valid shape stay
// valid, so no revalidation is needed.
func (s Shape) flip() Shape {
	flipped := make([][]bool, len(s.cells))
	for y, row := range s.cells {
		rev := make([]bool, len(row))
		for x, present := range row {
			rev[len(row)-1-x] = present
		}
		flipped[y] = rev
	}

	return Shape{cells: flipped, covered: coveredCells(flipped)}
}

// rotateOnce turns the shape a quarter turn.
func (s Shape) rotateOnce() Shape {
	w, h := s.Width(), s.Height()
	rotated := make([][]bool, w)
	for i := range rotated {
		rotated[i] = make([]bool, h)
	}
	for y, row := range s.cells {
		for x, present := range row {
			rotated[w-1-x][y] = present
		}
	}

	return Shape{cells: rotated, covered: coveredCells(rotated)}
}

// orientations returns the distinct transforms of the shape: the identity
// and the horizontal flip, each in all four rotations, deduplicated.
func (s Shape) orientations() []Shape {
	var out []Shape
	seen := make(map[string]struct{}, 8)
	for _, base := range []Shape{s, s.flip()} {
		o := base
		for i := 0; i < 4; i++ {
			if i > 0 {
				o = o.rotateOnce()
			}
			key := o.String()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, o)
		}
	}

	return out
}
