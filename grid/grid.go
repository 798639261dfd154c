// Package grid provides rectangular byte grids with bounds-checked access
// and fixed-order 8-neighborhoods.
//
// A Grid is a view over shared cells: copying the value aliases the same
// backing rows, and Set writes through every copy. Use Clone for an
// independent grid.
package grid

import (
	"fmt"
	"strings"
)

// neighborOffsets enumerates the 8-neighborhood in row-major order.
// Traversal order is part of the contract: callers that accumulate
// neighbor effects rely on it being stable.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a rectangular byte grid indexed by (row, column).
type Grid struct {
	cells [][]byte
	rows  int
	cols  int
}

// New builds a Grid from text rows, deep-copying the input. Every byte must
// satisfy valid; a nil validator accepts everything.
// Returns ErrEmptyGrid when there are no rows or no columns,
// ErrNonRectangular when row lengths differ, and ErrInvalidCell (with the
// offending position) when validation fails.
func New(rows []string, valid func(byte) bool) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	cols := len(rows[0])

	cells := make([][]byte, len(rows))
	for r, row := range rows {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns, want %d",
				ErrNonRectangular, r, len(row), cols)
		}
		cells[r] = []byte(row)
		if valid == nil {
			continue
		}
		for c := 0; c < cols; c++ {
			if !valid(cells[r][c]) {
				return Grid{}, fmt.Errorf("%w: %q at row %d, column %d",
					ErrInvalidCell, cells[r][c], r, c)
			}
		}
	}

	return Grid{cells: cells, rows: len(rows), cols: cols}, nil
}

// Rows reports the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols reports the number of columns.
func (g Grid) Cols() int { return g.cols }

// InBounds reports whether (r, c) lies within the grid.
func (g Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the byte at (r, c). The position must be in bounds.
func (g Grid) At(r, c int) byte { return g.cells[r][c] }

// Set writes the byte at (r, c). The position must be in bounds.
func (g Grid) Set(r, c int, b byte) { g.cells[r][c] = b }

// Clone returns a deep copy with independent backing rows.
func (g Grid) Clone() Grid {
	cells := make([][]byte, g.rows)
	for r := range g.cells {
		cells[r] = make([]byte, g.cols)
		copy(cells[r], g.cells[r])
	}

	return Grid{cells: cells, rows: g.rows, cols: g.cols}
}

// Neighbors8 returns the bytes of the existing neighbors of (r, c), in the
// fixed row-major offset order. Off-grid positions are skipped, so corner
// cells yield 3 values and interior cells 8.
func (g Grid) Neighbors8(r, c int) []byte {
	out := make([]byte, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nr, nc := r+d[0], c+d[1]
		if g.InBounds(nr, nc) {
			out = append(out, g.cells[nr][nc])
		}
	}

	return out
}

// Count returns the number of cells holding b.
func (g Grid) Count(b byte) int {
	var n int
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == b {
				n++
			}
		}
	}

	return n
}

// String renders the rows joined by newlines, without a trailing newline.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}

	return sb.String()
}
