// Package day09 measures rectangles spanned by pairs of red floor tiles.
// The tiles in input order trace a closed axis-aligned polygon, and a
// rectangle is valid only when its edges stay inside that polygon.
package day09

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// ErrBadTile indicates an input line that does not hold two integer
// coordinates.
var ErrBadTile = errors.New("day09: bad tile")

// Filter selects which tile rectangles count toward the largest area.
type Filter int

const (
	// All admits every tile pair.
	All Filter = iota
	// ValidOnly admits only rectangles whose four edges are not crossed by
	// the tile polygon.
	ValidOnly
)

// Floor holds the red tiles and the polygon edges they trace.
type Floor struct {
	tiles []point
	edges []axisEdge
}

// ParseFloor reads one "x,y" red tile per line. Consecutive tiles, last
// back to first, form the polygon edges.
func ParseFloor(lines []string) (*Floor, error) {
	tiles := make([]point, 0, len(lines))
	for _, line := range lines {
		tile, err := parseTile(line)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, tile)
	}

	return &Floor{tiles: tiles, edges: polygonEdges(tiles)}, nil
}

// parseTile parses a single "x,y" coordinate pair.
func parseTile(line string) (point, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return point{}, fmt.Errorf("%w: %q", ErrBadTile, line)
	}
	x, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return point{}, fmt.Errorf("%w: %q", ErrBadTile, line)
	}
	y, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return point{}, fmt.Errorf("%w: %q", ErrBadTile, line)
	}

	return point{x: x, y: y}, nil
}

// polygonEdges closes the tile loop: one edge per consecutive pair plus the
// wrap from the last tile back to the first.
func polygonEdges(tiles []point) []axisEdge {
	if len(tiles) < 2 {
		return nil
	}
	edges := make([]axisEdge, 0, len(tiles))
	for i := range tiles {
		edges = append(edges, axisEdge{a: tiles[i], b: tiles[(i+1)%len(tiles)]})
	}

	return edges
}

// LargestRectangleArea returns the maximum area spanned by any two red
// tiles, counting both corner tiles: (|dx|+1) * (|dy|+1). With fewer than
// two tiles there is no rectangle and the area is 0.
func (f *Floor) LargestRectangleArea(filter Filter) uint64 {
	if len(f.tiles) < 2 {
		return 0
	}
	var best uint64
	for _, c := range combin.Combinations(len(f.tiles), 2) {
		a, b := f.tiles[c[0]], f.tiles[c[1]]
		if filter == ValidOnly && !f.validRectangle(a, b) {
			continue
		}
		if area := rectangleArea(a, b); area > best {
			best = area
		}
	}

	return best
}

// rectangleArea counts the tiles covered by the rectangle with opposite
// corners a and b.
func rectangleArea(a, b point) uint64 {
	dx := abs(a.x - b.x)
	dy := abs(a.y - b.y)

	return uint64((dx + 1) * (dy + 1))
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// validRectangle reports whether all four edges of the rectangle spanned by
// the two corner tiles are valid.
func (f *Floor) validRectangle(a, b point) bool {
	corners := rectangleCorners(a, b)
	for i := range corners {
		edge := axisEdge{a: corners[i], b: corners[(i+1)%len(corners)]}
		if !f.validEdge(edge) {
			return false
		}
	}

	return true
}

// validEdge reports whether no polygon edge crosses edge from its right
// side to its left. Only polygon edges starting strictly inside edge's open
// span are considered.
func (f *Floor) validEdge(edge axisEdge) bool {
	for _, test := range f.edges {
		if edge.leftIntersection(test) {
			return false
		}
	}

	return true
}

// Run solves the puzzle over raw input lines and writes both areas to w.
func Run(lines []string, w io.Writer) error {
	floor, err := ParseFloor(lines)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Largest rectangle area: %d\n", floor.LargestRectangleArea(All))
	fmt.Fprintf(w, "Largest valid rectangle area: %d\n", floor.LargestRectangleArea(ValidOnly))

	return nil
}
