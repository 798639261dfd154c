// Package day12 checks which tree farm regions can hold their requested
// sapling shapes without overlap. Each region is a packing feasibility
// question answered by CP-SAT.
package day12

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"google.golang.org/protobuf/proto"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
)

var (
	// ErrBadRegion indicates a malformed "WxH: counts" line.
	ErrBadRegion = errors.New("day12: bad region")
	// ErrCountMismatch indicates a region whose count row does not list
	// one count per shape.
	ErrCountMismatch = errors.New("day12: count mismatch")
	// ErrBackend indicates the solver ended in a status that answers
	// neither yes nor no.
	ErrBackend = errors.New("day12: solver backend")
)

// Region is a rectangular planting area.
type Region struct {
	Width, Height int
}

func (r Region) cellCount() int { return r.Width * r.Height }

// TreeFarm holds the sapling shapes, the regions, and how many of each
// shape every region must hold.
type TreeFarm struct {
	shapes  []Shape
	regions []Region
	counts  [][]int
}

// ParseTreeFarm reads shape blocks ("N:" header, then '#'/'.' grid lines)
// and region lines ("WxH: c0 c1 ...", one count per shape). Lines that are
// neither are skipped.
func ParseTreeFarm(lines []string) (*TreeFarm, error) {
	farm := &TreeFarm{}
	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if isShapeHeader(line) {
			i++
			start := i
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if next == "" || isRegionLine(next) {
					break
				}
				i++
			}
			if i > start {
				shape, err := parseShape(lines[start:i])
				if err != nil {
					return nil, err
				}
				farm.shapes = append(farm.shapes, shape)
			}
			if i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				i++
			}
			continue
		}

		if isRegionLine(line) {
			region, counts, err := parseRegion(line)
			if err != nil {
				return nil, err
			}
			farm.regions = append(farm.regions, region)
			farm.counts = append(farm.counts, counts)
		}
		i++
	}

	for r, counts := range farm.counts {
		if len(counts) != len(farm.shapes) {
			return nil, fmt.Errorf("%w: region %d has %d counts, want %d",
				ErrCountMismatch, r, len(counts), len(farm.shapes))
		}
	}

	return farm, nil
}

// isShapeHeader matches "N:" lines.
func isShapeHeader(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	_, err := strconv.ParseUint(strings.TrimSuffix(line, ":"), 10, 64)

	return err == nil
}

// isRegionLine matches "WxH: ..." lines.
func isRegionLine(line string) bool {
	return strings.Contains(line, "x") && strings.Contains(line, ":")
}

// parseRegion decodes "WxH: c0 c1 ..." into the region and its shape
// counts.
func parseRegion(line string) (Region, []int, error) {
	dims, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Region{}, nil, fmt.Errorf("%w: %q", ErrBadRegion, line)
	}
	widthStr, heightStr, ok := strings.Cut(dims, "x")
	if !ok {
		return Region{}, nil, fmt.Errorf("%w: %q", ErrBadRegion, line)
	}
	width, err := strconv.Atoi(strings.TrimSpace(widthStr))
	if err != nil || width < 0 {
		return Region{}, nil, fmt.Errorf("%w: %q", ErrBadRegion, line)
	}
	height, err := strconv.Atoi(strings.TrimSpace(heightStr))
	if err != nil || height < 0 {
		return Region{}, nil, fmt.Errorf("%w: %q", ErrBadRegion, line)
	}

	fields := strings.Fields(rest)
	counts := make([]int, 0, len(fields))
	for _, field := range fields {
		c, err := strconv.Atoi(field)
		if err != nil || c < 0 {
			return Region{}, nil, fmt.Errorf("%w: %q", ErrBadRegion, line)
		}
		counts = append(counts, c)
	}

	return Region{Width: width, Height: height}, counts, nil
}

// placement is one shape orientation at one region offset.
type placement struct {
	shape Shape
	x, y  int
}

// coveredCoordinates returns the region cells the placement plants.
func (p placement) coveredCoordinates() [][2]int {
	covered := make([][2]int, len(p.shape.covered))
	for i, c := range p.shape.covered {
		covered[i] = [2]int{c[0] + p.x, c[1] + p.y}
	}

	return covered
}

// placements enumerates every orientation of shape at every offset that
// keeps it inside the region.
func placements(shape Shape, region Region) []placement {
	var out []placement
	for _, o := range shape.orientations() {
		if o.Width() > region.Width || o.Height() > region.Height {
			continue
		}
		for x := 0; x <= region.Width-o.Width(); x++ {
			for y := 0; y <= region.Height-o.Height(); y++ {
				out = append(out, placement{shape: o, x: x, y: y})
			}
		}
	}

	return out
}

// regionProblem is the packing feasibility question for one region.
type regionProblem struct {
	shapes            []Shape
	region            Region
	counts            []int
	placementsByShape [][]placement
}

func newRegionProblem(shapes []Shape, region Region, counts []int) *regionProblem {
	byShape := make([][]placement, len(shapes))
	for i, s := range shapes {
		byShape[i] = placements(s, region)
	}

	return &regionProblem{
		shapes:            shapes,
		region:            region,
		counts:            counts,
		placementsByShape: byShape,
	}
}

// requiredCellCount is the area the requested shapes must plant.
func (p *regionProblem) requiredCellCount() int {
	var total int
	for i, s := range p.shapes {
		total += s.cellCount() * p.counts[i]
	}

	return total
}

// hasCapacity reports whether the region has room for the requested cells.
func (p *regionProblem) hasCapacity() bool {
	return p.region.cellCount() >= p.requiredCellCount()
}

// solvable reports whether some placement assignment plants exactly the
// requested shape counts with no two placements sharing a cell.
func (p *regionProblem) solvable() (bool, error) {
	builder := cpmodel.NewCpModelBuilder()

	// One Boolean per placement; per shape, exactly the requested count.
	varsByShape := make([][]cpmodel.BoolVar, len(p.placementsByShape))
	for i, shapePlacements := range p.placementsByShape {
		vars := make([]cpmodel.BoolVar, len(shapePlacements))
		sum := cpmodel.NewLinearExpr()
		for j := range shapePlacements {
			vars[j] = builder.NewBoolVar()
			sum.Add(vars[j])
		}
		builder.AddEquality(sum, cpmodel.NewConstant(int64(p.counts[i])))
		varsByShape[i] = vars
	}

	// Per cell, at most one covering placement.
	byCell := make([][]cpmodel.BoolVar, p.region.cellCount())
	for i, shapePlacements := range p.placementsByShape {
		for j, pl := range shapePlacements {
			for _, c := range pl.coveredCoordinates() {
				idx := c[0]*p.region.Height + c[1]
				byCell[idx] = append(byCell[idx], varsByShape[i][j])
			}
		}
	}
	for _, vars := range byCell {
		if len(vars) == 0 {
			continue
		}
		sum := cpmodel.NewLinearExpr()
		for _, v := range vars {
			sum.Add(v)
		}
		builder.AddLessOrEqual(sum, cpmodel.NewConstant(1))
	}

	m, err := builder.Model()
	if err != nil {
		return false, fmt.Errorf("day12: building model: %w", err)
	}
	response, err := cpmodel.SolveCpModelWithParameters(m, &sppb.SatParameters{
		LogSearchProgress: proto.Bool(false),
	})
	if err != nil {
		return false, fmt.Errorf("day12: solving: %w", err)
	}

	switch response.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL, cmpb.CpSolverStatus_FEASIBLE:
		return true, nil
	case cmpb.CpSolverStatus_INFEASIBLE:
		return false, nil
	default:
		return false, fmt.Errorf("%w: status %s", ErrBackend, response.GetStatus())
	}
}

// ValidRegions counts how many regions can hold their requested shapes. A
// region without capacity for the requested cells is rejected without
// solving.
func (t *TreeFarm) ValidRegions() (int, error) {
	var valid int
	for i, region := range t.regions {
		problem := newRegionProblem(t.shapes, region, t.counts[i])
		if !problem.hasCapacity() {
			continue
		}
		ok, err := problem.solvable()
		if err != nil {
			return 0, err
		}
		if ok {
			valid++
		}
	}

	return valid, nil
}

// Run solves the puzzle over raw input lines and writes the count to w.
func Run(lines []string, w io.Writer) error {
	farm, err := ParseTreeFarm(lines)
	if err != nil {
		return err
	}
	valid, err := farm.ValidRegions()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Valid regions: %d\n", valid)

	return nil
}
