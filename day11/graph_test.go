package day11_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ffoxdd/advent-of-code-2025/day11"
)

// reactor has three svr-to-out paths; only svr->dac->fft->out visits both
// dac and fft.
var reactor = []string{
	"you: svr",
	"svr: dac fft",
	"dac: fft out",
	"fft: out",
}

// TestParseGraph_Errors verifies headless lines and cycles are rejected.
func TestParseGraph_Errors(t *testing.T) {
	_, err := day11.ParseGraph([]string{"no head here"})
	assert.ErrorIs(t, err, day11.ErrBadLine)

	_, err = day11.ParseGraph([]string{"a: b", "b: a"})
	assert.ErrorIs(t, err, day11.ErrCycleDetected)
}

// TestPathsBetween covers forward, degenerate and unreachable queries on
// the reactor fixture.
func TestPathsBetween(t *testing.T) {
	g, err := day11.ParseGraph(reactor)
	assert.NoError(t, err)

	cases := []struct {
		from, to string
		want     uint64
	}{
		{"you", "out", 3},
		{"svr", "out", 3},
		{"dac", "out", 2},
		{"fft", "out", 1},
		{"out", "out", 1},
		{"out", "svr", 0},
		{"fft", "dac", 0},
	}
	for _, tc := range cases {
		got, err := g.PathsBetween(tc.from, tc.to)
		assert.NoError(t, err, "PathsBetween(%s, %s)", tc.from, tc.to)
		assert.Equal(t, tc.want, got, "PathsBetween(%s, %s)", tc.from, tc.to)
	}
}

func TestPathsBetween_UnknownNode(t *testing.T) {
	g, err := day11.ParseGraph(reactor)
	assert.NoError(t, err)

	_, err = g.PathsBetween("nope", "out")
	assert.ErrorIs(t, err, day11.ErrUnknownNode)

	_, err = g.PathsBetween("svr", "nope")
	assert.ErrorIs(t, err, day11.ErrUnknownNode)
}

// TestPathsBetween_ParallelEdges checks that a duplicated child counts as
// two distinct paths.
func TestPathsBetween_ParallelEdges(t *testing.T) {
	g, err := day11.ParseGraph([]string{"a: b b", "b: c"})
	assert.NoError(t, err)

	got, err := g.PathsBetween("a", "c")
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), got)
}

// TestPathsBetween_RepeatedHeads checks that a node may list its children
// across several lines.
func TestPathsBetween_RepeatedHeads(t *testing.T) {
	g, err := day11.ParseGraph([]string{"a: b", "a: c", "b: d", "c: d"})
	assert.NoError(t, err)

	got, err := g.PathsBetween("a", "d")
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), got)
}

// TestPathsBetweenIncluding requires both intermediates: only the
// svr->dac->fft->out route survives.
func TestPathsBetweenIncluding(t *testing.T) {
	g, err := day11.ParseGraph(reactor)
	assert.NoError(t, err)

	got, err := g.PathsBetweenIncluding("svr", "out", []string{"dac", "fft"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestPathsBetweenIncluding_SingleNode(t *testing.T) {
	g, err := day11.ParseGraph(reactor)
	assert.NoError(t, err)

	got, err := g.PathsBetweenIncluding("svr", "out", []string{"dac"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), got)
}

// TestPathsBetweenIncluding_EmptyFallsBack checks that no required nodes
// means a plain path count.
func TestPathsBetweenIncluding_EmptyFallsBack(t *testing.T) {
	g, err := day11.ParseGraph(reactor)
	assert.NoError(t, err)

	got, err := g.PathsBetweenIncluding("svr", "out", nil)
	assert.NoError(t, err)
	assert.Equal(t, uint64(3), got)
}

// TestPathsBetweenIncluding_Chain forces three required nodes on a straight
// line: exactly one ordering survives.
func TestPathsBetweenIncluding_Chain(t *testing.T) {
	g, err := day11.ParseGraph([]string{"a: b", "b: c", "c: d", "d: e"})
	assert.NoError(t, err)

	got, err := g.PathsBetweenIncluding("a", "e", []string{"b", "c", "d"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestPathsBetweenIncluding_Errors(t *testing.T) {
	g, err := day11.ParseGraph(reactor)
	assert.NoError(t, err)

	_, err = g.PathsBetweenIncluding("svr", "out", []string{"dac", "dac"})
	assert.ErrorIs(t, err, day11.ErrDuplicateInclude)

	_, err = g.PathsBetweenIncluding("svr", "out", []string{"zzz"})
	assert.ErrorIs(t, err, day11.ErrUnknownNode)
}

func TestRun_Output(t *testing.T) {
	var buf bytes.Buffer
	err := day11.Run(reactor, &buf)
	assert.NoError(t, err)
	assert.Equal(t, "Part 1 paths: 3\nPart 2 paths: 1\n", buf.String())
}

func TestRun_BadInput(t *testing.T) {
	var buf bytes.Buffer
	err := day11.Run([]string{"no colon"}, &buf)
	assert.ErrorIs(t, err, day11.ErrBadLine)
}
