package day09_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ffoxdd/advent-of-code-2025/day09"
)

// lShape is a 10 by 10 loop with the top-right 5 by 5 quadrant cut away.
var lShape = []string{"0,0", "10,0", "10,5", "5,5", "5,10", "0,10"}

func mustFloor(t *testing.T, lines []string) *day09.Floor {
	t.Helper()
	f, err := day09.ParseFloor(lines)
	if err != nil {
		t.Fatalf("ParseFloor: unexpected error %v", err)
	}

	return f
}

func TestParseFloor_Errors(t *testing.T) {
	for _, line := range []string{"1", "1,2,3", "a,2", "1,b", ""} {
		if _, err := day09.ParseFloor([]string{line}); !errors.Is(err, day09.ErrBadTile) {
			t.Errorf("ParseFloor(%q): got %v; want ErrBadTile", line, err)
		}
	}
}

func TestLargestRectangleArea_Square(t *testing.T) {
	f := mustFloor(t, []string{"0,0", "10,0", "10,10", "0,10"})

	if got := f.LargestRectangleArea(day09.All); got != 121 {
		t.Fatalf("LargestRectangleArea(All) = %d; want 121", got)
	}
	if got := f.LargestRectangleArea(day09.ValidOnly); got != 121 {
		t.Fatalf("LargestRectangleArea(ValidOnly) = %d; want 121", got)
	}
}

// TestLargestRectangleArea_LShape checks that the filter rejects the
// bounding square once its corner quadrant is cut away: the (10,0)-(0,10)
// rectangle is crossed by the notch, so the best valid rectangle is one of
// the 11 by 6 halves.
func TestLargestRectangleArea_LShape(t *testing.T) {
	f := mustFloor(t, lShape)

	if got := f.LargestRectangleArea(day09.All); got != 121 {
		t.Fatalf("LargestRectangleArea(All) = %d; want 121", got)
	}
	if got := f.LargestRectangleArea(day09.ValidOnly); got != 66 {
		t.Fatalf("LargestRectangleArea(ValidOnly) = %d; want 66", got)
	}
}

func TestLargestRectangleArea_FewTiles(t *testing.T) {
	if got := mustFloor(t, nil).LargestRectangleArea(day09.All); got != 0 {
		t.Fatalf("LargestRectangleArea on empty floor = %d; want 0", got)
	}
	if got := mustFloor(t, []string{"4,4"}).LargestRectangleArea(day09.All); got != 0 {
		t.Fatalf("LargestRectangleArea on single tile = %d; want 0", got)
	}
}

func TestRun_Output(t *testing.T) {
	var buf bytes.Buffer
	if err := day09.Run(lShape, &buf); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}

	want := "Largest rectangle area: 121\nLargest valid rectangle area: 66\n"
	if got := buf.String(); got != want {
		t.Fatalf("Run output = %q; want %q", got, want)
	}
}

func TestRun_BadInput(t *testing.T) {
	var buf bytes.Buffer
	if err := day09.Run([]string{"nope"}, &buf); !errors.Is(err, day09.ErrBadTile) {
		t.Fatalf("Run: got %v; want ErrBadTile", err)
	}
}
