package day05_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ffoxdd/advent-of-code-2025/day05"
)

// TestFreshIngredientCount counts available ids inside the ranges,
// boundaries included.
func TestFreshIngredientCount(t *testing.T) {
	db := day05.NewDatabase(
		[]day05.Range{{Start: 10, End: 20}, {Start: 30, End: 40}},
		[]uint64{5, 10, 15, 20, 25, 35},
	)

	if got := db.FreshIngredientCount(); got != 4 {
		t.Fatalf("FreshIngredientCount = %d; want 4", got)
	}
}

// TestKnownFreshIngredientCount drives normalization through every overlap
// shape.
func TestKnownFreshIngredientCount(t *testing.T) {
	cases := []struct {
		name   string
		ranges []day05.Range
		want   uint64
	}{
		{
			name:   "disjoint",
			ranges: []day05.Range{{Start: 10, End: 20}, {Start: 30, End: 40}},
			want:   22,
		},
		{
			name:   "overlapping",
			ranges: []day05.Range{{Start: 10, End: 20}, {Start: 15, End: 25}},
			want:   16,
		},
		{
			name:   "overlapping_at_end",
			ranges: []day05.Range{{Start: 10, End: 20}, {Start: 20, End: 25}},
			want:   16,
		},
		{
			name:   "overlapping_at_start",
			ranges: []day05.Range{{Start: 10, End: 20}, {Start: 5, End: 10}},
			want:   16,
		},
		{
			name:   "completely_contained",
			ranges: []day05.Range{{Start: 10, End: 30}, {Start: 15, End: 25}},
			want:   21,
		},
		{
			name: "chain_across_two_kept",
			ranges: []day05.Range{
				{Start: 10, End: 20},
				{Start: 30, End: 40},
				{Start: 18, End: 32},
			},
			want: 31,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			db := day05.NewDatabase(tc.ranges, nil)
			if got := db.KnownFreshIngredientCount(); got != tc.want {
				t.Fatalf("KnownFreshIngredientCount = %d; want %d", got, tc.want)
			}
		})
	}
}

// TestParseDatabase splits ranges from ids at the blank line.
func TestParseDatabase(t *testing.T) {
	lines := []string{
		"10-20",
		"30-40",
		"",
		"5",
		"15",
		"35",
	}

	db, err := day05.ParseDatabase(lines)
	if err != nil {
		t.Fatalf("ParseDatabase: unexpected error %v", err)
	}
	if got := db.FreshIngredientCount(); got != 2 {
		t.Fatalf("FreshIngredientCount = %d; want 2", got)
	}
	if got := db.KnownFreshIngredientCount(); got != 22 {
		t.Fatalf("KnownFreshIngredientCount = %d; want 22", got)
	}
}

// TestParseDatabase_Errors covers malformed ranges, inverted ranges, and
// malformed ids.
func TestParseDatabase_Errors(t *testing.T) {
	cases := [][]string{
		{"10"},             // no dash
		{"a-20"},           // bad start
		{"10-b"},           // bad end
		{"30-20"},          // inverted
		{"10-20", "", "x"}, // bad id
	}

	for _, lines := range cases {
		if _, err := day05.ParseDatabase(lines); !errors.Is(err, day05.ErrBadLine) {
			t.Fatalf("ParseDatabase(%q): got %v; want ErrBadLine", lines, err)
		}
	}
}

// TestRun_Output locks the exact output format.
func TestRun_Output(t *testing.T) {
	var out bytes.Buffer
	lines := []string{"10-20", "15-25", "", "12", "24", "40"}
	if err := day05.Run(lines, &out); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}

	want := "Fresh ingredient count: 2\nKnown fresh ingredient count: 16\n"
	if got := out.String(); got != want {
		t.Fatalf("Run output = %q; want %q", got, want)
	}
}
