package day04_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/ffoxdd/advent-of-code-2025/day04"
	"github.com/ffoxdd/advent-of-code-2025/grid"
)

func mustFloor(t *testing.T, lines []string) *day04.Floor {
	t.Helper()
	floor, err := day04.ParseFloor(lines)
	if err != nil {
		t.Fatalf("ParseFloor: unexpected error %v", err)
	}

	return floor
}

// TestParseFloor_Errors verifies grid validation surfaces through parsing.
func TestParseFloor_Errors(t *testing.T) {
	if _, err := day04.ParseFloor(nil); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Fatalf("ParseFloor(nil): got %v; want ErrEmptyGrid", err)
	}
	if _, err := day04.ParseFloor([]string{".@", ".z"}); !errors.Is(err, grid.ErrInvalidCell) {
		t.Fatalf("ParseFloor(bad cell): got %v; want ErrInvalidCell", err)
	}
}

// TestFloor_Accessibility verifies the neighbor threshold on a ring of
// rolls: corners see two occupied neighbors, edge rolls see four.
func TestFloor_Accessibility(t *testing.T) {
	floor := mustFloor(t, []string{
		"@@@",
		"@.@",
		"@@@",
	})

	if got := floor.RollCount(); got != 8 {
		t.Fatalf("RollCount = %d; want 8", got)
	}
	if got := floor.AccessibleRollCount(); got != 4 {
		t.Fatalf("AccessibleRollCount = %d; want 4", got)
	}
	if !floor.IsAccessible(0, 0) {
		t.Fatal("corner roll should be accessible")
	}
	if floor.IsAccessible(0, 1) {
		t.Fatal("edge roll sees four neighbors and should not be accessible")
	}
}

// TestFloor_String marks accessible rolls.
func TestFloor_String(t *testing.T) {
	floor := mustFloor(t, []string{
		"@@@",
		"@.@",
		"@@@",
	})

	want := "x@x\n@.@\nx@x\n"
	if got := floor.String(); got != want {
		t.Fatalf("String() = %q; want %q", got, want)
	}
}

// TestRemoveAccessibleRolls_ClearsRing verifies wave-by-wave removal
// empties a ring completely.
func TestRemoveAccessibleRolls_ClearsRing(t *testing.T) {
	floor := mustFloor(t, []string{
		"@@@",
		"@.@",
		"@@@",
	})

	floor.RemoveAccessibleRolls()
	if got := floor.RollCount(); got != 0 {
		t.Fatalf("RollCount after removal = %d; want 0", got)
	}
}

// TestRemoveAccessibleRolls_DenseCoreSurvives verifies removal halts once
// no roll qualifies, leaving the crowded interior in place.
func TestRemoveAccessibleRolls_DenseCoreSurvives(t *testing.T) {
	floor := mustFloor(t, []string{
		"@@@@",
		"@@@@",
		"@@@@",
		"@@@@",
	})

	floor.RemoveAccessibleRolls()
	// Only the four corners ever become accessible.
	if got := floor.RollCount(); got != 12 {
		t.Fatalf("RollCount after removal = %d; want 12", got)
	}
}

// TestRun_Output locks the full report format.
func TestRun_Output(t *testing.T) {
	var out bytes.Buffer
	if err := day04.Run([]string{"@@@", "@.@", "@@@"}, &out); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}

	want := strings.Join([]string{
		"Factory Floor: ",
		"x@x",
		"@.@",
		"x@x",
		"",
		"Roll Count: 8",
		"Accessible Rolls: 4",
		"",
		"--------------------------------",
		"",
		"Final Factory Floor: ",
		"...",
		"...",
		"...",
		"",
		"Final roll count: 0",
		"Removed rolls: 8",
		"",
	}, "\n")
	if got := out.String(); got != want {
		t.Fatalf("Run output = %q; want %q", got, want)
	}
}
