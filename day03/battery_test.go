package day03_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ffoxdd/advent-of-code-2025/day03"
)

// TestParseBanks covers acceptance and the three rejection classes.
func TestParseBanks(t *testing.T) {
	banks, err := day03.ParseBanks([]string{"123456789123"})
	if err != nil {
		t.Fatalf("ParseBanks: unexpected error %v", err)
	}
	if len(banks) != 1 || banks[0].String() != "123456789123" {
		t.Fatalf("ParseBanks = %v; want one bank 123456789123", banks)
	}

	for _, bad := range []string{
		"12345678912",  // eleven batteries
		"123456789120", // zero joltage
		"12345678912a", // not a digit
	} {
		if _, err := day03.ParseBanks([]string{bad}); !errors.Is(err, day03.ErrBadBank) {
			t.Fatalf("ParseBanks(%q): got %v; want ErrBadBank", bad, err)
		}
	}
}

// TestMaximumJoltage exercises the greedy slot filling.
func TestMaximumJoltage(t *testing.T) {
	cases := []struct {
		bank string
		want uint64
	}{
		// Exactly twelve batteries: no choice at all.
		{"123456789123", 123456789123},
		// The nine is only reachable by skipping one of the ones.
		{"1111111111119", 111111111119},
		// Skipping the leading one buys the nine up front.
		{"1911111111111", 911111111111},
		// Ties pick the leftmost, keeping the second two reachable.
		{"2211111111111", 221111111111},
	}

	for _, tc := range cases {
		banks, err := day03.ParseBanks([]string{tc.bank})
		if err != nil {
			t.Fatalf("ParseBanks(%q): unexpected error %v", tc.bank, err)
		}
		if got := banks[0].MaximumJoltage(); got != tc.want {
			t.Fatalf("MaximumJoltage(%q) = %d; want %d", tc.bank, got, tc.want)
		}
	}
}

// TestSum totals across banks.
func TestSum(t *testing.T) {
	banks, err := day03.ParseBanks([]string{"111111111111", "222222222222"})
	if err != nil {
		t.Fatalf("ParseBanks: unexpected error %v", err)
	}
	if got := day03.Sum(banks); got != 333333333333 {
		t.Fatalf("Sum = %d; want 333333333333", got)
	}
}

// TestRun_Output locks the exact output format.
func TestRun_Output(t *testing.T) {
	var out bytes.Buffer
	if err := day03.Run([]string{"123456789123"}, &out); err != nil {
		t.Fatalf("Run: unexpected error %v", err)
	}
	if got, want := out.String(), "Sum: 123456789123\n"; got != want {
		t.Fatalf("Run output = %q; want %q", got, want)
	}
}
