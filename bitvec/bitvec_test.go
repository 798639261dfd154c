package bitvec_test

import (
	"errors"
	"testing"

	"github.com/ffoxdd/advent-of-code-2025/bitvec"
)

// TestNew_AllZero verifies a fresh vector has the requested length and no
// set bits.
func TestNew_AllZero(t *testing.T) {
	v := bitvec.New(10)
	if got := v.Len(); got != 10 {
		t.Fatalf("Len() = %d; want 10", got)
	}
	if got := v.OnesCount(); got != 0 {
		t.Fatalf("OnesCount() = %d; want 0", got)
	}
	for i := 0; i < 10; i++ {
		if v.Bit(i) {
			t.Fatalf("Bit(%d) = true; want false", i)
		}
	}
}

// TestFromIndices_RoundTrip verifies the requested bits, and only those,
// come back set.
func TestFromIndices_RoundTrip(t *testing.T) {
	v, err := bitvec.FromIndices(9, 0, 3, 8)
	if err != nil {
		t.Fatalf("FromIndices: unexpected error %v", err)
	}
	want := map[int]bool{0: true, 3: true, 8: true}
	for i := 0; i < v.Len(); i++ {
		if got := v.Bit(i); got != want[i] {
			t.Fatalf("Bit(%d) = %v; want %v", i, got, want[i])
		}
	}
	if got := v.OnesCount(); got != 3 {
		t.Fatalf("OnesCount() = %d; want 3", got)
	}
}

// TestFromIndices_OutOfRange verifies index validation at both ends.
func TestFromIndices_OutOfRange(t *testing.T) {
	if _, err := bitvec.FromIndices(4, 4); !errors.Is(err, bitvec.ErrIndexOutOfRange) {
		t.Fatalf("FromIndices(4, 4): got %v; want ErrIndexOutOfRange", err)
	}
	if _, err := bitvec.FromIndices(4, -1); !errors.Is(err, bitvec.ErrIndexOutOfRange) {
		t.Fatalf("FromIndices(4, -1): got %v; want ErrIndexOutOfRange", err)
	}
}

// TestFromBools_MatchesString verifies construction from a bool slice and
// the textual rendering.
func TestFromBools_MatchesString(t *testing.T) {
	v := bitvec.FromBools([]bool{true, false, false, true, true})
	if got := v.String(); got != "10011" {
		t.Fatalf("String() = %q; want %q", got, "10011")
	}
}

// TestXor_TogglesAndRestores verifies that applying a mask toggles the
// masked bits and that a second application restores the original.
func TestXor_TogglesAndRestores(t *testing.T) {
	v, err := bitvec.FromIndices(6, 1, 4)
	if err != nil {
		t.Fatalf("FromIndices: unexpected error %v", err)
	}
	mask, err := bitvec.FromIndices(6, 0, 1)
	if err != nil {
		t.Fatalf("FromIndices: unexpected error %v", err)
	}

	flipped := v.Xor(mask)
	if got := flipped.String(); got != "100010" {
		t.Fatalf("Xor: String() = %q; want %q", got, "100010")
	}
	if restored := flipped.Xor(mask); restored != v {
		t.Fatalf("Xor twice: got %v; want original %v", restored, v)
	}
}

// TestXor_LengthMismatchPanics verifies mixing lengths is rejected loudly.
func TestXor_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Xor with mismatched lengths did not panic")
		}
	}()
	bitvec.New(3).Xor(bitvec.New(4))
}

// TestVector_Comparable verifies Vectors behave as map keys: equal bits
// collide, different lengths do not.
func TestVector_Comparable(t *testing.T) {
	a := bitvec.FromBools([]bool{true, false, true})
	b, err := bitvec.FromIndices(3, 0, 2)
	if err != nil {
		t.Fatalf("FromIndices: unexpected error %v", err)
	}
	if a != b {
		t.Fatalf("equal vectors compare unequal: %v vs %v", a, b)
	}

	seen := map[bitvec.Vector]int{a: 1}
	seen[b]++
	if len(seen) != 1 || seen[a] != 2 {
		t.Fatalf("map collision failed: %v", seen)
	}

	// Same bit pattern, different declared length.
	if bitvec.New(3) == bitvec.New(4) {
		t.Fatal("vectors of different lengths compare equal")
	}
}
