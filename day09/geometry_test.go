package day09

import "testing"

// TestValidEdge_Square checks edge validity against a plain 10 by 10 tile
// loop: boundary edges and interior chords are valid, edges poking past the
// loop are not.
func TestValidEdge_Square(t *testing.T) {
	floor, err := ParseFloor([]string{"0,0", "10,0", "10,10", "0,10"})
	if err != nil {
		t.Fatalf("ParseFloor: unexpected error %v", err)
	}

	cases := []struct {
		a, b  point
		valid bool
	}{
		// Full boundary edges.
		{point{0, 0}, point{10, 0}, true},
		{point{10, 0}, point{10, 10}, true},
		{point{10, 10}, point{0, 10}, true},
		{point{0, 10}, point{0, 0}, true},

		// Partial boundary edges.
		{point{5, 0}, point{10, 0}, true},
		{point{10, 5}, point{10, 10}, true},
		{point{10, 10}, point{5, 10}, true},
		{point{5, 10}, point{5, 0}, true},

		// Interior chords.
		{point{2, 0}, point{8, 0}, true},
		{point{10, 2}, point{10, 8}, true},
		{point{8, 10}, point{2, 10}, true},
		{point{0, 8}, point{0, 2}, true},

		// Edges extending past the loop.
		{point{0, 0}, point{15, 0}, false},
		{point{10, 0}, point{10, 15}, false},
		{point{10, 10}, point{-5, 10}, false},
		{point{0, 10}, point{0, -5}, false},
	}
	for _, tc := range cases {
		if got := floor.validEdge(axisEdge{a: tc.a, b: tc.b}); got != tc.valid {
			t.Errorf("validEdge(%v -> %v) = %t; want %t", tc.a, tc.b, got, tc.valid)
		}
	}
}

func TestRectangleCorners(t *testing.T) {
	got := rectangleCorners(point{3, 7}, point{1, 2})
	want := [4]point{{1, 2}, {3, 2}, {3, 7}, {1, 7}}
	if got != want {
		t.Fatalf("rectangleCorners = %v; want %v", got, want)
	}
}

func TestOrientation(t *testing.T) {
	a, b := point{0, 0}, point{10, 0}
	if got := orientation(a, b, point{5, 3}); got <= 0 {
		t.Fatalf("orientation of left point = %d; want > 0", got)
	}
	if got := orientation(a, b, point{5, -3}); got >= 0 {
		t.Fatalf("orientation of right point = %d; want < 0", got)
	}
	if got := orientation(a, b, point{20, 0}); got != 0 {
		t.Fatalf("orientation of collinear point = %d; want 0", got)
	}
}
