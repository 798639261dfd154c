package day09

// point is an integer position on the floor.
type point struct {
	x, y int64
}

// axisEdge is an axis-aligned segment between two points.
type axisEdge struct {
	a, b point
}

// withinOpenSpan reports whether test's start point lies strictly inside
// e's open span along e's own axis.
func (e axisEdge) withinOpenSpan(test axisEdge) bool {
	var lo, hi, v int64
	if e.a.x == e.b.x {
		lo, hi = minMax(e.a.y, e.b.y)
		v = test.a.y
	} else {
		lo, hi = minMax(e.a.x, e.b.x)
		v = test.a.x
	}

	return lo < v && v < hi
}

// leftIntersection reports whether test starts on or right of the directed
// line through e and ends strictly left of it, crossing inside e's open
// span.
func (e axisEdge) leftIntersection(test axisEdge) bool {
	if !e.withinOpenSpan(test) {
		return false
	}

	return orientation(e.a, e.b, test.a) <= 0 && orientation(e.a, e.b, test.b) > 0
}

// orientation returns the cross product of ab and ap: positive when p lies
// strictly left of the directed line through a and b, zero when collinear.
func orientation(a, b, p point) int64 {
	abx, aby := b.x-a.x, b.y-a.y
	apx, apy := p.x-a.x, p.y-a.y

	return abx*apy - aby*apx
}

// rectangleCorners lists the bounding rectangle of a and b, walked from the
// minimum corner.
func rectangleCorners(a, b point) [4]point {
	minX, maxX := minMax(a.x, b.x)
	minY, maxY := minMax(a.y, b.y)

	return [4]point{
		{minX, minY},
		{maxX, minY},
		{maxX, maxY},
		{minX, maxY},
	}
}

func minMax(a, b int64) (int64, int64) {
	if a < b {
		return a, b
	}

	return b, a
}
