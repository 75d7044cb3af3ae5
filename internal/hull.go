package internal

import "sort"

// ConvexHull reduces a V-representation to the minimal vertex set of its
// convex hull using Andrew's monotone chain, O(n log n). The result is in
// counterclockwise order starting from the lexicographically smallest
// vertex. Points in the interior or on the interior of a hull edge are
// dropped, so every returned point is extremal and reducing a second time
// is a no-op.
//
// Panics with a DegenerateGeometryError when the input has fewer than three
// points or zero area (all points collinear).
func ConvexHull(points []*Point) []*Point {
	if len(points) < 3 {
		degeneratef("convex hull needs at least 3 points, got %d", len(points))
	}

	// Sort a copy; callers rely on their vertex order staying put.
	sorted := make([]*Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	// The <= 0 pop discards collinear points, which is what keeps the
	// output minimal.
	var lower []*Point
	for _, p := range sorted {
		for len(lower) >= 2 && Cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []*Point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && Cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// The last point of each chain is the first point of the other.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		degeneratef("degenerate region: %d collinear points enclose zero area", len(points))
	}
	return hull
}
