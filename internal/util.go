package internal

import "math"

const Tolerance = 1e-6

// Float comparisons are tolerance based. Vertices drift by a few ulps
// through the matrix exponential, and exact equality would misclassify
// points that are the same for every geometric purpose.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Add returns the pointwise sum as a new point.
func (p *Point) Add(q *Point) *Point {
	return &Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p *Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Cross product of OA and OB. Positive when O->A->B turns counterclockwise.
func Cross(o, a, b *Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
