package internal

// Point is a vertex in 2D real space. All points involved with the
// approximation are pointers, and a point is never mutated once it enters a
// region: propagation and Minkowski sums allocate fresh points, so callers
// can rely on exact equality of their inputs afterwards.
type Point struct {
	X float64
	Y float64
}

// Matrix is a row-major 2x2 flow matrix for the linear ODE x' = flow * x.
type Matrix [2][2]float64

// Apply maps p through the matrix as a linear map, returning a new point.
func (m Matrix) Apply(p *Point) *Point {
	return &Point{
		X: m[0][0]*p.X + m[0][1]*p.Y,
		Y: m[1][0]*p.X + m[1][1]*p.Y,
	}
}

// Polytope is a named V-representation. After hull reduction the vertex list
// is minimal (every point is a hull vertex) and in counterclockwise
// traversal order.
type Polytope struct {
	Name     string
	Vertices []*Point
}
