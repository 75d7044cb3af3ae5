package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs fn, converting a panic from this package back into an error the way
// the public API does. Foreign panics keep propagating.
func recoverApproxError(fn func()) (err error) {
	defer func() {
		recovered := HandleApproxPanicRecover(recover())
		if recovered != nil {
			err = recovered
		}
	}()
	fn()
	return nil
}

// Matches each expected coordinate pair against a distinct actual vertex
// within tolerance, ignoring order. Hull reduction is free to start its
// traversal anywhere, so tests should never depend on vertex order beyond
// what they explicitly check.
func assertSameVertices(t *testing.T, expected [][2]float64, actual []*Point) {
	t.Helper()
	require.Len(t, actual, len(expected))
	used := make([]bool, len(actual))
outer:
	for _, e := range expected {
		for i, a := range actual {
			if used[i] {
				continue
			}
			if Equal(a.X, e[0]) && Equal(a.Y, e[1]) {
				used[i] = true
				continue outer
			}
		}
		t.Fatalf("no vertex matches (%v, %v) in %v", e[0], e[1], coords(actual))
	}
}

func coords(points []*Point) [][2]float64 {
	result := make([][2]float64, len(points))
	for i, p := range points {
		result[i] = [2]float64{p.X, p.Y}
	}
	return result
}

// Inside-or-on-boundary check for a CCW hull, tolerance based.
func hullContains(hull []*Point, p *Point) bool {
	for i, vertex := range hull {
		next := hull[(i+1)%len(hull)]
		if Cross(vertex, next, p) < -Tolerance {
			return false
		}
	}
	return true
}

func unitSquare() []*Point {
	return []*Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestConvexHull_DropsInteriorAndEdgePoints(t *testing.T) {
	points := []*Point{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{0.5, 0.5}, // interior
		{0.5, 0},   // on an edge
		{1, 0.25},  // on an edge
	}
	hull := ConvexHull(points)
	// Counterclockwise from the lexicographically smallest vertex
	assert.Equal(t, []*Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, hull)
}

func TestConvexHull_InputOrderPreserved(t *testing.T) {
	points := []*Point{{1, 1}, {0, 0}, {0.5, 0.5}, {1, 0}, {0, 1}}
	ConvexHull(points)
	assert.Equal(t, []*Point{{1, 1}, {0, 0}, {0.5, 0.5}, {1, 0}, {0, 1}}, points)
}

func TestConvexHull_Idempotent(t *testing.T) {
	points := []*Point{
		{2, 0}, {0, 3}, {-1, 1}, {-2, -2}, {1, -1},
		{0, 0}, {0.5, 0.5}, {-1, 0},
	}
	once := ConvexHull(points)
	twice := ConvexHull(once)
	assert.Equal(t, once, twice)
}

func TestConvexHull_EveryVertexExtremal(t *testing.T) {
	points := []*Point{
		{0, 0}, {4, 0}, {4, 3}, {2, 5}, {0, 3},
		{1, 1}, {2, 2}, {3, 1}, {2, 0},
	}
	hull := ConvexHull(points)
	require.GreaterOrEqual(t, len(hull), 3)
	for i, vertex := range hull {
		others := make([]*Point, 0, len(hull)-1)
		others = append(others, hull[:i]...)
		others = append(others, hull[i+1:]...)
		rest := ConvexHull(others)
		assert.False(t, hullContains(rest, vertex),
			"vertex (%v, %v) is not extremal", vertex.X, vertex.Y)
	}
}

func TestConvexHull_RotatedSquare(t *testing.T) {
	// A square rotated by a weird angle keeps exactly four hull vertices.
	angle := math.Pi / 7
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	var points []*Point
	for _, p := range unitSquare() {
		points = append(points, &Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos})
	}
	points = append(points, &Point{0.5*cos - 0.5*sin, 0.5*sin + 0.5*cos})
	hull := ConvexHull(points)
	assert.Len(t, hull, 4)
}

func TestConvexHull_TooFewPoints(t *testing.T) {
	for _, points := range [][]*Point{
		nil,
		{{1, 2}},
		{{0, 0}, {1, 1}},
	} {
		err := recoverApproxError(func() { ConvexHull(points) })
		var degenerate *DegenerateGeometryError
		require.ErrorAs(t, err, &degenerate)
	}
}

func TestConvexHull_Collinear(t *testing.T) {
	err := recoverApproxError(func() {
		ConvexHull([]*Point{{0, 0}, {1, 0}, {2, 0}})
	})
	var degenerate *DegenerateGeometryError
	require.ErrorAs(t, err, &degenerate)

	// Vertical and diagonal lines, and coincident points, are just as degenerate
	err = recoverApproxError(func() {
		ConvexHull([]*Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}})
	})
	require.ErrorAs(t, err, &degenerate)

	err = recoverApproxError(func() {
		ConvexHull([]*Point{{1, 1}, {1, 1}, {1, 1}})
	})
	require.ErrorAs(t, err, &degenerate)
}

func TestConvexHull_DuplicateCorners(t *testing.T) {
	points := append(unitSquare(), &Point{0, 0}, &Point{1, 1})
	hull := ConvexHull(points)
	assertSameVertices(t, [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, hull)
}
