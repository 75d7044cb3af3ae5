package internal

import "math"

// Record names follow the convention used in reachability-analysis
// write-ups: I is the initial valuation and Omega_1 the first enclosure.
const (
	NameInitial   = "Initial Valuation I"
	NameFlowpipe  = "mat_exp(flow) * I"
	NameEnclosure = "Omega_1: convHull(mink_sum(mat_exp(flow) * I, bloat), I)"
	NameBloating  = "Bloating"
)

// Approx computes the one-step flowpipe over-approximation. It propagates
// every vertex of the initial region through exp(stepSize * flow), bloats
// the result with the Minkowski sum of the bloating region when one is
// given, unions the initial region back in to form the enclosure, and
// hull-reduces every emitted record independently.
//
// Records come back in fixed order: initial region, propagated region,
// enclosure, and (only when a bloating region was given) the bloating
// region itself. Panics with one of the typed errors on invalid input,
// degenerate geometry, or numerical failure; the public API recovers.
func Approx(initial []*Point, flow Matrix, bloating []*Point, stepSize float64) []Polytope {
	validateInput(initial, bloating, stepSize)

	m := MatrixExp(flow, stepSize)
	flowpipe := make([]*Point, len(initial))
	for i, v := range initial {
		flowpipe[i] = m.Apply(v)
	}

	// Bloating by brute force: the hull of all pairwise sums equals the
	// true Minkowski sum of two convex sets, so enumerating
	// |flowpipe| x |bloating| candidates and hull-reducing is correct, if
	// quadratic. Vertex counts in 2D hybrid-automaton analysis are small.
	bloated := flowpipe
	if len(bloating) > 0 {
		bloated = make([]*Point, 0, len(flowpipe)*len(bloating))
		for _, p := range flowpipe {
			for _, b := range bloating {
				bloated = append(bloated, p.Add(b))
			}
		}
	}

	// The enclosure must contain the initial set as well as the propagated
	// one, so the whole initial region is unioned in, not just its boundary.
	enclosure := make([]*Point, 0, len(bloated)+len(initial))
	enclosure = append(enclosure, bloated...)
	enclosure = append(enclosure, initial...)

	polytopes := []Polytope{
		{Name: NameInitial, Vertices: initial},
		{Name: NameFlowpipe, Vertices: flowpipe},
		{Name: NameEnclosure, Vertices: enclosure},
	}
	if len(bloating) > 0 {
		polytopes = append(polytopes, Polytope{Name: NameBloating, Vertices: bloating})
	}

	for i := range polytopes {
		polytopes[i].Vertices = ConvexHull(polytopes[i].Vertices)
	}
	return polytopes
}

func validateInput(initial, bloating []*Point, stepSize float64) {
	if math.IsNaN(stepSize) || math.IsInf(stepSize, 0) || stepSize <= 0 {
		invalidf("step size must be a positive finite number, got %v", stepSize)
	}
	for _, p := range initial {
		if !p.Finite() {
			invalidf("initial region contains non-finite point (%v, %v)", p.X, p.Y)
		}
	}
	for _, p := range bloating {
		if !p.Finite() {
			invalidf("bloating region contains non-finite point (%v, %v)", p.X, p.Y)
		}
	}
}
