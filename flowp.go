// One-step flowpipe over-approximation for 2D linear hybrid automata.
//
// Given a polytopic initial region in V-representation, a flow matrix
// defining the linear ODE x' = flow * x, and an optional bloating region
// modeling bounded uncertainty, Approx produces named convex polytopes
// guaranteed to contain all trajectories after one time step. Every emitted
// V-representation is minimal: each point is a vertex of its polytope's
// convex hull.
package flowp

import "github.com/reachset/flowp/internal"

type Point = internal.Point
type Matrix = internal.Matrix
type Polytope = internal.Polytope

// Error kinds. Every failure of Approx is exactly one of these; match with
// errors.As. None of them is recoverable by retrying, since the computation
// is deterministic.
type DegenerateGeometryError = internal.DegenerateGeometryError
type NumericalFailureError = internal.NumericalFailureError
type InvalidInputError = internal.InvalidInputError

// Record names, in emission order. The Bloating record only appears when a
// non-empty bloating region was given.
const (
	NameInitial   = internal.NameInitial
	NameFlowpipe  = internal.NameFlowpipe
	NameEnclosure = internal.NameEnclosure
	NameBloating  = internal.NameBloating
)

// Renderer consumes the named polytope records instead of them being
// returned as data. The render package provides an implementation that
// draws filled, labeled polygons; anything that can draw polygons will do.
type Renderer interface {
	Render(polytopes []Polytope) error
}

type config struct {
	stepSize float64
	renderer Renderer
}

type Option func(*config)

// WithStepSize sets the time horizon of the step. A larger step means a
// larger, coarser flowpipe. Must be positive; defaults to 1.
func WithStepSize(stepSize float64) Option {
	return func(c *config) { c.stepSize = stepSize }
}

// WithRenderer forwards the resulting records to r instead of returning
// them. Approx then returns a nil slice and r's error, if any.
func WithRenderer(r Renderer) Option {
	return func(c *config) { c.renderer = r }
}

// Approx computes the one-step flowpipe over-approximation of the initial
// region under the given flow.
//
// The initial region must contain at least three non-collinear points. The
// bloating region may be empty, meaning no uncertainty. Records come back
// in fixed order: the initial region, the propagated region
// mat_exp(flow) * I, the enclosure Omega_1, and the bloating region when
// one was given, each hull-reduced to its minimal V-representation in
// counterclockwise order.
func Approx(initial []*Point, flow Matrix, bloating []*Point, opts ...Option) (result []Polytope, err error) {
	defer func() {
		recoveredErr := internal.HandleApproxPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	cfg := config{stepSize: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	polytopes := internal.Approx(initial, flow, bloating, cfg.stepSize)
	if cfg.renderer != nil {
		return nil, cfg.renderer.Render(polytopes)
	}
	return polytopes, nil
}
