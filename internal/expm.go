package internal

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MatrixExp computes exp(step * flow), the solution operator of the ODE
// x' = flow * x over one step. gonum's Exp uses scaling and squaring with
// Padé approximants, which stays stable where a truncated Taylor series
// would blow up for eigenvalues of larger magnitude.
//
// Panics with a NumericalFailureError if any entry of the result is
// non-finite (for example after overflow on a strongly expanding flow).
func MatrixExp(flow Matrix, step float64) Matrix {
	scaled := mat.NewDense(2, 2, []float64{
		step * flow[0][0], step * flow[0][1],
		step * flow[1][0], step * flow[1][1],
	})
	var exp mat.Dense
	exp.Exp(scaled)

	var out Matrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v := exp.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				numericalf("matrix exponential produced non-finite entry %v at (%d,%d)", v, i, j)
			}
			out[i][j] = v
		}
	}
	return out
}
