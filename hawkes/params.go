package hawkes

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Params holds the model parameters of a K-variate Hawkes process with
// exponential kernel. A[j][k] scales how strongly an event of process j
// raises process k's intensity; excitation decays as exp(-Theta·Δt).
type Params struct {
	Mu    []float64   // background intensities, length K, each >= 0
	A     [][]float64 // infectivity matrix, K×K, each entry >= 0
	Theta float64     // kernel decay rate, > 0
}

// NumProcesses returns K, the number of component processes.
func (p Params) NumProcesses() int {
	return len(p.Mu)
}

// Validate checks the Params invariants. It returns an InvalidInputError
// naming the offending field before any computation uses the parameters.
func (p Params) Validate() error {
	k := len(p.Mu)
	if k == 0 {
		return &InvalidInputError{Field: "mu", Reason: "at least one process required"}
	}
	for i, m := range p.Mu {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return &InvalidInputError{Field: fmt.Sprintf("mu[%d]", i), Reason: fmt.Sprintf("must be a finite number, got %f", m)}
		}
		if m < 0 {
			return &InvalidInputError{Field: fmt.Sprintf("mu[%d]", i), Reason: fmt.Sprintf("must be non-negative, got %f", m)}
		}
	}
	if len(p.A) != k {
		return &InvalidInputError{Field: "a", Reason: fmt.Sprintf("must have %d rows to match mu, got %d", k, len(p.A))}
	}
	for j, row := range p.A {
		if len(row) != k {
			return &InvalidInputError{Field: fmt.Sprintf("a[%d]", j), Reason: fmt.Sprintf("must have %d columns, got %d", k, len(row))}
		}
		for i, a := range row {
			if math.IsNaN(a) || math.IsInf(a, 0) {
				return &InvalidInputError{Field: fmt.Sprintf("a[%d][%d]", j, i), Reason: fmt.Sprintf("must be a finite number, got %f", a)}
			}
			if a < 0 {
				return &InvalidInputError{Field: fmt.Sprintf("a[%d][%d]", j, i), Reason: fmt.Sprintf("must be non-negative, got %f", a)}
			}
		}
	}
	if math.IsNaN(p.Theta) || p.Theta <= 0 {
		return &InvalidInputError{Field: "theta", Reason: fmt.Sprintf("must be positive, got %f", p.Theta)}
	}
	return nil
}

// SpectralGain returns the spectral radius of the infectivity matrix A,
// i.e. the effective gain of the branching process (mean total offspring per
// event along the dominant direction). The cluster representation dies out
// almost surely iff the gain is < 1; Simulate warns when it is not.
//
// Call Validate first: the result is unspecified for malformed A.
func (p Params) SpectralGain() float64 {
	k := len(p.A)
	if k == 0 {
		return 0
	}
	dense := mat.NewDense(k, k, nil)
	for j, row := range p.A {
		dense.SetRow(j, row)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(dense, mat.EigenNone); !ok {
		// Non-convergence is effectively unreachable for small non-negative
		// matrices; report the conservative bound instead of panicking.
		return math.Inf(1)
	}
	radius := 0.0
	for _, v := range eig.Values(nil) {
		if r := cmplx.Abs(v); r > radius {
			radius = r
		}
	}
	return radius
}

// validateHorizon checks the observation horizon shared by both halves.
func validateHorizon(horizon float64) error {
	if math.IsNaN(horizon) || math.IsInf(horizon, 0) || horizon <= 0 {
		return &InvalidInputError{Field: "horizon", Reason: fmt.Sprintf("must be a finite positive number, got %f", horizon)}
	}
	return nil
}
