package hawkes

import (
	"fmt"
	"math"
)

// ComputeLogLikelihood evaluates the exact log-likelihood of an observed
// realization on [0, horizon] under p. times and marks describe the same
// sorted event sequence; horizon must not precede the last event.
//
// The sum-over-history term of each process's intensity is carried in a
// per-process accumulator phi[k] that is decayed by the inter-event gap and
// absorbs the previous event into its own process's slot, so the whole
// evaluation is O(N·K) instead of the quadratic pairwise sum. The integrated
// intensity is corrected through the per-process compensator F[k], the sum
// over k's events of 1 - exp(-theta·(horizon - t)).
//
// All inputs are read-only; the accumulators are scoped to this call.
// A non-positive intensity at any event yields a DomainError.
func ComputeLogLikelihood(times []float64, marks []int, p Params, horizon float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	n := len(times)
	if n == 0 {
		return 0, &InvalidInputError{Field: "times", Reason: "at least one event required"}
	}
	if len(marks) != n {
		return 0, &InvalidInputError{Field: "marks", Reason: fmt.Sprintf("length %d does not match %d times", len(marks), n)}
	}
	k := p.NumProcesses()
	for i := 0; i < n; i++ {
		if math.IsNaN(times[i]) || math.IsInf(times[i], 0) {
			return 0, &InvalidInputError{Field: fmt.Sprintf("times[%d]", i), Reason: fmt.Sprintf("must be a finite number, got %f", times[i])}
		}
		if i == 0 && times[0] < 0 {
			return 0, &InvalidInputError{Field: "times[0]", Reason: fmt.Sprintf("must be non-negative, got %f", times[0])}
		}
		if i > 0 && times[i] < times[i-1] {
			return 0, &InvalidInputError{Field: fmt.Sprintf("times[%d]", i), Reason: fmt.Sprintf("%f precedes previous event at %f", times[i], times[i-1])}
		}
		if marks[i] < 0 || marks[i] >= k {
			return 0, &InvalidInputError{Field: fmt.Sprintf("marks[%d]", i), Reason: fmt.Sprintf("%d outside [0, %d)", marks[i], k)}
		}
	}
	if err := validateHorizon(horizon); err != nil {
		return 0, err
	}
	if horizon < times[n-1] {
		return 0, &InvalidInputError{Field: "horizon", Reason: fmt.Sprintf("%f precedes last event at %f", horizon, times[n-1])}
	}

	phi := make([]float64, k) // decayed influence of past events, per source process
	f := make([]float64, k)   // compensator, per source process

	// No history exists at the first event, so its intensity is exactly the
	// background rate.
	c0 := marks[0]
	if p.Mu[c0] <= 0 {
		return 0, &DomainError{Index: 0, Mark: c0, Lambda: p.Mu[c0]}
	}
	loglik := math.Log(p.Mu[c0])
	f[c0] += 1 - math.Exp(-p.Theta*(horizon-times[0]))

	for i := 1; i < n; i++ {
		ci := marks[i]
		decay := math.Exp(-p.Theta * (times[i] - times[i-1]))
		for j := range phi {
			phi[j] *= decay
		}
		// The previous event enters its own process's accumulator here,
		// already decayed by the gap it has aged.
		phi[marks[i-1]] += decay

		dot := 0.0
		for j := range phi {
			dot += p.A[j][ci] * phi[j]
		}
		lambda := p.Mu[ci] + p.Theta*dot
		if lambda <= 0 {
			return 0, &DomainError{Index: i, Mark: ci, Lambda: lambda}
		}
		loglik += math.Log(lambda)
		f[ci] += 1 - math.Exp(-p.Theta*(horizon-times[i]))
	}

	// Integrated-intensity correction: background mass plus the excitation
	// mass each source process injected, weighted by its infectivity row.
	for j := 0; j < k; j++ {
		loglik -= p.Mu[j] * horizon
		rowSum := 0.0
		for c := 0; c < k; c++ {
			rowSum += p.A[j][c]
		}
		loglik -= rowSum * f[j]
	}
	return loglik, nil
}
