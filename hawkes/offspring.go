package hawkes

import "math/rand"

// SampleOffspring draws the immediate children of a single parent event.
// For each target process k it draws a Poisson(row[k]) count of children,
// each at parentTime plus an Exponential(theta) offset; children landing at
// or beyond horizon are discarded. row is the parent's infectivity row
// A[parentMark][:]. Returns nil when no draws survive.
//
// The only state touched is rng; parameters and the parent are read-only.
func SampleOffspring(rng *rand.Rand, parentTime float64, row []float64, theta, horizon float64) []Event {
	// Draw all counts first so the children slice is sized once.
	counts := make([]int, len(row))
	total := 0
	for k, mean := range row {
		counts[k] = poissonRand(rng, mean)
		total += counts[k]
	}
	if total == 0 {
		return nil
	}
	children := make([]Event, 0, total)
	for k, n := range counts {
		for i := 0; i < n; i++ {
			t := parentTime + expRand(rng, theta)
			if t >= horizon {
				continue
			}
			children = append(children, Event{Time: t, Mark: k})
		}
	}
	return children
}
