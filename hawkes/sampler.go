package hawkes

import "math/rand"

// poissonRand samples a count from Poisson(mean) by counting unit-rate
// exponential arrivals until their sum passes mean. Exact for any mean,
// free of the exp(-mean) underflow of the inverse-transform method, and
// O(mean) per draw, which is fine at the rates the engine works with.
func poissonRand(rng *rand.Rand, mean float64) int {
	if mean <= 0 {
		return 0
	}
	n := 0
	for sum := rng.ExpFloat64(); sum < mean; sum += rng.ExpFloat64() {
		n++
	}
	return n
}

// expRand samples an inter-arrival offset from Exponential(rate).
func expRand(rng *rand.Rand, rate float64) float64 {
	return rng.ExpFloat64() / rate
}
