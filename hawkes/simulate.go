package hawkes

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hawkes-sim/hawkes-sim/hawkes/trace"
)

// Default safety caps for the branching loop. Subcritical models die out
// far below these; supercritical ones trip them instead of running forever.
const (
	DefaultMaxGenerations = 10_000
	DefaultMaxEvents      = 10_000_000
)

// Limits bounds a single simulation run. Zero values select the defaults;
// negative values are invalid.
type Limits struct {
	MaxGenerations int
	MaxEvents      int
}

func (l Limits) validate() error {
	if l.MaxGenerations < 0 {
		return &InvalidInputError{Field: "limits.max_generations", Reason: fmt.Sprintf("must be non-negative, got %d", l.MaxGenerations)}
	}
	if l.MaxEvents < 0 {
		return &InvalidInputError{Field: "limits.max_events", Reason: fmt.Sprintf("must be non-negative, got %d", l.MaxEvents)}
	}
	return nil
}

func (l Limits) withDefaults() Limits {
	if l.MaxGenerations == 0 {
		l.MaxGenerations = DefaultMaxGenerations
	}
	if l.MaxEvents == 0 {
		l.MaxEvents = DefaultMaxEvents
	}
	return l
}

// Simulate draws one exact realization of the process on [0, horizon) using
// the branching representation: immigrants arrive as a Poisson process at the
// background rates, and every event independently spawns Poisson offspring
// through SampleOffspring until a generation comes up empty. The result is
// sorted ascending in time and is a deterministic function of key.
//
// Termination before the caps is only guaranteed almost surely for
// subcritical models (SpectralGain < 1); a supercritical run ends with a
// ResourceExhaustedError once a cap trips.
func Simulate(key SimulationKey, p Params, horizon float64, limits Limits) (Realization, error) {
	return SimulateTraced(key, p, horizon, limits, nil)
}

// SimulateTraced is Simulate with per-generation recording into ct.
// A nil ct disables recording.
func SimulateTraced(key SimulationKey, p Params, horizon float64, limits Limits, ct *trace.ClusterTrace) (Realization, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := validateHorizon(horizon); err != nil {
		return nil, err
	}
	if err := limits.validate(); err != nil {
		return nil, err
	}
	limits = limits.withDefaults()

	if gain := p.SpectralGain(); gain >= 1 {
		logrus.Warnf("branching gain %.3f >= 1; simulation may not die out before hitting limits", gain)
	}

	prng := NewPartitionedRNG(key)
	immigrantRNG := prng.ForSubsystem(SubsystemImmigrants)
	offspringRNG := prng.ForSubsystem(SubsystemOffspring)

	// Generation 0: Poisson(mu_k * horizon) immigrants per process, each
	// placed uniformly on [0, horizon).
	var generation []Event
	for k, m := range p.Mu {
		n := poissonRand(immigrantRNG, m*horizon)
		for i := 0; i < n; i++ {
			generation = append(generation, Event{Time: horizon * immigrantRNG.Float64(), Mark: k})
		}
	}
	ct.Record(0, 0, len(generation))

	all := make(Realization, 0, len(generation))
	all = append(all, generation...)
	genIndex := 0
	for len(generation) > 0 {
		if len(all) > limits.MaxEvents {
			return nil, &ResourceExhaustedError{Generations: genIndex, Events: len(all), Limit: "events"}
		}
		genIndex++
		if genIndex > limits.MaxGenerations {
			return nil, &ResourceExhaustedError{Generations: genIndex, Events: len(all), Limit: "generations"}
		}

		var next []Event
		for _, parent := range generation {
			children := SampleOffspring(offspringRNG, parent.Time, p.A[parent.Mark], p.Theta, horizon)
			next = append(next, children...)
		}
		ct.Record(genIndex, len(generation), len(next))
		all = append(all, next...)
		generation = next
	}

	sortByTime(all)
	return all, nil
}
