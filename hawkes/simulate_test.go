package hawkes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/hawkes-sim/hawkes-sim/hawkes/trace"
)

func TestSimulate_SortedAndWithinWindow(t *testing.T) {
	p := Params{
		Mu:    []float64{0.5, 0.8},
		A:     [][]float64{{0.3, 0.1}, {0.2, 0.2}},
		Theta: 1.5,
	}
	horizon := 50.0
	for seed := int64(0); seed < 20; seed++ {
		r, err := Simulate(NewSimulationKey(seed), p, horizon, Limits{})
		require.NoError(t, err)
		for i, e := range r {
			if e.Time < 0 || e.Time >= horizon {
				t.Fatalf("seed %d: event %d at %f outside [0, %f)", seed, i, e.Time, horizon)
			}
			if i > 0 && e.Time < r[i-1].Time {
				t.Fatalf("seed %d: event %d at %f precedes event %d at %f", seed, i, e.Time, i-1, r[i-1].Time)
			}
			if e.Mark < 0 || e.Mark >= 2 {
				t.Fatalf("seed %d: event %d has mark %d outside [0, 2)", seed, i, e.Mark)
			}
		}
	}
}

func TestSimulate_DeterministicGivenKey(t *testing.T) {
	p := Params{
		Mu:    []float64{1.0, 0.4},
		A:     [][]float64{{0.4, 0.1}, {0.2, 0.3}},
		Theta: 2.0,
	}
	r1, err := Simulate(NewSimulationKey(7), p, 30.0, Limits{})
	require.NoError(t, err)
	r2, err := Simulate(NewSimulationKey(7), p, 30.0, Limits{})
	require.NoError(t, err)
	assert.Equal(t, r1, r2)

	r3, err := Simulate(NewSimulationKey(8), p, 30.0, Limits{})
	require.NoError(t, err)
	assert.NotEqual(t, r1, r3, "different keys should produce different realizations")
}

func TestSimulate_PurePoissonCountMatchesRate(t *testing.T) {
	// With no excitation the realization is immigrant-only, so the event
	// count is Poisson(mu * horizon).
	p := Params{Mu: []float64{1.0}, A: [][]float64{{0}}, Theta: 1.0}
	horizon := 10.0

	runs := 2000
	counts := make([]float64, runs)
	for i := range counts {
		r, err := Simulate(NewSimulationKey(int64(i)), p, horizon, Limits{})
		require.NoError(t, err)
		counts[i] = float64(len(r))
	}
	mean := stat.Mean(counts, nil)
	assert.InDelta(t, 10.0, mean, 0.5, "mean immigrant count")
	variance := stat.Variance(counts, nil)
	assert.InDelta(t, 10.0, variance, 1.5, "immigrant count variance")
}

func TestSimulate_PurePoissonLikelihoodMatchesClosedForm(t *testing.T) {
	p := Params{Mu: []float64{1.0}, A: [][]float64{{0}}, Theta: 1.0}
	horizon := 10.0
	r, err := Simulate(NewSimulationKey(42), p, horizon, Limits{})
	require.NoError(t, err)
	require.NotEmpty(t, r)

	got, err := ComputeLogLikelihood(r.Times(), r.Marks(), p, horizon)
	require.NoError(t, err)

	// N*log(mu) - mu*T with mu = 1 collapses to -T.
	assert.InDelta(t, -horizon, got, 1e-12)
}

func TestSimulate_SimulatedRealizationEvaluatesUnderModel(t *testing.T) {
	p := Params{
		Mu:    []float64{0.6, 0.3},
		A:     [][]float64{{0.3, 0.2}, {0.1, 0.2}},
		Theta: 1.2,
	}
	horizon := 40.0
	r, err := Simulate(NewSimulationKey(11), p, horizon, Limits{})
	require.NoError(t, err)
	require.NotEmpty(t, r)

	ll, err := ComputeLogLikelihood(r.Times(), r.Marks(), p, horizon)
	require.NoError(t, err)
	want := bruteForceLogLikelihood(r.Times(), r.Marks(), p, horizon)
	assert.InEpsilon(t, want, ll, 1e-9)
}

func TestSimulate_ZeroBackgroundIsEmpty(t *testing.T) {
	p := Params{Mu: []float64{0, 0}, A: [][]float64{{0.5, 0.1}, {0.1, 0.5}}, Theta: 1.0}
	r, err := Simulate(NewSimulationKey(42), p, 100.0, Limits{})
	require.NoError(t, err)
	assert.Empty(t, r, "no immigrants means no cascade")
}

func TestSimulate_EventLimitTripsOnUnstableParameters(t *testing.T) {
	// Supercritical gain: the cascade grows until the event cap trips.
	p := Params{Mu: []float64{2.0}, A: [][]float64{{1.5}}, Theta: 1.0}

	_, err := Simulate(NewSimulationKey(42), p, 100.0, Limits{MaxEvents: 50})

	var exhausted *ResourceExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "events", exhausted.Limit)
	assert.Greater(t, exhausted.Events, 50)
}

func TestSimulate_GenerationLimitTrips(t *testing.T) {
	p := Params{Mu: []float64{1.0}, A: [][]float64{{1.2}}, Theta: 1.0}

	_, err := Simulate(NewSimulationKey(42), p, 100.0, Limits{MaxGenerations: 1, MaxEvents: 10_000_000})

	var exhausted *ResourceExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, "generations", exhausted.Limit)
}

func TestSimulate_InvalidInputs(t *testing.T) {
	valid := Params{Mu: []float64{0.5}, A: [][]float64{{0.2}}, Theta: 1.0}
	cases := []struct {
		name    string
		p       Params
		horizon float64
		limits  Limits
	}{
		{"no processes", Params{}, 10.0, Limits{}},
		{"non-positive horizon", valid, 0, Limits{}},
		{"negative generation limit", valid, 10.0, Limits{MaxGenerations: -1}},
		{"negative event limit", valid, 10.0, Limits{MaxEvents: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Simulate(NewSimulationKey(1), tc.p, tc.horizon, tc.limits)
			var invalidErr *InvalidInputError
			assert.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestSimulateTraced_RecordsClusterStructure(t *testing.T) {
	p := Params{
		Mu:    []float64{0.8},
		A:     [][]float64{{0.5}},
		Theta: 1.0,
	}
	ct := &trace.ClusterTrace{}
	r, err := SimulateTraced(NewSimulationKey(3), p, 30.0, Limits{}, ct)
	require.NoError(t, err)
	require.NotEmpty(t, ct.Generations)

	// Generation 0 is the immigrant population.
	assert.Equal(t, 0, ct.Generations[0].Index)
	assert.Equal(t, 0, ct.Generations[0].Parents)

	// Every recorded child count sums to the realization size, and each
	// generation's parent count is the previous generation's child count.
	total := 0
	for i, g := range ct.Generations {
		total += g.Children
		if i > 0 {
			assert.Equal(t, ct.Generations[i-1].Children, g.Parents, "generation %d", i)
		}
	}
	assert.Equal(t, len(r), total)

	summary := trace.Summarize(ct)
	assert.Equal(t, len(r), summary.TotalEvents)
	assert.Equal(t, ct.Generations[0].Children, summary.Immigrants)
}
