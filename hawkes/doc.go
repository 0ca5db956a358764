// Package hawkes evaluates and simulates multivariate Hawkes processes with
// exponentially decaying excitation.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - event.go: Event and Realization types shared by both halves
//   - likelihood.go: exact O(N·K) log-likelihood of an observed realization
//   - simulate.go: exact sampling via the branching (cluster) representation
//
// # Architecture
//
// The two halves are independent: Simulate produces a Realization, and
// ComputeLogLikelihood consumes one; neither calls the other. Supporting
// concerns live alongside them:
//   - params.go / spec.go: model parameters, validation, YAML loading
//   - sampler.go / offspring.go: primitive draws and per-parent offspring
//   - rng.go: seeded, per-subsystem partitioned random sources
//   - hawkes/trace: pure-data recording of the cluster structure
//
// All randomness flows through explicitly passed *rand.Rand handles derived
// from a SimulationKey, so runs are bit-for-bit reproducible and independent
// simulations can safely run on separate goroutines as long as each owns its
// own key.
package hawkes
