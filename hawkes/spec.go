package hawkes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelSpec is the top-level model configuration.
// Loaded from YAML via LoadModelSpec(path).
type ModelSpec struct {
	Seed    int64       `yaml:"seed"`
	Horizon float64     `yaml:"horizon"`
	Mu      []float64   `yaml:"mu"`
	A       [][]float64 `yaml:"a"`
	Theta   float64     `yaml:"theta"`
	Limits  LimitsSpec  `yaml:"limits,omitempty"`
}

// LimitsSpec configures the simulation safety caps. Zero values select the
// package defaults.
type LimitsSpec struct {
	MaxGenerations int `yaml:"max_generations,omitempty"`
	MaxEvents      int `yaml:"max_events,omitempty"`
}

// LoadModelSpec reads and parses a ModelSpec from a YAML file.
// The spec is validated before being returned.
func LoadModelSpec(path string) (*ModelSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model spec %s: %w", path, err)
	}
	var spec ModelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing model spec %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model spec %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks that all fields in the spec are valid.
func (s *ModelSpec) Validate() error {
	if err := s.Params().Validate(); err != nil {
		return err
	}
	if err := validateHorizon(s.Horizon); err != nil {
		return err
	}
	if err := s.Limits.toLimits().validate(); err != nil {
		return err
	}
	return nil
}

// Params extracts the model parameters from the spec.
func (s *ModelSpec) Params() Params {
	return Params{Mu: s.Mu, A: s.A, Theta: s.Theta}
}

func (l LimitsSpec) toLimits() Limits {
	return Limits{MaxGenerations: l.MaxGenerations, MaxEvents: l.MaxEvents}
}
