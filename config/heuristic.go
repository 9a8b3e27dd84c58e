// Package config loads the tunable parameters both search drivers take,
// mirroring the Python original's HeuristicParams defaults over a
// gopkg.in/yaml.v3 file.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Heuristic bundles every heuristic-driver knob: iteration/stagnation
// bounds, the annealing cooling schedule, and an optional seed for
// reproducibility.
type Heuristic struct {
	MaxIterations int     `yaml:"maxIterations" mapstructure:"maxIterations"`
	MaxMoves      int     `yaml:"maxMoves" mapstructure:"maxMoves"`
	Temperature   float64 `yaml:"temperature" mapstructure:"temperature"`
	CoolingRate   float64 `yaml:"coolingRate" mapstructure:"coolingRate"`
	Seed          *int64  `yaml:"seed,omitempty" mapstructure:"seed"`
}

// Default returns the parameter set the original HeuristicParams request
// model ships with: 1000 iterations, 100 stagnation moves, starting
// temperature 1.0, cooling rate 0.99. This is the service's own
// caller-facing default, not the lower-level heuristic_solver function
// defaults (max_iter=100000, candidate_moves=500), which only apply when
// that solver is invoked directly rather than through the request layer
// this type mirrors.
func Default() Heuristic {
	return Heuristic{
		MaxIterations: 1000,
		MaxMoves:      100,
		Temperature:   1.0,
		CoolingRate:   0.99,
	}
}

// Load reads a YAML file at path, overlaying it onto Default() so a file
// that only overrides a subset of fields still produces a fully valid
// Heuristic.
func Load(path string) (Heuristic, error) {
	h := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Heuristic{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &h); err != nil {
		return Heuristic{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return h, nil
}

// FromOverrides decodes a generic map (as produced by a CLI's repeated
// --set k=v flags) onto Default(), via mapstructure's weakly-typed decoder
// so string-valued flag input ("0.99") still lands in a float64 field.
func FromOverrides(overrides map[string]interface{}) (Heuristic, error) {
	h := Default()

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &h,
	})
	if err != nil {
		return Heuristic{}, fmt.Errorf("config: build decoder: %w", err)
	}
	if err := decoder.Decode(overrides); err != nil {
		return Heuristic{}, fmt.Errorf("config: decode overrides: %w", err)
	}
	return h, nil
}

// Validate checks every heuristic parameter's bounds, per-field,
// aggregating every violation rather than stopping at the first.
func (h Heuristic) Validate() error {
	var errs []string
	if h.MaxIterations < 1 {
		errs = append(errs, "maxIterations must be >= 1")
	}
	if h.MaxMoves < 1 {
		errs = append(errs, "maxMoves must be >= 1")
	}
	if h.Temperature <= 0 {
		errs = append(errs, "temperature must be > 0")
	}
	if h.CoolingRate <= 0 || h.CoolingRate >= 1 {
		errs = append(errs, "coolingRate must be in (0, 1)")
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid heuristic parameters: %v", errs)
}
