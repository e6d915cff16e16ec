package primitives

import (
	"errors"
	"fmt"

	"github.com/comalice/circstatx"
)

// ParamConfig is one named distribution.
type ParamConfig struct {
	Name          string  `json:"name" yaml:"name"`
	Location      float64 `json:"location" yaml:"location"`
	Concentration float64 `json:"concentration" yaml:"concentration"`
}

// Validate checks the name and the parameters.
func (p ParamConfig) Validate() error {
	if p.Name == "" {
		return errors.New("distribution name is required")
	}
	if _, err := p.Distribution(); err != nil {
		return err
	}
	return nil
}

// Distribution constructs the circstatx value for p.
func (p ParamConfig) Distribution() (circstatx.VonMises, error) {
	return circstatx.New(p.Location, p.Concentration)
}

// ParamSet is a named collection of distributions and the evaluator settings
// to use for them. Zero Terms and an empty Domain mean the evaluator defaults.
type ParamSet struct {
	Version       string        `json:"version,omitempty" yaml:"version,omitempty"`
	Name          string        `json:"name" yaml:"name"`
	Domain        string        `json:"domain,omitempty" yaml:"domain,omitempty"`
	Terms         int           `json:"terms,omitempty" yaml:"terms,omitempty"`
	Distributions []ParamConfig `json:"distributions" yaml:"distributions"`
}

// Validate validates the set:
// - Non-empty name and at least one distribution
// - Known domain policy, non-negative terms
// - Every distribution valid, names unique
func (s *ParamSet) Validate() error {
	if s.Name == "" {
		return errors.New("parameter set name is required")
	}
	if len(s.Distributions) == 0 {
		return errors.New("distributions list is required and cannot be empty")
	}
	if _, err := circstatx.ParseDomainPolicy(s.Domain); err != nil {
		return err
	}
	if s.Terms < 0 {
		return fmt.Errorf("terms %d must be >= 0", s.Terms)
	}

	seen := make(map[string]bool, len(s.Distributions))
	for i, p := range s.Distributions {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("distribution %d (%q) validation failed: %w", i, p.Name, err)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate distribution name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Options translates Terms and Domain into evaluator options.
func (s *ParamSet) Options() ([]circstatx.Option, error) {
	policy, err := circstatx.ParseDomainPolicy(s.Domain)
	if err != nil {
		return nil, err
	}
	opts := []circstatx.Option{circstatx.WithDomainPolicy(policy)}
	if s.Terms > 0 {
		opts = append(opts, circstatx.WithTerms(s.Terms))
	}
	return opts, nil
}

// Find returns the distribution named name.
func (s *ParamSet) Find(name string) (ParamConfig, error) {
	for _, p := range s.Distributions {
		if p.Name == name {
			return p, nil
		}
	}
	return ParamConfig{}, fmt.Errorf("distribution %q not found in set %q", name, s.Name)
}
