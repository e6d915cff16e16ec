// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/comalice/circstatx/internal/primitives"
)

// Concentrations spans the working range from near-uniform to sharply peaked.
var Concentrations = []float64{0.1, 1, 10, 100, 1000}

// GenPoints returns n evenly spaced interior points of (μ−π, μ+π).
func GenPoints(location float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = location - math.Pi + 2*math.Pi*float64(i+1)/float64(n+1)
	}
	return xs
}

// GenParamSet creates a set of n distributions with concentrations cycling
// through Concentrations.
func GenParamSet(n int) primitives.ParamSet {
	if n < 1 {
		n = 1
	}
	set := primitives.ParamSet{
		Name:          fmt.Sprintf("bench_%d", n),
		Distributions: make([]primitives.ParamConfig, n),
	}
	for i := range set.Distributions {
		set.Distributions[i] = primitives.ParamConfig{
			Name:          fmt.Sprintf("d%d", i),
			Location:      math.Mod(float64(i)*0.7, 2*math.Pi) - math.Pi,
			Concentration: Concentrations[i%len(Concentrations)],
		}
	}
	return set
}

// GenParamSetYAML generates YAML bytes for a set of n distributions.
func GenParamSetYAML(n int) []byte {
	set := GenParamSet(n)
	data, err := yaml.Marshal(set)
	if err != nil {
		panic(err)
	}
	return data
}
