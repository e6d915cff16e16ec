package circstatx

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidParameter = errors.New("invalid distribution parameter")
	ErrInvalidPoint     = errors.New("invalid evaluation point")
	ErrOutOfDomain      = errors.New("point outside principal range")
	ErrProviderFailure  = errors.New("bessel provider failure")
)

// VonMises is a von Mises distribution with location μ and concentration κ.
// The zero value is not a valid distribution; use New.
type VonMises struct {
	location      float64
	concentration float64
}

// New constructs a von Mises distribution. It fails with ErrInvalidParameter
// if either argument is NaN or concentration <= 0. Location is stored as given.
func New(location, concentration float64) (VonMises, error) {
	if math.IsNaN(location) {
		return VonMises{}, fmt.Errorf("location is NaN: %w", ErrInvalidParameter)
	}
	if math.IsNaN(concentration) || concentration <= 0 {
		return VonMises{}, fmt.Errorf("concentration %v must be > 0: %w", concentration, ErrInvalidParameter)
	}
	return VonMises{location: location, concentration: concentration}, nil
}

func (v VonMises) Location() float64      { return v.location }
func (v VonMises) Concentration() float64 { return v.concentration }

// Min returns −π, the lower end of the principal range.
func (v VonMises) Min() float64 { return -math.Pi }

// Max returns π, the upper end of the principal range.
func (v VonMises) Max() float64 { return math.Pi }

// CDF evaluates the cumulative distribution at x with the default evaluator.
func (v VonMises) CDF(x float64) (float64, error) {
	return defaultEvaluator.CDF(v, x)
}

// PDF evaluates the density at x with the default evaluator.
func (v VonMises) PDF(x float64) (float64, error) {
	return defaultEvaluator.PDF(v, x)
}

func (v VonMises) String() string {
	return fmt.Sprintf("VonMises(μ=%g, κ=%g)", v.location, v.concentration)
}
