package circstatx

import "github.com/comalice/circstatx/internal/bessel"

// BesselProvider supplies exponentially scaled modified Bessel functions of
// the first kind. Implementations must be safe for concurrent use and must
// report failure with an error instead of returning a placeholder value.
type BesselProvider interface {
	// ScaledSequence fills dst[k] with e^{-x}·I_{k+1}(x) for k in [0, len(dst)).
	ScaledSequence(x float64, dst []float64) error
	// ScaledI0 returns e^{-x}·I_0(x).
	ScaledI0(x float64) (float64, error)
}

// DefaultProvider returns the built-in provider backed by internal/bessel.
func DefaultProvider() BesselProvider {
	return besselProvider{}
}

type besselProvider struct{}

func (besselProvider) ScaledSequence(x float64, dst []float64) error {
	_, err := bessel.ScaledSequenceInto(x, dst)
	return err
}

func (besselProvider) ScaledI0(x float64) (float64, error) {
	return bessel.ScaledI0(x)
}
