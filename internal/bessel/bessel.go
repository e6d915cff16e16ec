package bessel

import (
	"errors"
	"fmt"
	"math"
)

// MaxArgument is the largest x the recurrence accepts. The number of
// recurrence steps grows with √x; past this point evaluation is refused
// rather than left to run unbounded.
const MaxArgument = 1e8

const (
	// accuracy controls how far above the highest significant order the
	// backward recurrence starts.
	accuracy = 80.0
	bigNo    = 1e10
	bigNoInv = 1e-10

	seriesCutoff = 1.0
)

var (
	ErrDomain   = errors.New("bessel: argument outside domain")
	ErrOverflow = errors.New("bessel: result not representable")
	ErrOrder    = errors.New("bessel: negative order")
)

// ScaledSequence returns e^{-x}·I_0(x) and the slice e^{-x}·I_k(x) for
// k = 1..n (index k-1).
func ScaledSequence(x float64, n int) (float64, []float64, error) {
	dst := make([]float64, n)
	i0, err := ScaledSequenceInto(x, dst)
	if err != nil {
		return 0, nil, err
	}
	return i0, dst, nil
}

// ScaledSequenceInto is ScaledSequence writing orders 1..len(dst) into dst.
// It returns e^{-x}·I_0(x).
func ScaledSequenceInto(x float64, dst []float64) (float64, error) {
	if err := checkArgument(x); err != nil {
		return 0, err
	}

	var i0 float64
	if x < seriesCutoff {
		i0 = scaledSeries(0, x)
		for k := range dst {
			dst[k] = scaledSeries(k+1, x)
		}
	} else {
		i0 = scaledMiller(x, dst)
	}

	if !finite(i0) || i0 <= 0 {
		return 0, fmt.Errorf("I0(%g): %w", x, ErrOverflow)
	}
	for k, v := range dst {
		if !finite(v) {
			return 0, fmt.Errorf("I%d(%g): %w", k+1, x, ErrOverflow)
		}
	}
	return i0, nil
}

// ScaledI0 returns e^{-x}·I_0(x).
func ScaledI0(x float64) (float64, error) {
	return ScaledSequenceInto(x, nil)
}

// ScaledIn returns e^{-x}·I_n(x).
func ScaledIn(n int, x float64) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("order %d: %w", n, ErrOrder)
	}
	if n == 0 {
		return ScaledI0(x)
	}
	dst := make([]float64, n)
	if _, err := ScaledSequenceInto(x, dst); err != nil {
		return 0, err
	}
	return dst[n-1], nil
}

// I0 returns the unscaled I_0(x). Overflows to an error for x beyond ~713.
func I0(x float64) (float64, error) {
	return In(0, x)
}

// In returns the unscaled I_n(x).
func In(n int, x float64) (float64, error) {
	v, err := ScaledIn(n, x)
	if err != nil {
		return 0, err
	}
	r := v * math.Exp(x)
	if !finite(r) {
		return 0, fmt.Errorf("I%d(%g): %w", n, x, ErrOverflow)
	}
	return r, nil
}

func checkArgument(x float64) error {
	switch {
	case math.IsNaN(x), math.IsInf(x, 0), x < 0:
		return fmt.Errorf("x=%g: %w", x, ErrDomain)
	case x > MaxArgument:
		return fmt.Errorf("x=%g exceeds %g: %w", x, MaxArgument, ErrOverflow)
	}
	return nil
}

// scaledSeries sums Σ_k (x/2)^{2k+n} / (k!·(k+n)!) and scales by e^{-x}.
func scaledSeries(n int, x float64) float64 {
	if x == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}

	half := x / 2
	var term float64
	if n == 0 {
		term = 1
	} else {
		lg, _ := math.Lgamma(float64(n + 1))
		lt := float64(n)*math.Log(half) - lg
		if lt < -745 {
			return 0
		}
		term = math.Exp(lt)
	}

	q := half * half
	sum := term
	for k := 1; term > sum*1e-17; k++ {
		term *= q / float64(k*(k+n))
		sum += term
	}
	return sum * math.Exp(-x)
}

// scaledMiller fills dst with e^{-x}·I_1..I_len(dst) and returns e^{-x}·I_0.
// x must be >= 1.
func scaledMiller(x float64, dst []float64) float64 {
	n := len(dst)
	top := math.Max(float64(n), x)
	start := n + int(math.Sqrt(accuracy*top)) + 16

	// ik holds the trial I_k, ikp the trial I_{k+1}.
	ikp, ik := 0.0, 1.0
	var sum float64
	for k := start; k > 0; k-- {
		if k <= n {
			dst[k-1] = ik
		}
		sum += ik

		ikm := ikp + (2*float64(k)/x)*ik
		ikp, ik = ik, ikm

		if math.Abs(ik) > bigNo {
			ik *= bigNoInv
			ikp *= bigNoInv
			sum *= bigNoInv
			for j := min(k-1, n); j < n; j++ {
				dst[j] *= bigNoInv
			}
		}
	}

	norm := ik + 2*sum
	for j := range dst {
		dst[j] /= norm
	}
	return ik / norm
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
