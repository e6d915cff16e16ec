package circstatx

import (
	"fmt"
	"math"
	"runtime"
	"strings"
)

// DefaultTerms is the default truncation order of the CDF series. I_j(κ)
// decays faster than geometrically once j exceeds κ, so 100 terms reach
// double precision for κ up to the low hundreds.
const DefaultTerms = 100

// DomainPolicy decides what happens to an offset d = x − μ outside [−π, π].
type DomainPolicy int

const (
	// DomainReject fails with ErrOutOfDomain.
	DomainReject DomainPolicy = iota
	// DomainWrap reduces d modulo 2π into [−π, π].
	DomainWrap
	// DomainUnbounded evaluates the series on d unchanged and does not clamp.
	DomainUnbounded
)

func (p DomainPolicy) String() string {
	switch p {
	case DomainReject:
		return "reject"
	case DomainWrap:
		return "wrap"
	case DomainUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("DomainPolicy(%d)", int(p))
	}
}

// ParseDomainPolicy parses "reject", "wrap" or "unbounded". The empty string
// yields DomainReject.
func ParseDomainPolicy(s string) (DomainPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return DomainReject, nil
	case "wrap":
		return DomainWrap, nil
	case "unbounded":
		return DomainUnbounded, nil
	}
	return DomainReject, fmt.Errorf("unknown domain policy %q", s)
}

// Evaluator computes CDF and PDF values. It is immutable once built and safe
// for concurrent use as long as its provider is.
type Evaluator struct {
	provider    BesselProvider
	terms       int
	policy      DomainPolicy
	concurrency int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithProvider replaces the Bessel provider. A nil provider is ignored.
func WithProvider(p BesselProvider) Option {
	return func(e *Evaluator) {
		if p != nil {
			e.provider = p
		}
	}
}

// WithTerms sets the series truncation order. Values below 1 are ignored.
func WithTerms(n int) Option {
	return func(e *Evaluator) {
		if n >= 1 {
			e.terms = n
		}
	}
}

// WithDomainPolicy sets how offsets outside [−π, π] are handled.
func WithDomainPolicy(p DomainPolicy) Option {
	return func(e *Evaluator) {
		e.policy = p
	}
}

// WithConcurrency bounds the goroutines CDFBatch uses. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(e *Evaluator) {
		if n >= 1 {
			e.concurrency = n
		}
	}
}

var defaultEvaluator = NewEvaluator()

// DefaultEvaluator returns the evaluator used by VonMises.CDF and VonMises.PDF.
func DefaultEvaluator() *Evaluator {
	return defaultEvaluator
}

// NewEvaluator builds an Evaluator with DefaultTerms, DomainReject and the
// built-in provider unless overridden.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		provider:    DefaultProvider(),
		terms:       DefaultTerms,
		policy:      DomainReject,
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Terms() int                 { return e.terms }
func (e *Evaluator) DomainPolicy() DomainPolicy { return e.policy }

// CDF returns P(X <= x) for dist.
//
// Provider errors are returned wrapped in ErrProviderFailure. Under
// DomainReject and DomainWrap the result is clamped to [0, 1]; truncation
// otherwise leaves residue of order 1e-16 at the ends of the range.
func (e *Evaluator) CDF(dist VonMises, x float64) (float64, error) {
	d, err := e.offset(dist, x)
	if err != nil {
		return 0, err
	}

	kappa := dist.concentration
	terms := make([]float64, e.terms)
	if err := e.provider.ScaledSequence(kappa, terms); err != nil {
		return 0, fmt.Errorf("I_1..I_%d(%g): %w: %w", e.terms, kappa, ErrProviderFailure, err)
	}
	i0, err := e.provider.ScaledI0(kappa)
	if err != nil {
		return 0, fmt.Errorf("I_0(%g): %w: %w", kappa, ErrProviderFailure, err)
	}
	if !(i0 > 0) || math.IsInf(i0, 0) {
		return 0, fmt.Errorf("I_0(%g) = %g: %w", kappa, i0, ErrProviderFailure)
	}

	var sum float64
	for j, ij := range terms {
		n := float64(j + 1)
		sum += ij * math.Sin(n*d) / n
	}

	p := 0.5 + (d+2*sum/i0)/(2*math.Pi)
	if e.policy != DomainUnbounded {
		p = math.Max(0, math.Min(1, p))
	}
	return p, nil
}

// PDF returns the density of dist at x, exp(κ·cos(x−μ)) / (2π·I_0(κ)),
// evaluated in scaled form.
func (e *Evaluator) PDF(dist VonMises, x float64) (float64, error) {
	d, err := e.offset(dist, x)
	if err != nil {
		return 0, err
	}

	kappa := dist.concentration
	i0, err := e.provider.ScaledI0(kappa)
	if err != nil {
		return 0, fmt.Errorf("I_0(%g): %w: %w", kappa, ErrProviderFailure, err)
	}
	if !(i0 > 0) || math.IsInf(i0, 0) {
		return 0, fmt.Errorf("I_0(%g) = %g: %w", kappa, i0, ErrProviderFailure)
	}
	return math.Exp(kappa*(math.Cos(d)-1)) / (2 * math.Pi * i0), nil
}

// offset returns x − μ after applying the domain policy.
func (e *Evaluator) offset(dist VonMises, x float64) (float64, error) {
	if math.IsNaN(x) {
		return 0, fmt.Errorf("x is NaN: %w", ErrInvalidPoint)
	}
	d := x - dist.location
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("offset %v - %v is not finite: %w", x, dist.location, ErrInvalidPoint)
	}

	switch e.policy {
	case DomainWrap:
		d = math.Remainder(d, 2*math.Pi)
	case DomainReject:
		if math.Abs(d) > math.Pi {
			return 0, fmt.Errorf("|x-μ| = %g > π: %w", math.Abs(d), ErrOutOfDomain)
		}
	}
	return d, nil
}
