// Package circstatx evaluates the von Mises distribution, the circular
// analogue of the normal distribution.
//
// A [VonMises] value is an immutable (location, concentration) pair. Its CDF
// has no closed form; it is computed from the Fourier series
//
//	F(x) = 1/2 + (d + 2·Σ_{j=1..N} I_j(κ)/I_0(κ) · sin(j·d)/j) / 2π,  d = x − μ
//
// truncated at N terms (100 by default). The I_j come from a [BesselProvider]
// in exponentially scaled form, so the ratios stay finite for large κ.
//
// # Example Usage
//
//	vm, err := circstatx.New(0, 4)
//	if err != nil {
//		return err
//	}
//	p, err := vm.CDF(1.0) // ≈ 0.96677
//
// Tuning lives on [Evaluator]:
//
//	ev := circstatx.NewEvaluator(
//		circstatx.WithTerms(200),
//		circstatx.WithDomainPolicy(circstatx.DomainWrap),
//	)
//	p, err := ev.CDF(vm, 7.0)
//
// # Domain
//
// [VonMises.Min] and [VonMises.Max] report the principal range [−π, π]. The
// evaluator works on the offset d = x − μ. By default an offset with |d| > π
// is rejected with [ErrOutOfDomain]; [DomainWrap] reduces it modulo 2π and
// [DomainUnbounded] evaluates the series as-is, which yields the unwrapped
// cumulative (it grows by one per period).
//
// # Concurrency
//
// VonMises and Evaluator hold no mutable state and may be shared freely.
// The default provider is stateless. [Evaluator.CDFBatch] fans a slice of
// points out over goroutines.
package circstatx
