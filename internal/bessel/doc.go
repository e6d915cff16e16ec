// Package bessel provides modified Bessel functions of the first kind for
// integer orders, I_n(x), in exponentially scaled form.
//
// Scaled values are e^{-x}·I_n(x). They stay in (0, 1] for every x >= 0, so
// ratios such as I_n(x)/I_0(x) can be formed for large x without the
// intermediate overflow the unscaled functions would hit.
//
// This package uses ONLY the Go standard library. Everything here is
// stateless and safe for concurrent use.
//
// # Algorithm
//
// For x < 1 the ascending power series is summed directly. For x >= 1 the
// whole sequence I_0..I_n comes from a single Miller backward recurrence,
// normalized with the identity
//
//	I_0(x) + 2·Σ_{k>=1} I_k(x) = e^x
//
// which is exactly the normalization the scaled form needs.
package bessel
