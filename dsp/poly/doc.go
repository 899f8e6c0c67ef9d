// Package poly provides algebra on real polynomials stored as coefficient
// slices.
//
// Coefficients are ordered from the highest power down to the constant term:
// p[0] multiplies x^(len(p)-1) and p[len(p)-1] is the constant. The degree of
// p is len(p)-1. Leading zeros are never trimmed implicitly; they are valid
// terms and count toward the degree. Use [Trim] when they should go.
//
// Polynomial multiplication is convolution of the coefficient slices. [Convolve]
// accumulates products directly and is exact up to IEEE-754 rounding.
// [ConvolveFFT] computes the same product through a complex FFT and is meant
// for high-order operands where the O(N*M) direct product dominates.
//
// The package is used by dsp/filter/tf to cascade transfer functions and by
// dsp/filter/discrete to expand the bilinear substitution.
package poly
