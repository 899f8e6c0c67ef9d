// Package tf models continuous-time transfer functions of the form
//
//	         b_0*s^m + b_1*s^(m-1) + ... + b_m
//	H(s) = k ---------------------------------
//	         a_0*s^n + a_1*s^(n-1) + ... + a_n
//
// with numerator [b_0, ..., b_m] and denominator [a_0, ..., a_n] stored in
// descending powers of s.
//
// A [TransferFunction] is an immutable value. The With* methods return
// modified copies and getters return copies of the coefficient slices, so no
// two values ever share mutable storage.
//
// [Cascade] combines transfer functions connected in series into one
// equivalent function:
//
//	                         N1(s)      N2(s)        N3(s)
//	H3(s) = H1(s) * H2(s) = k1 ----- * k2 ----- = k3 -----
//	                         D1(s)      D2(s)        D3(s)
//
// Causality (deg D >= deg N) is not enforced here; dsp/filter/discrete checks
// it when the function is sampled. The package also provides a few analog
// prototypes (Butterworth low-pass, notch, first-order sections) in rad/s.
package tf
