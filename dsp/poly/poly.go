package poly

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by polynomial functions.
var (
	// ErrInvalidArgument is returned for empty coefficient slices and
	// out-of-range parameters.
	ErrInvalidArgument = errors.New("poly: invalid argument")

	// ErrLengthMismatch is returned when a destination slice has the wrong length.
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrInvalidArgument)
)

// simdThreshold is the second-operand length from which the inner product
// loop is delegated to vecmath.
const simdThreshold = 4

// Degree returns len(p)-1. An empty slice has degree -1.
func Degree(p []float64) int {
	return len(p) - 1
}

// Clone returns a copy of p that shares no storage with it.
func Clone(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)

	return out
}

// Convolve multiplies p1 and p2 and returns a new slice of length
// len(p1)+len(p2)-1 with out[i+j] = sum p1[i]*p2[j].
//
// Both inputs must be non-empty. A length-1 input acts as a scalar.
func Convolve(p1, p2 []float64) ([]float64, error) {
	if len(p1) == 0 || len(p2) == 0 {
		return nil, fmt.Errorf("%w: empty polynomial", ErrInvalidArgument)
	}

	out := make([]float64, len(p1)+len(p2)-1)
	convolveTo(out, p1, p2)

	return out, nil
}

// ConvolveTo multiplies p1 and p2 into dst, which must have length
// len(p1)+len(p2)-1. dst must not alias either input.
func ConvolveTo(dst, p1, p2 []float64) error {
	if len(p1) == 0 || len(p2) == 0 {
		return fmt.Errorf("%w: empty polynomial", ErrInvalidArgument)
	}

	if want := len(p1) + len(p2) - 1; len(dst) != want {
		return fmt.Errorf("%w: dst has %d coefficients, want %d", ErrLengthMismatch, len(dst), want)
	}

	convolveTo(dst, p1, p2)

	return nil
}

func convolveTo(dst, p1, p2 []float64) {
	for i := range dst {
		dst[i] = 0
	}

	m := len(p2)
	if m < simdThreshold {
		for i, a := range p1 {
			for j, b := range p2 {
				dst[i+j] += a * b
			}
		}

		return
	}

	// Row i of the product is p2 scaled by p1[i], shifted by i.
	row := make([]float64, m)
	for i, a := range p1 {
		vecmath.ScaleBlock(row, p2, a)
		vecmath.AddBlockInPlace(dst[i:i+m], row)
	}
}

// Pow raises p to the non-negative integer power n by repeated
// self-convolution. Pow(p, 0) is the constant polynomial [1].
func Pow(p []float64, n int) ([]float64, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty polynomial", ErrInvalidArgument)
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: negative exponent %d", ErrInvalidArgument, n)
	}

	out := []float64{1}
	for range n {
		next := make([]float64, len(out)+len(p)-1)
		convolveTo(next, out, p)
		out = next
	}

	return out, nil
}

// Scale returns a new slice holding p multiplied by k.
func Scale(p []float64, k float64) []float64 {
	out := make([]float64, len(p))
	if len(p) == 0 {
		return out
	}

	vecmath.ScaleBlock(out, p, k)

	return out
}

// AddTo adds src to dst elementwise. Both slices must have equal length;
// callers align degrees first with [PadLeft].
func AddTo(dst, src []float64) error {
	if len(dst) != len(src) {
		return fmt.Errorf("%w: %d vs %d coefficients", ErrLengthMismatch, len(dst), len(src))
	}

	if len(dst) == 0 {
		return nil
	}

	vecmath.AddBlockInPlace(dst, src)

	return nil
}

// PadLeft returns a copy of p with leading zeros prepended so that it has
// n coefficients. The degree of the copy is n-1; the polynomial value is
// unchanged. If p already has n or more coefficients, a plain copy is
// returned.
func PadLeft(p []float64, n int) []float64 {
	if n <= len(p) {
		return Clone(p)
	}

	out := make([]float64, n)
	copy(out[n-len(p):], p)

	return out
}

// Trim returns a copy of p without leading zero coefficients. At least one
// coefficient is kept, so the zero polynomial trims to [0].
func Trim(p []float64) []float64 {
	if len(p) == 0 {
		return []float64{}
	}

	i := 0
	for i < len(p)-1 && p[i] == 0 {
		i++
	}

	return Clone(p[i:])
}

// Eval evaluates p at x using Horner's scheme. The empty polynomial
// evaluates to 0.
func Eval(p []float64, x float64) float64 {
	var y float64
	for _, c := range p {
		y = y*x + c
	}

	return y
}
