package testutil

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// RandomPolynomial returns length coefficients drawn uniformly from
// [-amplitude, amplitude) with a fixed seed. The leading coefficient is
// never zero.
func RandomPolynomial(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	if length > 0 && out[0] == 0 {
		out[0] = amplitude
	}

	return out
}

// ReferenceProduct multiplies a and b by building the Toeplitz convolution
// matrix of a and applying it to b with gonum. It shares no code with the
// polynomial package and serves as an independent cross-check.
//
// Both inputs must be non-empty.
func ReferenceProduct(a, b []float64) []float64 {
	rows := len(a) + len(b) - 1
	cols := len(b)

	toeplitz := mat.NewDense(rows, cols, nil)
	for j := range cols {
		for i, v := range a {
			toeplitz.Set(i+j, j, v)
		}
	}

	var out mat.VecDense
	out.MulVec(toeplitz, mat.NewVecDense(cols, append([]float64(nil), b...)))

	res := make([]float64, rows)
	for i := range res {
		res[i] = out.AtVec(i)
	}

	return res
}

// ReferenceChain folds ReferenceProduct over polys in order.
func ReferenceChain(polys ...[]float64) []float64 {
	if len(polys) == 0 {
		return nil
	}

	acc := append([]float64(nil), polys[0]...)
	for _, p := range polys[1:] {
		acc = ReferenceProduct(acc, p)
	}

	return acc
}
