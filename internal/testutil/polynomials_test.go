package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferenceProduct(t *testing.T) {
	// (x + 1)(x - 1) = x^2 - 1
	got := ReferenceProduct([]float64{1, 1}, []float64{1, -1})
	RequireSliceNearlyEqual(t, got, []float64{1, 0, -1}, 0)
}

func TestReferenceProductScalar(t *testing.T) {
	got := ReferenceProduct([]float64{3}, []float64{1, 2, 3})
	RequireSliceNearlyEqual(t, got, []float64{3, 6, 9}, 0)
}

func TestReferenceChain(t *testing.T) {
	// (x + 1)^3
	got := ReferenceChain([]float64{1, 1}, []float64{1, 1}, []float64{1, 1})
	RequireSliceNearlyEqual(t, got, []float64{1, 3, 3, 1}, 0)

	assert.Nil(t, ReferenceChain())
}

func TestRandomPolynomialDeterministic(t *testing.T) {
	a := RandomPolynomial(7, 2, 6)
	b := RandomPolynomial(7, 2, 6)
	RequireSliceNearlyEqual(t, a, b, 0)

	for i, v := range a {
		require.Truef(t, v >= -2 && v < 2, "index %d: %v out of range", i, v)
	}

	require.NotZero(t, a[0], "leading coefficient")
}
