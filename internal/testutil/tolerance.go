package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). The failure names the
// worst index.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()

	diff, i, err := MaxAbsDiff(got, want)
	require.NoError(t, err)

	if diff > eps {
		require.Failf(t, "coefficients differ",
			"index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
	}
}

// RequireSliceRelNearlyEqual is RequireSliceNearlyEqual with eps scaled by
// the largest magnitude in want. Cascaded and discretized coefficients span
// many orders of magnitude, so a fixed absolute bound is either too loose
// for the small ones or too tight for the large ones.
func RequireSliceRelNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()

	scale := 1.0
	for _, v := range want {
		scale = math.Max(scale, math.Abs(v))
	}

	RequireSliceNearlyEqual(t, got, want, eps*scale)
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()

	for i, v := range data {
		require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// MaxAbsDiff returns the largest absolute elementwise difference between a
// and b and the index where it occurs. A NaN on either side counts as an
// infinite difference. The index is -1 for empty slices.
func MaxAbsDiff(a, b []float64) (float64, int, error) {
	if len(a) != len(b) {
		return 0, -1, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff, at := 0.0, -1
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			d = math.Inf(1)
		}

		if at < 0 || d > maxDiff {
			maxDiff, at = d, i
		}
	}

	return maxDiff, at, nil
}
