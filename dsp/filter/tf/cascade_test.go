package tf

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-lti/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, name string, k float64, num, den []float64) TransferFunction {
	t.Helper()

	h, err := New(name, k, num, den)
	require.NoError(t, err)

	return h
}

func TestCascadingTFs(t *testing.T) {
	a := mustNew(t, "a", 5, []float64{1, 2, 3, 4}, []float64{1, 5, 4, 3, 2})
	b := mustNew(t, "b", 9, []float64{2, 0, -1}, []float64{1, -1, 2, 3, 1})
	c := mustNew(t, "c", 1, []float64{1, 3, 0, -2, 7}, []float64{1, 0, 2, 1, 4, 3, -1, 2, 5})

	h, err := Cascade("abc", []TransferFunction{a, b, c})
	require.NoError(t, err)

	wantNum := []float64{2, 10, 17, 17, 21, 5, 11, 48, -13, -28}
	wantDen := []float64{
		1, 4, 3, 21, 33, 65, 90, 123, 197, 198,
		150, 174, 175, 136, 101, 49, 10,
	}

	assert.Equal(t, "abc", h.Name())
	assert.InDelta(t, 45.0, h.Gain(), 1e-11)
	require.Len(t, h.Numerator(), 10)
	require.Len(t, h.Denominator(), 17)
	testutil.RequireSliceNearlyEqual(t, h.Numerator(), wantNum, 1e-11)
	testutil.RequireSliceNearlyEqual(t, h.Denominator(), wantDen, 1e-11)

	// Independent cross-check through a Toeplitz matrix product.
	testutil.RequireSliceNearlyEqual(t, h.Numerator(),
		testutil.ReferenceChain(a.Numerator(), b.Numerator(), c.Numerator()), 1e-11)
	testutil.RequireSliceNearlyEqual(t, h.Denominator(),
		testutil.ReferenceChain(a.Denominator(), b.Denominator(), c.Denominator()), 1e-11)
}

func TestCascadeButterworthAndNotchFilter(t *testing.T) {
	wc := 2 * math.Pi * 10
	wn := 2 * math.Pi * 60
	q := 5.0

	lp, err := ButterworthLowpass("butter", 2, wc)
	require.NoError(t, err)
	notch, err := Notch("notch", wn, q)
	require.NoError(t, err)

	h, err := Cascade("butter+notch", []TransferFunction{lp, notch})
	require.NoError(t, err)

	sqrt2 := math.Sqrt2
	wantNum := []float64{wc * wc, 0, wc * wc * wn * wn}
	wantDen := []float64{
		1,
		wn/q + sqrt2*wc,
		wn*wn + sqrt2*wc*wn/q + wc*wc,
		sqrt2*wc*wn*wn + wc*wc*wn/q,
		wc * wc * wn * wn,
	}

	assert.Equal(t, 1.0, h.Gain())
	require.Len(t, h.Numerator(), 3)
	require.Len(t, h.Denominator(), 5)
	testutil.RequireSliceRelNearlyEqual(t, h.Numerator(), wantNum, 1e-11)
	testutil.RequireSliceRelNearlyEqual(t, h.Denominator(), wantDen, 1e-11)
}

func TestCascadeOrderShouldntMatter(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		a := mustNew(t, "a", 1+float64(seed)/3,
			testutil.RandomPolynomial(seed, 4, 1+int(seed%4)),
			testutil.RandomPolynomial(seed+50, 4, 2+int(seed%5)))
		b := mustNew(t, "b", -0.7*float64(seed),
			testutil.RandomPolynomial(seed+100, 4, 1+int(seed%3)),
			testutil.RandomPolynomial(seed+150, 4, 3+int(seed%6)))

		ab, err := Cascade("ab", []TransferFunction{a, b})
		require.NoError(t, err)
		ba, err := Cascade("ba", []TransferFunction{b, a})
		require.NoError(t, err)

		assert.InDelta(t, ab.Gain(), ba.Gain(), 1e-11)
		testutil.RequireSliceRelNearlyEqual(t, ab.Numerator(), ba.Numerator(), 1e-11)
		testutil.RequireSliceRelNearlyEqual(t, ab.Denominator(), ba.Denominator(), 1e-11)
	}
}

func TestCascadeGainIsProduct(t *testing.T) {
	gains := []float64{0.5, -3, 1e3, 7.25, 1e-2}
	fns := make([]TransferFunction, len(gains))
	want := 1.0

	for i, g := range gains {
		fns[i] = mustNew(t, "h", g, []float64{1}, []float64{1, float64(i)})
		want *= g
	}

	h, err := Cascade("gain", fns)
	require.NoError(t, err)
	assert.InDelta(t, want, h.Gain(), 1e-11*math.Abs(want))
	assert.Len(t, h.Denominator(), len(gains)+1)
}

func TestCascadeSingle(t *testing.T) {
	a := mustNew(t, "a", 3, []float64{1, 2}, []float64{1, 2, 3})

	h, err := Cascade("only", []TransferFunction{a})
	require.NoError(t, err)

	assert.Equal(t, "only", h.Name())
	assert.Equal(t, a.Gain(), h.Gain())
	assert.Equal(t, a.Numerator(), h.Numerator())
	assert.Equal(t, a.Denominator(), h.Denominator())
}

func TestCascadeLeavesInputsUnchanged(t *testing.T) {
	a := mustNew(t, "a", 2, []float64{1, 1}, []float64{1, 2, 1})
	b := mustNew(t, "b", 3, []float64{1, -1}, []float64{1, 0, 4})
	fns := []TransferFunction{a, b}

	_, err := Cascade("ab", fns)
	require.NoError(t, err)

	assert.Equal(t, "a", fns[0].Name())
	assert.Equal(t, []float64{1, 1}, fns[0].Numerator())
	assert.Equal(t, []float64{1, 0, 4}, fns[1].Denominator())
}

func TestCascadeDoesNotCheckCausality(t *testing.T) {
	improper := mustNew(t, "d", 1, []float64{1, 0, 0}, []float64{1})

	h, err := Cascade("dd", []TransferFunction{improper, improper})
	require.NoError(t, err)
	assert.False(t, h.IsProper())
}

func TestCascadeInvalid(t *testing.T) {
	_, err := Cascade("empty", nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Cascade("zero", []TransferFunction{{}})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCascadeMethod(t *testing.T) {
	a := mustNew(t, "a", 2, []float64{1}, []float64{1, 1})
	b := mustNew(t, "b", 3, []float64{1}, []float64{1, 2})

	h, err := a.Cascade(b)
	require.NoError(t, err)

	assert.Equal(t, "a*b", h.Name())
	assert.Equal(t, 6.0, h.Gain())
	assert.Equal(t, []float64{1, 3, 2}, h.Denominator())
}

func TestCascadeFFTThreshold(t *testing.T) {
	fns := make([]TransferFunction, 4)
	for i := range fns {
		fns[i] = mustNew(t, "h", 1,
			testutil.RandomPolynomial(int64(i), 1, 20),
			testutil.RandomPolynomial(int64(i+10), 1, 24))
	}

	direct, err := Cascade("direct", fns)
	require.NoError(t, err)
	fast, err := Cascade("fft", fns, WithFFTThreshold(16))
	require.NoError(t, err)

	testutil.RequireSliceRelNearlyEqual(t, fast.Numerator(), direct.Numerator(), 1e-10)
	testutil.RequireSliceRelNearlyEqual(t, fast.Denominator(), direct.Denominator(), 1e-10)
}

func TestCascadeLogsStages(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	a := mustNew(t, "a", 1, []float64{1}, []float64{1, 1})
	_, err := Cascade("log", []TransferFunction{a, a, a}, WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "tf: cascade stage"))
	assert.Contains(t, out, "cascade=log")
	assert.Contains(t, out, "denominatorDegree=3")
}
