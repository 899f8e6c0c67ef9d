package poly

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ConvolveFFT multiplies p1 and p2 through a zero-padded complex FFT.
//
// The result equals [Convolve] within floating-point tolerance; the rounding
// error is spread over all coefficients and scales with the largest
// coefficient magnitude, so small coefficients next to large ones lose
// relative precision. When either operand is a scalar the direct product is
// returned.
func ConvolveFFT(p1, p2 []float64) ([]float64, error) {
	if len(p1) == 0 || len(p2) == 0 {
		return nil, fmt.Errorf("%w: empty polynomial", ErrInvalidArgument)
	}

	if len(p1) == 1 || len(p2) == 1 {
		return Convolve(p1, p2)
	}

	outLen := len(p1) + len(p2) - 1
	fftSize := nextPowerOf2(outLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("poly: failed to create FFT plan: %w", err)
	}

	a := make([]complex128, fftSize)
	b := make([]complex128, fftSize)

	for i, v := range p1 {
		a[i] = complex(v, 0)
	}

	for i, v := range p2 {
		b[i] = complex(v, 0)
	}

	if err := plan.Forward(a, a); err != nil {
		return nil, fmt.Errorf("poly: forward FFT failed: %w", err)
	}

	if err := plan.Forward(b, b); err != nil {
		return nil, fmt.Errorf("poly: forward FFT failed: %w", err)
	}

	for i := range a {
		a[i] *= b[i]
	}

	if err := plan.Inverse(a, a); err != nil {
		return nil, fmt.Errorf("poly: inverse FFT failed: %w", err)
	}

	out := make([]float64, outLen)
	for i := range out {
		out[i] = real(a[i])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
