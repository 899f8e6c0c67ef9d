package discrete

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/poly"
)

// Filter is the discrete-time result of [Discretize]. It is immutable;
// getters return copies.
type Filter struct {
	name            string
	input           []float64
	output          []float64
	sampleFrequency int
	prewarp         float64
}

// Name returns the filter label.
func (f *Filter) Name() string { return f.name }

// InputCoefficients returns the feedforward coefficients acting on
// x[t], x[t-1], ..., x[t-n].
func (f *Filter) InputCoefficients() []float64 { return poly.Clone(f.input) }

// OutputCoefficients returns the feedback coefficients acting on
// y[t], y[t-1], ..., y[t-n]. The first element is always 1.
func (f *Filter) OutputCoefficients() []float64 { return poly.Clone(f.output) }

// SampleFrequency returns the sample rate in Hz the filter was derived for.
func (f *Filter) SampleFrequency() int { return f.sampleFrequency }

// PrewarpFrequency returns the pre-warp frequency in Hz, or 0 if the plain
// bilinear transform was used.
func (f *Filter) PrewarpFrequency() float64 { return f.prewarp }

// Order returns the filter order, len(OutputCoefficients())-1.
func (f *Filter) Order() int { return len(f.output) - 1 }

func (f *Filter) String() string {
	return fmt.Sprintf("%s @ %d Hz: in=%v out=%v", f.name, f.sampleFrequency, f.input, f.output)
}
