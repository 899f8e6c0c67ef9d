package discrete

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-lti/dsp/filter/tf"
	"github.com/cwbudde/algo-lti/dsp/poly"
)

// Errors returned by Discretize.
var (
	// ErrInvalidArgument is the same value as poly.ErrInvalidArgument.
	ErrInvalidArgument = poly.ErrInvalidArgument

	// ErrInvalidSampleRate is returned for a sample frequency <= 0.
	ErrInvalidSampleRate = fmt.Errorf("%w: sample frequency must be positive", ErrInvalidArgument)

	// ErrNotCausal is returned when the numerator degree exceeds the
	// denominator degree.
	ErrNotCausal = errors.New("discrete: transfer function is not causal")

	// ErrDegenerateFilter is returned when the leading transformed
	// denominator coefficient is exactly zero, i.e. D(s) has a root at s = K.
	ErrDegenerateFilter = errors.New("discrete: degenerate filter")
)

type config struct {
	name    string
	named   bool
	logger  *slog.Logger
	prewarp float64
}

// Option configures Discretize and DiscretizeBank.
type Option func(*config)

// WithName sets the filter name. By default the transfer function's name is
// used.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
		cfg.named = true
	}
}

// WithLogger sets a logger for debug diagnostics. By default nothing is
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithPrewarp pre-warps the transform at freqHz, which must lie strictly
// between 0 and half the sample frequency. 0 disables pre-warping.
func WithPrewarp(freqHz float64) Option {
	return func(cfg *config) { cfg.prewarp = freqHz }
}

func newConfig(opts []Option) config {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// Discretize converts h into a discrete-time filter at sampleFrequency Hz.
//
// Both returned coefficient slices have length deg D + 1 and are normalised
// so that OutputCoefficients()[0] == 1. The gain of h scales the input side
// only.
func Discretize(h tf.TransferFunction, sampleFrequency int, opts ...Option) (*Filter, error) {
	return discretize(h, sampleFrequency, newConfig(opts))
}

func discretize(h tf.TransferFunction, sampleFrequency int, cfg config) (*Filter, error) {
	name := h.Name()
	if cfg.named {
		name = cfg.name
	}

	if sampleFrequency <= 0 {
		return nil, fmt.Errorf("%w: %d Hz", ErrInvalidSampleRate, sampleFrequency)
	}

	num := h.Numerator()
	den := h.Denominator()

	if len(num) == 0 || len(den) == 0 {
		return nil, fmt.Errorf("%w: transfer function %q has no coefficients", ErrInvalidArgument, h.Name())
	}

	n := poly.Degree(den)
	if m := poly.Degree(num); m > n {
		return nil, fmt.Errorf("%w: %q has numerator degree %d > denominator degree %d", ErrNotCausal, h.Name(), m, n)
	}

	k, err := bilinearConstant(sampleFrequency, cfg.prewarp)
	if err != nil {
		return nil, err
	}

	basis, err := bilinearBasis(n)
	if err != nil {
		return nil, err
	}

	input, err := substitute(poly.PadLeft(num, n+1), basis, k)
	if err != nil {
		return nil, err
	}

	output, err := substitute(den, basis, k)
	if err != nil {
		return nil, err
	}

	lead := output[0]
	if lead == 0 {
		return nil, fmt.Errorf("%w: %q has a denominator root at s = %g", ErrDegenerateFilter, h.Name(), k)
	}

	if math.IsNaN(lead) || math.IsInf(lead, 0) {
		return nil, fmt.Errorf("%w: %q has a non-finite leading coefficient", ErrDegenerateFilter, h.Name())
	}

	gain := h.Gain()
	for i := range output {
		input[i] = gain * input[i] / lead
		output[i] /= lead
	}

	if !finite(input) || !finite(output) {
		return nil, fmt.Errorf("%w: %q has non-finite coefficients after normalisation", ErrDegenerateFilter, h.Name())
	}

	cfg.logger.Debug("discrete: bilinear transform",
		slog.String("name", name),
		slog.Int("order", n),
		slog.Int("sampleFrequency", sampleFrequency),
		slog.Float64("k", k),
		slog.Float64("prewarp", cfg.prewarp),
	)

	return &Filter{
		name:            name,
		input:           input,
		output:          output,
		sampleFrequency: sampleFrequency,
		prewarp:         cfg.prewarp,
	}, nil
}

// bilinearConstant returns K in s = K*(z-1)/(z+1).
func bilinearConstant(sampleFrequency int, prewarp float64) (float64, error) {
	fs := float64(sampleFrequency)
	if prewarp == 0 {
		return 2 * fs, nil
	}

	if prewarp < 0 || prewarp >= fs/2 || math.IsNaN(prewarp) || math.IsInf(prewarp, 0) {
		return 0, fmt.Errorf("%w: prewarp frequency %g Hz outside (0, %g)", ErrInvalidArgument, prewarp, fs/2)
	}

	w0 := 2 * math.Pi * prewarp

	return w0 / math.Tan(w0/(2*fs)), nil
}

// bilinearBasis returns, for j = 0..n, the degree-n polynomial
// (z-1)^j * (z+1)^(n-j) that s^j turns into once (z+1)^n is cleared.
func bilinearBasis(n int) ([][]float64, error) {
	basis := make([][]float64, n+1)

	for j := range basis {
		minus, err := poly.Pow([]float64{1, -1}, j)
		if err != nil {
			return nil, err
		}

		plus, err := poly.Pow([]float64{1, 1}, n-j)
		if err != nil {
			return nil, err
		}

		basis[j], err = poly.Convolve(minus, plus)
		if err != nil {
			return nil, err
		}
	}

	return basis, nil
}

// substitute maps p, with len(p) == len(basis) and p[i] multiplying
// s^(n-i), to the z-domain polynomial sum_i p[i]*k^(-i)*basis[n-i].
//
// That is the bilinear image divided by k^n. The common factor cancels in
// the normalisation, and scaling by k^(j-n) instead of k^j keeps high
// orders from overflowing.
func substitute(p []float64, basis [][]float64, k float64) ([]float64, error) {
	n := len(basis) - 1
	out := make([]float64, n+1)

	for i, c := range p {
		if c == 0 {
			continue
		}

		j := n - i
		term := poly.Scale(basis[j], c*math.Pow(k, float64(j-n)))

		if err := poly.AddTo(out, term); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func finite(p []float64) bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
