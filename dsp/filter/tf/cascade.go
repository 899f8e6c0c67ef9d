package tf

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-lti/dsp/poly"
)

// cascadeConfig holds options for Cascade.
type cascadeConfig struct {
	logger       *slog.Logger
	fftThreshold int
}

// CascadeOption configures Cascade.
type CascadeOption func(*cascadeConfig)

// WithLogger sets a logger that receives one debug record per cascade
// stage. By default nothing is logged.
func WithLogger(logger *slog.Logger) CascadeOption {
	return func(cfg *cascadeConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithFFTThreshold multiplies polynomials through poly.ConvolveFFT when both
// operands have at least n coefficients. n <= 0 disables the FFT path, which
// is the default.
func WithFFTThreshold(n int) CascadeOption {
	return func(cfg *cascadeConfig) { cfg.fftThreshold = n }
}

func (cfg *cascadeConfig) multiply(a, b []float64) ([]float64, error) {
	if cfg.fftThreshold > 0 && len(a) >= cfg.fftThreshold && len(b) >= cfg.fftThreshold {
		return poly.ConvolveFFT(a, b)
	}

	return poly.Convolve(a, b)
}

// Cascade combines fns, connected in series in the given order, into one
// transfer function called name.
//
// The gain is the product of all gains and the numerator and denominator are
// the products of all numerators and denominators, each accumulated in input
// order. Multiplication commutes, so reordering fns changes the result only
// by floating-point rounding. Causality is not checked and fns is not
// modified.
func Cascade(name string, fns []TransferFunction, opts ...CascadeOption) (TransferFunction, error) {
	if len(fns) == 0 {
		return TransferFunction{}, fmt.Errorf("%w: empty cascade", ErrInvalidArgument)
	}

	cfg := cascadeConfig{logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(&cfg)
	}

	for _, h := range fns {
		if err := h.validate(); err != nil {
			return TransferFunction{}, err
		}
	}

	k := fns[0].k
	num := poly.Clone(fns[0].numerator)
	den := poly.Clone(fns[0].denominator)

	for i, h := range fns[1:] {
		var err error

		k *= h.k

		num, err = cfg.multiply(num, h.numerator)
		if err != nil {
			return TransferFunction{}, fmt.Errorf("tf: cascade numerator of %q: %w", h.name, err)
		}

		den, err = cfg.multiply(den, h.denominator)
		if err != nil {
			return TransferFunction{}, fmt.Errorf("tf: cascade denominator of %q: %w", h.name, err)
		}

		cfg.logger.Debug("tf: cascade stage",
			slog.String("cascade", name),
			slog.Int("stage", i+1),
			slog.String("input", h.name),
			slog.Float64("gain", k),
			slog.Int("numeratorDegree", poly.Degree(num)),
			slog.Int("denominatorDegree", poly.Degree(den)),
		)
	}

	return TransferFunction{
		name:        name,
		k:           k,
		numerator:   num,
		denominator: den,
	}, nil
}
