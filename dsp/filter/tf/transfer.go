package tf

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/poly"
)

// ErrInvalidArgument is returned for empty coefficient slices, empty cascades
// and invalid prototype parameters. It is the same value as
// poly.ErrInvalidArgument.
var ErrInvalidArgument = poly.ErrInvalidArgument

// TransferFunction is k*N(s)/D(s) with an opaque name.
//
// The zero value has no coefficients and is rejected by [Cascade] and by
// discretization; build values with [New] or one of the prototypes.
type TransferFunction struct {
	name        string
	k           float64
	numerator   []float64
	denominator []float64
}

// New returns a transfer function owning copies of numerator and
// denominator. Both must be non-empty.
func New(name string, k float64, numerator, denominator []float64) (TransferFunction, error) {
	if len(numerator) == 0 {
		return TransferFunction{}, fmt.Errorf("%w: empty numerator", ErrInvalidArgument)
	}

	if len(denominator) == 0 {
		return TransferFunction{}, fmt.Errorf("%w: empty denominator", ErrInvalidArgument)
	}

	return TransferFunction{
		name:        name,
		k:           k,
		numerator:   poly.Clone(numerator),
		denominator: poly.Clone(denominator),
	}, nil
}

// Name returns the label of h.
func (h TransferFunction) Name() string { return h.name }

// Gain returns the scalar gain k.
func (h TransferFunction) Gain() float64 { return h.k }

// Numerator returns a copy of the numerator coefficients.
func (h TransferFunction) Numerator() []float64 { return poly.Clone(h.numerator) }

// Denominator returns a copy of the denominator coefficients.
func (h TransferFunction) Denominator() []float64 { return poly.Clone(h.denominator) }

// WithName returns a copy of h with a different name.
func (h TransferFunction) WithName(name string) TransferFunction {
	h.name = name
	return h
}

// WithGain returns a copy of h with gain k.
func (h TransferFunction) WithGain(k float64) TransferFunction {
	h.k = k
	return h
}

// WithNumerator returns a copy of h with the numerator replaced. The degree
// relation to the denominator is not checked.
func (h TransferFunction) WithNumerator(numerator []float64) (TransferFunction, error) {
	if len(numerator) == 0 {
		return h, fmt.Errorf("%w: empty numerator", ErrInvalidArgument)
	}

	h.numerator = poly.Clone(numerator)

	return h, nil
}

// WithDenominator returns a copy of h with the denominator replaced.
func (h TransferFunction) WithDenominator(denominator []float64) (TransferFunction, error) {
	if len(denominator) == 0 {
		return h, fmt.Errorf("%w: empty denominator", ErrInvalidArgument)
	}

	h.denominator = poly.Clone(denominator)

	return h, nil
}

// Order returns the degree of the denominator.
func (h TransferFunction) Order() int {
	return poly.Degree(h.denominator)
}

// IsProper reports whether deg N <= deg D, the condition discretization
// requires. Degrees count leading zero coefficients.
func (h TransferFunction) IsProper() bool {
	return poly.Degree(h.numerator) <= poly.Degree(h.denominator)
}

// Cascade connects h and other in series. The result is named "h*other".
func (h TransferFunction) Cascade(other TransferFunction, opts ...CascadeOption) (TransferFunction, error) {
	return Cascade(h.name+"*"+other.name, []TransferFunction{h, other}, opts...)
}

func (h TransferFunction) String() string {
	return fmt.Sprintf("%s: %g * %v / %v", h.name, h.k, h.numerator, h.denominator)
}

func (h TransferFunction) validate() error {
	if len(h.numerator) == 0 || len(h.denominator) == 0 {
		return fmt.Errorf("%w: transfer function %q has no coefficients", ErrInvalidArgument, h.name)
	}

	return nil
}
