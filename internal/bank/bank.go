// Package bank loads filter-bank description files.
//
// A bank file is YAML listing analog filters by prototype or by raw
// coefficients, plus the sample frequency and optional pre-warp frequency
// used when they are discretized. Frequencies in the file are in Hz and are
// converted to rad/s for the analog prototypes.
package bank

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-lti/dsp/filter/tf"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidFile is returned when a bank file fails validation.
var ErrInvalidFile = errors.New("bank: invalid filter bank")

// Filter types accepted in Definition.Type.
const (
	TypeButterworth = "butterworth"
	TypeNotch       = "notch"
	TypeLowpass1    = "lowpass1"
	TypeHighpass1   = "highpass1"
	TypeCustom      = "custom"
)

// DefaultCascadeName names the cascade result when the file does not.
const DefaultCascadeName = "cascade"

var validate = validator.New(validator.WithRequiredStructEnabled())

// File is a parsed filter-bank file.
type File struct {
	SampleFrequency int          `yaml:"sampleFrequency" validate:"gte=0"`
	Prewarp         float64      `yaml:"prewarp"         validate:"gte=0"`
	Cascade         string       `yaml:"cascade"`
	Filters         []Definition `yaml:"filters"         validate:"required,min=1,dive"`
}

// Definition describes one analog filter.
type Definition struct {
	Name        string    `yaml:"name"        validate:"required"`
	Type        string    `yaml:"type"        validate:"required,oneof=butterworth notch lowpass1 highpass1 custom"`
	Gain        *float64  `yaml:"gain"`
	Order       int       `yaml:"order"       validate:"required_if=Type butterworth,gte=0"`
	Frequency   float64   `yaml:"frequency"   validate:"required_unless=Type custom,gte=0"`
	Q           float64   `yaml:"q"           validate:"required_if=Type notch,gte=0"`
	Numerator   []float64 `yaml:"numerator"   validate:"required_if=Type custom"`
	Denominator []float64 `yaml:"denominator" validate:"required_if=Type custom"`
}

// Load reads and validates the bank file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bank: read %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse decodes and validates a bank file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("bank: parse: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks field constraints and name uniqueness.
func (f *File) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	seen := make(map[string]struct{}, len(f.Filters))
	for _, d := range f.Filters {
		if _, ok := seen[d.Name]; ok {
			return fmt.Errorf("%w: duplicate filter name %q", ErrInvalidFile, d.Name)
		}

		seen[d.Name] = struct{}{}
	}

	return nil
}

// CascadeName returns the configured cascade name or DefaultCascadeName.
func (f *File) CascadeName() string {
	if f.Cascade == "" {
		return DefaultCascadeName
	}

	return f.Cascade
}

// TransferFunctions builds every definition in file order.
func (f *File) TransferFunctions() ([]tf.TransferFunction, error) {
	hs := make([]tf.TransferFunction, 0, len(f.Filters))

	for _, d := range f.Filters {
		h, err := d.TransferFunction()
		if err != nil {
			return nil, fmt.Errorf("bank: filter %q: %w", d.Name, err)
		}

		hs = append(hs, h)
	}

	return hs, nil
}

// TransferFunction builds the analog transfer function d describes. The
// gain defaults to 1 and multiplies the prototype's own gain.
func (d Definition) TransferFunction() (tf.TransferFunction, error) {
	w := 2 * math.Pi * d.Frequency

	var (
		h   tf.TransferFunction
		err error
	)

	switch d.Type {
	case TypeButterworth:
		h, err = tf.ButterworthLowpass(d.Name, d.Order, w)
	case TypeNotch:
		h, err = tf.Notch(d.Name, w, d.Q)
	case TypeLowpass1:
		h, err = tf.FirstOrderLowpass(d.Name, w)
	case TypeHighpass1:
		h, err = tf.FirstOrderHighpass(d.Name, w)
	case TypeCustom:
		h, err = tf.New(d.Name, 1, d.Numerator, d.Denominator)
	default:
		return tf.TransferFunction{}, fmt.Errorf("%w: unknown filter type %q", ErrInvalidFile, d.Type)
	}

	if err != nil {
		return tf.TransferFunction{}, err
	}

	if d.Gain != nil {
		h = h.WithGain(h.Gain() * *d.Gain)
	}

	return h, nil
}
