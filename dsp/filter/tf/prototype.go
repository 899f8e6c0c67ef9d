package tf

import (
	"fmt"
	"math"
)

// ButterworthLowpass returns the analog Butterworth low-pass of the given
// order with cutoff wc in rad/s. The gain is 1 and the numerator is [wc^order],
// so the DC gain is unity.
//
// The denominator is the product of the second-order factors
// s^2 + 2*sin((2i-1)*pi/(2*order))*wc*s + wc^2 and, for odd orders, s + wc.
func ButterworthLowpass(name string, order int, wc float64) (TransferFunction, error) {
	if order < 1 {
		return TransferFunction{}, fmt.Errorf("%w: butterworth order %d", ErrInvalidArgument, order)
	}

	if err := checkFrequency(wc); err != nil {
		return TransferFunction{}, err
	}

	sections := make([]TransferFunction, 0, (order+1)/2)
	for i := 1; i <= order/2; i++ {
		damping := 2 * math.Sin(float64(2*i-1)*math.Pi/(2*float64(order)))
		sections = append(sections, TransferFunction{
			k:           1,
			numerator:   []float64{1},
			denominator: []float64{1, damping * wc, wc * wc},
		})
	}

	if order%2 != 0 {
		sections = append(sections, TransferFunction{
			k:           1,
			numerator:   []float64{1},
			denominator: []float64{1, wc},
		})
	}

	h, err := Cascade(name, sections)
	if err != nil {
		return TransferFunction{}, err
	}

	h.numerator = []float64{math.Pow(wc, float64(order))}

	return h, nil
}

// Notch returns the analog second-order notch (s^2 + wn^2)/(s^2 + wn/q*s + wn^2)
// centered at wn rad/s with quality factor q.
func Notch(name string, wn, q float64) (TransferFunction, error) {
	if err := checkFrequency(wn); err != nil {
		return TransferFunction{}, err
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return TransferFunction{}, fmt.Errorf("%w: notch quality factor %v", ErrInvalidArgument, q)
	}

	return TransferFunction{
		name:        name,
		k:           1,
		numerator:   []float64{1, 0, wn * wn},
		denominator: []float64{1, wn / q, wn * wn},
	}, nil
}

// FirstOrderLowpass returns wc/(s + wc) with wc in rad/s.
func FirstOrderLowpass(name string, wc float64) (TransferFunction, error) {
	if err := checkFrequency(wc); err != nil {
		return TransferFunction{}, err
	}

	return TransferFunction{
		name:        name,
		k:           1,
		numerator:   []float64{wc},
		denominator: []float64{1, wc},
	}, nil
}

// FirstOrderHighpass returns s/(s + wc) with wc in rad/s.
func FirstOrderHighpass(name string, wc float64) (TransferFunction, error) {
	if err := checkFrequency(wc); err != nil {
		return TransferFunction{}, err
	}

	return TransferFunction{
		name:        name,
		k:           1,
		numerator:   []float64{1, 0},
		denominator: []float64{1, wc},
	}, nil
}

func checkFrequency(w float64) error {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: angular frequency %v", ErrInvalidArgument, w)
	}

	return nil
}
