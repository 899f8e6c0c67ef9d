package discrete

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/filter/tf"
	"golang.org/x/sync/errgroup"
)

// DiscretizeBank discretizes every transfer function in hs at the same
// sample frequency. The work runs concurrently, one goroutine per transfer
// function; the result keeps the order of hs. The first error encountered
// is returned and no filters are.
//
// WithName, if given, applies to every filter and is rarely useful here.
func DiscretizeBank(hs []tf.TransferFunction, sampleFrequency int, opts ...Option) ([]*Filter, error) {
	cfg := newConfig(opts)
	filters := make([]*Filter, len(hs))

	var g errgroup.Group
	for i, h := range hs {
		g.Go(func() error {
			f, err := discretize(h, sampleFrequency, cfg)
			if err != nil {
				return fmt.Errorf("discrete: bank entry %d: %w", i, err)
			}

			filters[i] = f

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return filters, nil
}
