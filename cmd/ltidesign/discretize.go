package main

import (
	"errors"
	"log/slog"

	"github.com/cwbudde/algo-lti/dsp/filter/discrete"
	"github.com/cwbudde/algo-lti/dsp/filter/tf"
	"github.com/spf13/cobra"
)

type discretizeOptions struct {
	sampleFrequency int
	prewarp         float64
	cascade         bool
}

func newDiscretizeCmd(opts *rootOptions) *cobra.Command {
	d := &discretizeOptions{}

	cmd := &cobra.Command{
		Use:   "discretize",
		Short: "Convert the filters of a bank into discrete-time coefficients",
		Long: `discretize applies the bilinear transform to every filter of the bank, or to
their cascade with --cascade. --fs and --prewarp override the values from
the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(opts.output); err != nil {
				return err
			}

			f, err := opts.loadBank()
			if err != nil {
				return err
			}

			fs := f.SampleFrequency
			if cmd.Flags().Changed("fs") {
				fs = d.sampleFrequency
			}

			if fs <= 0 {
				return errors.New("ltidesign: sample frequency not set (use --fs or sampleFrequency in the file)")
			}

			prewarp := f.Prewarp
			if cmd.Flags().Changed("prewarp") {
				prewarp = d.prewarp
			}

			hs, err := f.TransferFunctions()
			if err != nil {
				return err
			}

			logger := opts.logger(cmd)
			dopts := []discrete.Option{discrete.WithLogger(logger)}
			if prewarp != 0 {
				dopts = append(dopts, discrete.WithPrewarp(prewarp))
			}

			var filters []*discrete.Filter

			if d.cascade {
				h, err := tf.Cascade(f.CascadeName(), hs, tf.WithLogger(logger))
				if err != nil {
					return err
				}

				filter, err := discrete.Discretize(h, fs, dopts...)
				if err != nil {
					return err
				}

				filters = []*discrete.Filter{filter}
			} else {
				filters, err = discrete.DiscretizeBank(hs, fs, dopts...)
				if err != nil {
					return err
				}
			}

			logger.Debug("ltidesign: discretized", slog.Int("filters", len(filters)), slog.Int("sampleFrequency", fs))

			return renderFilters(cmd.OutOrStdout(), opts.output, filters)
		},
	}

	cmd.Flags().IntVar(&d.sampleFrequency, "fs", 0, "sample frequency in Hz")
	cmd.Flags().Float64Var(&d.prewarp, "prewarp", 0, "pre-warp frequency in Hz (0 disables)")
	cmd.Flags().BoolVar(&d.cascade, "cascade", false, "discretize the cascade of all filters")

	return cmd
}
