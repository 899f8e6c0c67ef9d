package main

import (
	"log/slog"

	"github.com/cwbudde/algo-lti/dsp/filter/tf"
	"github.com/spf13/cobra"
)

func newCascadeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cascade",
		Short: "Cascade all filters of a bank into one transfer function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(opts.output); err != nil {
				return err
			}

			f, err := opts.loadBank()
			if err != nil {
				return err
			}

			hs, err := f.TransferFunctions()
			if err != nil {
				return err
			}

			logger := opts.logger(cmd)

			h, err := tf.Cascade(f.CascadeName(), hs, tf.WithLogger(logger))
			if err != nil {
				return err
			}

			logger.Debug("ltidesign: cascaded", slog.Int("filters", len(hs)), slog.Int("order", h.Order()))

			return renderTransfer(cmd.OutOrStdout(), opts.output, h)
		},
	}
}
