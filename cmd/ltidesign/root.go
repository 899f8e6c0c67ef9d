package main

import (
	"errors"
	"log/slog"

	"github.com/cwbudde/algo-lti/internal/bank"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	file    string
	output  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "ltidesign",
		Short: "Cascade and discretize continuous-time transfer functions",
		Long: `ltidesign reads analog filters from a filter-bank YAML file, cascades them
into one transfer function and converts them into discrete-time IIR
coefficients with the bilinear transform.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "", "filter bank YAML file")
	flags.StringVarP(&opts.output, "output", "o", formatText, "output format: text or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug diagnostics to stderr")

	cmd.AddCommand(
		newCascadeCmd(opts),
		newDiscretizeCmd(opts),
		newPrototypesCmd(),
	)

	return cmd
}

func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *rootOptions) loadBank() (*bank.File, error) {
	if o.file == "" {
		return nil, errors.New("ltidesign: --file is required")
	}

	return bank.Load(o.file)
}
