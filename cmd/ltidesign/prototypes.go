package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-lti/internal/bank"
	"github.com/spf13/cobra"
)

var prototypes = []struct {
	typ    string
	fields string
	desc   string
}{
	{bank.TypeButterworth, "order, frequency", "Butterworth low-pass, unity DC gain"},
	{bank.TypeNotch, "frequency, q", "second-order notch (s^2+wn^2)/(s^2+wn/q*s+wn^2)"},
	{bank.TypeLowpass1, "frequency", "first-order low-pass wc/(s+wc)"},
	{bank.TypeHighpass1, "frequency", "first-order high-pass s/(s+wc)"},
	{bank.TypeCustom, "numerator, denominator", "raw coefficients, descending powers of s"},
}

func newPrototypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prototypes",
		Short: "List the filter types accepted in bank files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TYPE\tFIELDS\tDESCRIPTION")

			for _, p := range prototypes {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.typ, p.fields, p.desc)
			}

			return tw.Flush()
		},
	}
}
