package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-lti/dsp/filter/discrete"
	"github.com/cwbudde/algo-lti/dsp/filter/tf"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type transferDoc struct {
	Name        string    `yaml:"name"`
	Gain        float64   `yaml:"gain"`
	Numerator   []float64 `yaml:"numerator,flow"`
	Denominator []float64 `yaml:"denominator,flow"`
}

type filterDoc struct {
	Name            string    `yaml:"name"`
	SampleFrequency int       `yaml:"sampleFrequency"`
	Prewarp         float64   `yaml:"prewarp,omitempty"`
	Input           []float64 `yaml:"input,flow"`
	Output          []float64 `yaml:"output,flow"`
}

type filtersDoc struct {
	Filters []filterDoc `yaml:"filters"`
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatYAML:
		return nil
	default:
		return fmt.Errorf("ltidesign: unknown output format %q", format)
	}
}

func renderTransfer(w io.Writer, format string, h tf.TransferFunction) error {
	if format == formatYAML {
		return encodeYAML(w, transferDoc{
			Name:        h.Name(),
			Gain:        h.Gain(),
			Numerator:   h.Numerator(),
			Denominator: h.Denominator(),
		})
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "name\t%s\n", h.Name())
	fmt.Fprintf(tw, "gain\t%s\n", formatFloat(h.Gain()))
	fmt.Fprintf(tw, "numerator\t%s\n", formatCoefficients(h.Numerator()))
	fmt.Fprintf(tw, "denominator\t%s\n", formatCoefficients(h.Denominator()))

	return tw.Flush()
}

func renderFilters(w io.Writer, format string, filters []*discrete.Filter) error {
	if format == formatYAML {
		doc := filtersDoc{Filters: make([]filterDoc, len(filters))}
		for i, f := range filters {
			doc.Filters[i] = filterDoc{
				Name:            f.Name(),
				SampleFrequency: f.SampleFrequency(),
				Prewarp:         f.PrewarpFrequency(),
				Input:           f.InputCoefficients(),
				Output:          f.OutputCoefficients(),
			}
		}

		return encodeYAML(w, doc)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFS\tORDER\tINPUT\tOUTPUT")

	for _, f := range filters {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n",
			f.Name(), f.SampleFrequency(), f.Order(),
			formatCoefficients(f.InputCoefficients()),
			formatCoefficients(f.OutputCoefficients()))
	}

	return tw.Flush()
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("ltidesign: encode yaml: %w", err)
	}

	return enc.Close()
}

func formatCoefficients(c []float64) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = formatFloat(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
