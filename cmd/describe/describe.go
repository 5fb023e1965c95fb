package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/statkit/go-descstats/stats"
)

func newDescribeCommand() *cobra.Command {
	var (
		bins  int
		trim  float64
		ranks []float64
	)
	cmd := &cobra.Command{
		Use:          "describe",
		Short:        "Summarize the distribution of newline-separated numbers on stdin",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := readSample(cmd.InOrStdin())
			if err != nil {
				return err
			}
			report(cmd.OutOrStdout(), xs, bins, trim, ranks)
			return nil
		},
	}
	cmd.Flags().IntVar(&bins, "bins", 10, "number of frequency table bins")
	cmd.Flags().Float64Var(&trim, "trim", 0.1, "trim fraction for trimmed statistics")
	cmd.Flags().Float64SliceVar(&ranks, "percentiles", []float64{5, 25, 50, 75, 95}, "percentiles to report")
	return cmd
}

func readSample(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("bad input line %q: %w", line, err)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}

// report renders every statistic in the catalogue. It performs no
// numeric work of its own: each row is a library result, or the
// library's error message when the call failed.
func report(w io.Writer, xs []float64, bins int, trim float64, ranks []float64) {
	sum := stats.Describe(xs)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"statistic", "value"})
	t.AppendRows([]table.Row{
		{"n", sum.N},
		{"sum", format(sum.Sum)},
		{"mean", format(sum.Mean)},
		{"median", format(sum.Median)},
		{"min", format(sum.Min)},
		{"max", format(sum.Max)},
		{"range", format(sum.Range)},
		{"variance", format(sum.Variance)},
		{"std dev", format(sum.StdDev)},
	})
	tm, err := stats.TrimmedMean(xs, trim)
	appendResult(t, "trimmed mean", tm, err)
	tmed, err := stats.TrimmedMedian(xs, trim)
	appendResult(t, "trimmed median", tmed, err)
	mad, err := stats.MeanAbsoluteDeviation(xs)
	appendResult(t, "mean abs dev", mad, err)
	medAD, err := stats.MedianAbsoluteDeviation(xs)
	appendResult(t, "median abs dev", medAD, err)
	iqr, err := stats.InterquartileRange(xs)
	appendResult(t, "IQR", iqr, err)
	if values, count, err := stats.Mode(xs); err != nil {
		t.AppendRow(table.Row{"mode", err.Error()})
	} else {
		t.AppendRow(table.Row{"mode", fmt.Sprintf("%v (count %d)", values, count)})
	}
	t.Render()

	if qs, err := stats.Quantiles(xs, ranks); err != nil {
		fmt.Fprintf(w, "percentiles: %v\n", err)
	} else {
		pt := table.NewWriter()
		pt.SetOutputMirror(w)
		pt.AppendHeader(table.Row{"percentile", "value"})
		for i, p := range ranks {
			pt.AppendRow(table.Row{format(p), format(qs[i])})
		}
		pt.Render()
	}

	freq, err := stats.FrequencyTable(xs, bins)
	if err != nil {
		fmt.Fprintf(w, "frequency table: %v\n", err)
		return
	}
	counts := make([]int, len(freq))
	for i, b := range freq {
		counts[i] = b.Count
	}
	sums, density, err := stats.CumulativeDensity(counts)
	if err != nil {
		fmt.Fprintf(w, "cumulative density: %v\n", err)
		return
	}
	ft := table.NewWriter()
	ft.SetOutputMirror(w)
	ft.AppendHeader(table.Row{"bin", "range", "count", "cumulative", "density"})
	for i, b := range freq {
		// The last bin includes its upper bound.
		bracket := ")"
		if i == len(freq)-1 {
			bracket = "]"
		}
		ft.AppendRow(table.Row{
			b.Bin,
			fmt.Sprintf("[%s, %s%s", format(b.Min), format(b.Max), bracket),
			b.Count,
			sums[i],
			format(density[i]),
		})
	}
	ft.Render()
}

func appendResult(t table.Writer, name string, v float64, err error) {
	if err != nil {
		t.AppendRow(table.Row{name, err.Error()})
		return
	}
	t.AppendRow(table.Row{name, format(v)})
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
