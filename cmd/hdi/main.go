// Copyright 2025 The credible Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// hdi reads newline-separated numbers from a file or stdin and
// reports the highest density regions of their distribution, or
// computes the analytic interval of a named distribution family.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	mstats "github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/probstats/credible/stats"
)

var (
	width     float64
	bandwidth float64
	gridSize  int
	params    []float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hdi [file]",
		Short:        "highest density intervals from samples or named distributions",
		Args:         cobra.MaximumNArgs(1),
		RunE:         runSamples,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Float64Var(&width, "width", 0.95, "probability mass of the interval")
	rootCmd.Flags().Float64Var(&bandwidth, "bandwidth", 0, "kernel bandwidth (0 = Scott's rule)")
	rootCmd.Flags().IntVar(&gridSize, "grid", 512, "density evaluation grid size")

	quantileCmd := &cobra.Command{
		Use:   "quantile <family>",
		Short: "analytic interval for a named distribution family (normal, beta, t, gamma)",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuantile,
	}
	quantileCmd.Flags().Float64SliceVar(&params, "params", nil, "family parameters, e.g. --params 0,1 for normal mu,sigma")
	rootCmd.AddCommand(quantileCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSamples(cmd *cobra.Command, args []string) error {
	in := io.Reader(os.Stdin)
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	xs, err := readInput(in)
	if err != nil {
		return err
	}

	if err := printSummary(xs); err != nil {
		return err
	}

	opts := &stats.HDIOptions{Bandwidth: bandwidth, GridSize: gridSize}
	regions, err := stats.HDIFromSamples(xs, width, opts)
	if err != nil {
		return err
	}

	fmt.Println()
	printRegions(regions)
	fmt.Println()
	printDensity(xs, regions)
	return nil
}

func runQuantile(cmd *cobra.Command, args []string) error {
	d, err := distFor(args[0], params)
	if err != nil {
		return err
	}
	lo, hi, err := stats.FindHDI(d.InvCDF, width, nil)
	if err != nil {
		return err
	}
	fmt.Printf("%g%% HDI: [%.6g, %.6g]\n", width*100, lo, hi)
	return nil
}

func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, fmt.Errorf("bad input line %q: %v", l, err)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return xs, nil
}

func printSummary(xs []float64) error {
	mean, err := mstats.Mean(xs)
	if err != nil {
		return err
	}
	median, err := mstats.Median(xs)
	if err != nil {
		return err
	}
	stdDev, err := mstats.StandardDeviationSample(xs)
	if err != nil {
		return err
	}
	min, err := mstats.Min(xs)
	if err != nil {
		return err
	}
	max, err := mstats.Max(xs)
	if err != nil {
		return err
	}
	fmt.Printf("N %d  mean %.6g  median %.6g  std dev %.6g  min %.6g  max %.6g\n",
		len(xs), mean, median, stdDev, min, max)
	return nil
}

func printRegions(regions []stats.HDIRegion) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "mode\tlower\tupper\tmass")
	for _, r := range regions {
		fmt.Fprintf(w, "%.6g\t%.6g\t%.6g\t%.4f\n", r.Mode, r.Lo, r.Hi, r.Mass)
	}
	w.Flush()
}

func printDensity(xs []float64, regions []stats.HDIRegion) {
	kde := stats.KDE{Bandwidth: bandwidth}.From(stats.Sample{Xs: xs})
	_, densities := stats.Grid(kde, 160)

	bounds := make([]string, len(regions))
	for i, r := range regions {
		bounds[i] = fmt.Sprintf("[%.4g, %.4g]", r.Lo, r.Hi)
	}
	caption := fmt.Sprintf("density, %g%% HDI %s", width*100, strings.Join(bounds, " + "))

	graph := asciigraph.Plot(densities,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
}

func distFor(family string, p []float64) (stats.Dist, error) {
	switch family {
	case "normal":
		if len(p) != 2 {
			return nil, fmt.Errorf("normal takes --params mu,sigma; got %d values", len(p))
		}
		return stats.NormalDist{Mu: p[0], Sigma: p[1]}, nil
	case "beta":
		if len(p) != 2 {
			return nil, fmt.Errorf("beta takes --params alpha,beta; got %d values", len(p))
		}
		return stats.BetaDist{Alpha: p[0], Beta: p[1]}, nil
	case "t":
		if len(p) != 3 {
			return nil, fmt.Errorf("t takes --params mu,sigma,nu; got %d values", len(p))
		}
		return stats.StudentsTDist{Mu: p[0], Sigma: p[1], Nu: p[2]}, nil
	case "gamma":
		if len(p) != 2 {
			return nil, fmt.Errorf("gamma takes --params alpha,beta; got %d values", len(p))
		}
		return stats.GammaDist{Alpha: p[0], Beta: p[1]}, nil
	}
	return nil, fmt.Errorf("unknown distribution family %q (want normal, beta, t, or gamma)", family)
}
