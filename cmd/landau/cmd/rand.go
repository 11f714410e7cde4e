/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/xlab-si/landau/internal/stats"
	"github.com/xlab-si/landau/sample"
)

var (
	randCount int
	randSeed  string
	randStats bool
	randHist  bool
	randBins  int
)

var randCmd = &cobra.Command{
	Use:   "rand",
	Short: "Draw random samples from the distribution",
	Long: `Draws random samples from the distribution, one line per value.

By default the samples come from the operating system's cryptographic
random number generator. With --seed the samples come from a
deterministic stream expanded from the seed, so repeated runs with the
same seed and parameters print the same values.

With --stats or --hist the individual values are replaced by a summary
or a text histogram of the drawn sample.`,
	RunE: runRand,
}

func init() {
	randCmd.Flags().IntVarP(&randCount, "count", "n", 10, "number of samples to draw")
	randCmd.Flags().StringVar(&randSeed, "seed", "", "seed of a deterministic sample stream")
	randCmd.Flags().BoolVar(&randStats, "stats", false, "print a statistical summary instead of the values")
	randCmd.Flags().BoolVar(&randHist, "hist", false, "print a histogram instead of the values")
	randCmd.Flags().IntVar(&randBins, "bins", 20, "number of histogram bins")
	rootCmd.AddCommand(randCmd)
}

func runRand(cmd *cobra.Command, args []string) error {
	l, err := newDist()
	if err != nil {
		return err
	}
	if randSeed != "" {
		l.Src = sample.NewShake([]byte(randSeed))
	}
	if randCount <= 0 {
		return errors.Errorf("sample count must be positive, got %d", randCount)
	}

	values := make([]float64, randCount)
	for i := range values {
		values[i], err = l.Rand()
		if err != nil {
			return errors.Wrap(err, "failed to draw a sample")
		}
	}

	if !randStats && !randHist {
		for _, x := range values {
			fmt.Printf("%.10g\n", x)
		}

		return nil
	}

	if randStats {
		printStats(values)
	}
	if randHist {
		if randBins < 1 {
			return errors.Errorf("bin count must be positive, got %d", randBins)
		}
		printHistogram(values, randBins)
	}

	return nil
}

func printStats(values []float64) {
	var c stats.Calc
	c.Add(values...)
	fmt.Printf("count  %d\n", c.Count())
	fmt.Printf("min    %.6g\n", c.Min())
	fmt.Printf("max    %.6g\n", c.Max())
	fmt.Printf("mean   %.6g\n", c.Mean())
	fmt.Printf("stddev %.6g\n", c.StdDev())
}

// printHistogram bins the sample up to its empirical 0.98 quantile;
// the heavy right tail would otherwise stretch the axis so far that
// the bulk collapses into a single bin. Values beyond the cut are
// reported as overflow.
func printHistogram(values []float64, bins int) {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	cut := stat.Quantile(0.98, stat.Empirical, sorted, nil)
	lo := sorted[0]
	if cut <= lo {
		cut = sorted[len(sorted)-1]
	}

	overflow := 0
	for overflow < len(sorted) && sorted[len(sorted)-1-overflow] > cut {
		overflow++
	}
	kept := sorted[:len(sorted)-overflow]

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, cut)
	// Top divider must sit strictly above the largest kept value for
	// it to be counted.
	dividers[bins] = math.Nextafter(cut, cut+1)
	counts := stat.Histogram(nil, dividers, kept, nil)

	max := floats.Max(counts)
	for i, c := range counts {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("#", int(c/max*50))
		}
		fmt.Printf("%10.4g .. %10.4g  %6d %s\n", dividers[i], dividers[i+1], int(c), bar)
	}
	if overflow > 0 {
		fmt.Printf("%10s > %10.4g  %6d\n", "", cut, overflow)
	}
}
