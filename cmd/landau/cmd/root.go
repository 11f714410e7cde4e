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
	"github.com/spf13/cobra"

	"github.com/xlab-si/landau"
)

var (
	mu    float64
	sigma float64
)

var rootCmd = &cobra.Command{
	Use:   "landau",
	Short: "Evaluate and sample the Landau distribution",
	Long: `landau evaluates the Landau probability distribution and draws
random samples from it.

The distribution is parametrized by a location (--mu) and a positive
scale (--sigma). Density, cumulative distribution, quantile and
characteristic function are evaluated with the piecewise rational
approximations of Koelbig and Schorr; sampling inverts the cumulative
distribution through a precomputed quantile table.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&mu, "mu", 0, "location parameter")
	rootCmd.PersistentFlags().Float64Var(&sigma, "sigma", 1, "scale parameter, must be positive")
}

// newDist builds the distribution from the persistent flags.
func newDist() (*landau.Landau, error) {
	return landau.New(mu, sigma)
}
