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
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xlab-si/landau"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf <x>",
	Short: "Evaluate the probability density function at x",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, x, err := distAndArg(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%.10g\n", l.Prob(x))

		return nil
	},
}

var cdfCmd = &cobra.Command{
	Use:   "cdf <x>",
	Short: "Evaluate the cumulative distribution function at x",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, x, err := distAndArg(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%.10g\n", l.CDF(x))

		return nil
	},
}

var quantileCmd = &cobra.Command{
	Use:   "quantile <p>",
	Short: "Evaluate the quantile function at probability p",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, p, err := distAndArg(args[0])
		if err != nil {
			return err
		}
		if !(p >= 0 && p <= 1) {
			return errors.Errorf("probability %v outside of the interval [0,1]", p)
		}
		fmt.Printf("%.10g\n", l.Quantile(p))

		return nil
	},
}

var cfCmd = &cobra.Command{
	Use:   "cf <t>",
	Short: "Evaluate the characteristic function at t",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, t, err := distAndArg(args[0])
		if err != nil {
			return err
		}
		c := l.CF(t)
		fmt.Printf("%.10g%+.10gi\n", real(c), imag(c))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(pdfCmd, cdfCmd, quantileCmd, cfCmd)
}

// distAndArg builds the distribution from the persistent flags and
// parses the single numeric argument.
func distAndArg(arg string) (l *landau.Landau, x float64, err error) {
	l, err = newDist()
	if err != nil {
		return nil, 0, err
	}
	x, err = strconv.ParseFloat(arg, 64)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "failed to parse %q as a number", arg)
	}

	return l, x, nil
}
