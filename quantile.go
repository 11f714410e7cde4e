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

package landau

import "math"

// Quantile returns the value x at which CDF(x) equals p, inverting the
// cumulative distribution through the precomputed quantile table. It
// panics when p is outside [0, 1]; the endpoints map to negative and
// positive infinity.
//
// The interpolation bands on the table index i = floor(1000*p) follow
// the RANLAN routine: linear interpolation for 70 <= i <= 800 where
// the quantile function is nearly straight at the table's resolution,
// a second-difference correction on top of the linear term for
// 7 <= i <= 980 outside that band, and analytic formulas past the ends
// of the table, with the right tail split at p = 0.999 into two
// rational fits of different depth. The band edges are tuned to the
// table values and must not be moved.
func (l *Landau) Quantile(p float64) float64 {
	switch {
	case p < 0 || p > 1 || math.IsNaN(p):
		panic("landau: probability outside of the interval [0,1]")
	case p == 0:
		return math.Inf(-1)
	case p == 1:
		return math.Inf(1)
	}

	return l.Mu + l.Sigma*standardQuantile(p)
}

// standardQuantile inverts the cumulative distribution of the standard
// distribution at p in (0, 1).
func standardQuantile(p float64) float64 {
	t := &quantileTable
	u := 1000 * p
	i := int(u)
	u -= float64(i)

	switch {
	case i >= 70 && i <= 800:
		return t[i-1] + u*(t[i]-t[i-1])
	case i >= 7 && i <= 980:
		return t[i-1] + u*(t[i]-t[i-1]) -
			0.25*u*(1-u)*(t[i+1]-t[i]-t[i-1]+t[i-2])
	case i < 7:
		v := math.Log(p)
		w := 1 / v

		return ((0.99858950 + (3.45213058e1+1.70854528e1*w)*w) /
			(1 + (3.41760202e1+4.01244582*w)*w)) *
			(-math.Log(-0.91893853-v) - 1)
	default:
		w := 1 - p
		v := w * w
		if p <= 0.999 {
			return (1.00060006 + 2.63991156e2*w + 4.37320068e3*v) /
				((1 + 2.57368075e2*w + 3.41448018e3*v) * w)
		}

		return (1.00001538 + 6.07514119e3*w + 7.34266409e5*v) /
			((1 + 6.06511919e3*w + 6.94021044e5*v) * w)
	}
}
