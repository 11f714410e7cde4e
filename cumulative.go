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

// Coefficients of the rational approximations of the standard Landau
// cumulative distribution function, from the DISLAN routine of Koelbig
// and Schorr. The region split differs from the density's in the
// upper-middle boundary (4 instead of 5); the two fits were tuned
// independently and the asymmetry is part of the reference.
var (
	cdfP1 = [5]float64{0.2514091491, -0.06250580444, 0.01458381230, -0.002108817737, 0.0007411247290}
	cdfQ1 = [5]float64{1.0, -0.005571175625, 0.06225310236, -0.003137378427, 0.001931496439}

	cdfP2 = [4]float64{0.2868328584, 0.3564363231, 0.1523518695, 0.02251304883}
	cdfQ2 = [4]float64{1.0, 0.6191136137, 0.1720721448, 0.02278594771}

	cdfP3 = [4]float64{0.2868329066, 0.3003828436, 0.09950951941, 0.008733827185}
	cdfQ3 = [4]float64{1.0, 0.4237190502, 0.1095631512, 0.008693851567}

	cdfP4 = [4]float64{1.000351630, 4.503592498, 10.85883880, 7.536052269}
	cdfQ4 = [4]float64{1.0, 5.539969678, 19.33581111, 27.21321508}

	cdfP5 = [4]float64{1.000006517, 49.09414111, 85.05544753, 153.2153455}
	cdfQ5 = [4]float64{1.0, 50.09928881, 139.9819104, 420.0002909}

	cdfP6 = [4]float64{1.000000983, 132.9868456, 916.2149244, -960.5054274}
	cdfQ6 = [4]float64{1.0, 133.9887843, 1055.990413, 553.2224619}

	cdfA1 = [3]float64{-0.4583333333, 0.6675347222, -1.641741416}
	cdfA2 = [3]float64{1.0, -0.4227843351, -2.043403138}
)

// ratio4 evaluates the ratio of two degree-3 polynomials at v with
// nested (Horner) evaluation.
func ratio4(p, q *[4]float64, v float64) float64 {
	return (p[0] + (p[1]+(p[2]+p[3]*v)*v)*v) /
		(q[0] + (q[1]+(q[2]+q[3]*v)*v)*v)
}

// CDF returns the value of the cumulative distribution function at x.
// It is nondecreasing in x, tends to 0 as x goes to negative infinity
// and to 1 as x goes to positive infinity. Callers own the Sigma > 0
// invariant; New enforces it at construction.
func (l *Landau) CDF(x float64) float64 {
	v := (x - l.Mu) / l.Sigma

	return standardCDF(v)
}

// Survival returns 1 - CDF(x). Beyond the last region boundary it
// evaluates the tail polynomial directly, avoiding the cancellation a
// literal 1 - CDF(x) would suffer where the CDF is close to 1.
func (l *Landau) Survival(x float64) float64 {
	v := (x - l.Mu) / l.Sigma
	if v >= 300 {
		u := 1 / (v - v*math.Log(v)/(v+1))

		return (cdfA2[0] + (cdfA2[1]+cdfA2[2]*u)*u) * u
	}

	return 1 - standardCDF(v)
}

// standardCDF evaluates the cumulative distribution function of the
// standard distribution at v over the seven regions of the reference
// approximation.
func standardCDF(v float64) float64 {
	switch {
	case v < -5.5:
		u := math.Exp(v + 1)

		return invSqrt2Pi * math.Exp(-1/u) * math.Sqrt(u) *
			(1 + (cdfA1[0]+(cdfA1[1]+cdfA1[2]*u)*u)*u)
	case v < -1:
		u := math.Exp(-v - 1)

		return math.Exp(-u) / math.Sqrt(u) * ratio5(&cdfP1, &cdfQ1, v)
	case v < 1:
		return ratio4(&cdfP2, &cdfQ2, v)
	case v < 4:
		return ratio4(&cdfP3, &cdfQ3, v)
	case v < 12:
		u := 1 / v

		return ratio4(&cdfP4, &cdfQ4, u)
	case v < 50:
		u := 1 / v

		return ratio4(&cdfP5, &cdfQ5, u)
	case v < 300:
		u := 1 / v

		return ratio4(&cdfP6, &cdfQ6, u)
	default:
		u := 1 / (v - v*math.Log(v)/(v+1))

		return 1 - (cdfA2[0]+(cdfA2[1]+cdfA2[2]*u)*u)*u
	}
}
