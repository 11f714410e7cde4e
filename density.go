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

// invSqrt2Pi is 1/sqrt(2*pi) to the precision the reference fit
// carries it.
const invSqrt2Pi = 0.3989422803

// Coefficients of the rational approximations of the standard Landau
// density, one numerator/denominator pair per region, from the DENLAN
// routine of Koelbig and Schorr. The digits are the published ones and
// must not be altered: the claimed accuracy of a few parts in 10^4
// holds only for these exact values.
var (
	denP1 = [5]float64{0.4259894875, -0.1249762550, 0.03984243700, -0.006298287635, 0.001511162253}
	denQ1 = [5]float64{1.0, -0.3388260629, 0.09594393323, -0.01608042283, 0.003778942063}

	denP2 = [5]float64{0.1788541609, 0.1173957403, 0.01488850518, -0.001394989411, 0.0001283617211}
	denQ2 = [5]float64{1.0, 0.7428795082, 0.3153932961, 0.06694219548, 0.008790609714}

	denP3 = [5]float64{0.1788544503, 0.09359161662, 0.006325387654, 0.00006611667319, -0.000002031049101}
	denQ3 = [5]float64{1.0, 0.6097809921, 0.2560616665, 0.04746722384, 0.006957301675}

	denP4 = [5]float64{0.9874054407, 118.6723273, 849.2794360, -743.7792444, 427.0262186}
	denQ4 = [5]float64{1.0, 106.8615961, 337.6496214, 2016.712389, 1597.063511}

	denP5 = [5]float64{1.003675074, 167.5702434, 4789.711289, 21217.86767, -22324.94910}
	denQ5 = [5]float64{1.0, 156.9424537, 3745.310488, 9834.698876, 66924.28357}

	denP6 = [5]float64{1.000827619, 664.9143136, 62972.92665, 475554.6998, -5743609.109}
	denQ6 = [5]float64{1.0, 651.4101098, 56974.73333, 165917.4725, -2815759.939}

	// Polynomial corrections of the asymptotic forms in the two
	// outermost regions.
	denA1 = [3]float64{0.04166666667, -0.01996527778, 0.02709538966}
	denA2 = [2]float64{-1.845568670, -4.284640743}
)

// ratio5 evaluates the ratio of two degree-4 polynomials at v with
// nested (Horner) evaluation.
func ratio5(p, q *[5]float64, v float64) float64 {
	return (p[0] + (p[1]+(p[2]+(p[3]+p[4]*v)*v)*v)*v) /
		(q[0] + (q[1]+(q[2]+(q[3]+q[4]*v)*v)*v)*v)
}

// Prob returns the value of the probability density function at x.
// It is nonnegative everywhere. As a defensive fallback it returns 0
// when Sigma is not positive; New rejects such parameters up front.
func (l *Landau) Prob(x float64) float64 {
	if l.Sigma <= 0 {
		return 0
	}

	v := (x - l.Mu) / l.Sigma

	return standardProb(v) / l.Sigma
}

// LogProb returns the natural logarithm of the density at x. In the
// far left tail the density decays like exp(-exp(-v)) and underflows
// to 0 long before the logarithm stops being representable, so that
// region is evaluated directly in log space.
func (l *Landau) LogProb(x float64) float64 {
	if l.Sigma <= 0 {
		return math.Inf(-1)
	}

	v := (x - l.Mu) / l.Sigma
	if v < -5.5 {
		// log of the asymptotic form used by standardProb, with
		// exp(-1/u) and sqrt(u) expanded: u = exp(v+1), so
		// 0.5*log(u) is (v+1)/2.
		u := math.Exp(v + 1)
		if u == 0 {
			return math.Inf(-1)
		}
		c := (denA1[0] + (denA1[1]+denA1[2]*u)*u) * u

		return math.Log(invSqrt2Pi) - 1/u + 0.5*(v+1) + math.Log1p(c) - math.Log(l.Sigma)
	}

	return math.Log(standardProb(v)) - math.Log(l.Sigma)
}

// standardProb evaluates the density of the standard distribution
// (Mu = 0, Sigma = 1) at v, dispatching on the seven regions of the
// reference approximation.
func standardProb(v float64) float64 {
	switch {
	case v < -5.5:
		u := math.Exp(v + 1.0)
		if u < 1e-10 {
			return 0
		}

		return invSqrt2Pi * (math.Exp(-1/u) / math.Sqrt(u)) *
			(1 + (denA1[0]+(denA1[1]+denA1[2]*u)*u)*u)
	case v < -1:
		u := math.Exp(-v - 1)

		return math.Exp(-u) * math.Sqrt(u) * ratio5(&denP1, &denQ1, v)
	case v < 1:
		return ratio5(&denP2, &denQ2, v)
	case v < 5:
		return ratio5(&denP3, &denQ3, v)
	case v < 12:
		u := 1 / v

		return u * u * ratio5(&denP4, &denQ4, u)
	case v < 50:
		u := 1 / v

		return u * u * ratio5(&denP5, &denQ5, u)
	case v < 300:
		u := 1 / v

		return u * u * ratio5(&denP6, &denQ6, u)
	default:
		u := 1 / (v - v*math.Log(v)/(v+1))

		return u * u * (1 + (denA2[0]+denA2[1]*u)*u)
	}
}
