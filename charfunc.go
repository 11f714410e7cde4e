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

import (
	"math"
	"math/cmplx"
)

// CF returns the value of the characteristic function at t:
//
//	exp(i*t*(Mu + Sigma*(i*sign(t) - (2/pi)*log|t|)))
//
// The logarithm is singular at the origin, where the limit value 1 is
// returned exactly.
func (l *Landau) CF(t float64) complex128 {
	if t == 0 {
		return complex(1, 0)
	}

	re := -l.Sigma * math.Abs(t)
	im := t * (l.Mu - l.Sigma*(2/math.Pi)*math.Log(math.Abs(t)))

	return cmplx.Exp(complex(re, im))
}
