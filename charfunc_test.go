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

package landau_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xlab-si/landau"
)

func TestCFOrigin(t *testing.T) {
	l, err := landau.New(-7, 0.3)
	assert.NoError(t, err)

	// Exactly 1, not a limit approximation.
	assert.Equal(t, complex(1, 0), l.CF(0))
}

func TestCFModulus(t *testing.T) {
	l, err := landau.New(2, 1.5)
	assert.NoError(t, err)

	// |CF(t)| depends only on the scale.
	for _, x := range []float64{-10, -1, -0.01, 0.01, 0.5, 3, 100} {
		want := math.Exp(-l.Sigma * math.Abs(x))
		assert.InEpsilon(t, want, cmplx.Abs(l.CF(x)), 1e-12, "t = %v", x)
	}
}

func TestCFConjugateSymmetry(t *testing.T) {
	l, err := landau.New(1, 2)
	assert.NoError(t, err)

	for _, x := range []float64{0.1, 1, 2.5, 40} {
		c := l.CF(x)
		cc := cmplx.Conj(l.CF(-x))
		assert.InDelta(t, real(c), real(cc), 1e-12, "t = %v", x)
		assert.InDelta(t, imag(c), imag(cc), 1e-12, "t = %v", x)
	}
}

func TestCFLocationShift(t *testing.T) {
	std, err := landau.New(0, 2)
	assert.NoError(t, err)
	l, err := landau.New(3, 2)
	assert.NoError(t, err)

	// Shifting the location multiplies the characteristic function by
	// the phase factor exp(i*t*Mu).
	for _, x := range []float64{-4, -0.5, 0.25, 1, 12} {
		phase := cmplx.Exp(complex(0, x*l.Mu))
		want := phase * std.CF(x)
		got := l.CF(x)
		assert.InDelta(t, real(want), real(got), 1e-12, "t = %v", x)
		assert.InDelta(t, imag(want), imag(got), 1e-12, "t = %v", x)
	}
}
