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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xlab-si/landau"
)

// standard returns the distribution with Mu = 0, Sigma = 1.
func standard(t *testing.T) *landau.Landau {
	t.Helper()
	l, err := landau.New(0, 1)
	assert.NoError(t, err)

	return l
}

func TestProbNonNegative(t *testing.T) {
	l, err := landau.New(-1.5, 2.5)
	assert.NoError(t, err)

	for x := -50.0; x <= 1000; x += 0.37 {
		assert.GreaterOrEqual(t, l.Prob(x), 0.0, "x = %v", x)
	}
}

func TestProbReferenceValues(t *testing.T) {
	l := standard(t)

	// The value at the origin is the leading numerator coefficient of
	// the central rational fit.
	assert.InDelta(t, 0.1788541609, l.Prob(0), 1e-10)

	// Deep left tail underflows to zero.
	assert.Equal(t, 0.0, l.Prob(-40))

	// Far right tail falls off roughly as 1/x^2.
	assert.InEpsilon(t, 1.147153e-05, l.Prob(300), 1e-5)
}

func TestProbScalingLaw(t *testing.T) {
	std := standard(t)
	l, err := landau.New(1.5, 4)
	assert.NoError(t, err)

	for _, x := range []float64{-8, -2, 0, 1.5, 7, 42} {
		v := (x - l.Mu) / l.Sigma
		assert.InEpsilon(t, std.Prob(v)/l.Sigma, l.Prob(x), 1e-12, "x = %v", x)
	}
}

func TestProbNonPositiveScale(t *testing.T) {
	// Direct construction can bypass New; the evaluator degrades to 0
	// instead of producing garbage.
	l := &landau.Landau{Mu: 0, Sigma: -1}
	assert.Equal(t, 0.0, l.Prob(0.5))

	l = &landau.Landau{Mu: 0, Sigma: 0}
	assert.Equal(t, 0.0, l.Prob(0.5))
}

func TestProbRegionContinuity(t *testing.T) {
	l := standard(t)

	for _, b := range []float64{-5.5, -1, 1, 5, 12, 50, 300} {
		lo := l.Prob(b - 1e-9)
		hi := l.Prob(b + 1e-9)
		assert.InEpsilon(t, lo, hi, 1e-5, "boundary %v", b)
	}
}

func TestLogProb(t *testing.T) {
	l, err := landau.New(0.5, 2)
	assert.NoError(t, err)

	for _, x := range []float64{-8, -3, -1, 0, 0.5, 3, 20, 400} {
		assert.InEpsilon(t, l.Prob(x), math.Exp(l.LogProb(x)), 1e-12, "x = %v", x)
	}
}

func TestLogProbFarLeftTail(t *testing.T) {
	l := standard(t)

	// Prob has long underflowed here, the log-space evaluation has not.
	assert.Equal(t, 0.0, l.Prob(-10))
	assert.InDelta(t, -8108.5028610, l.LogProb(-10), 1e-3)

	// Decreasing ever faster on the way further left.
	assert.Greater(t, l.LogProb(-10), l.LogProb(-11))
	assert.True(t, math.IsInf(l.LogProb(-800), -1))
}
