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

package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xlab-si/landau/internal/stats"
)

func TestCalc(t *testing.T) {
	var c stats.Calc
	c.Add(2, 4, 4, 4, 5, 5, 7, 9)

	assert.Equal(t, 8, c.Count())
	assert.Equal(t, 2.0, c.Min())
	assert.Equal(t, 9.0, c.Max())
	assert.InDelta(t, 5.0, c.Mean(), 1e-12)
	assert.InDelta(t, 32.0/7, c.Variance(), 1e-12)
}

func TestCalcEmpty(t *testing.T) {
	var c stats.Calc

	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 0.0, c.Mean())
	assert.Equal(t, 0.0, c.Variance())
	assert.Equal(t, 0.0, c.StdDev())
}

func TestCalcSingleValue(t *testing.T) {
	var c stats.Calc
	c.Add(-3.5)

	assert.Equal(t, 1, c.Count())
	assert.Equal(t, -3.5, c.Min())
	assert.Equal(t, -3.5, c.Max())
	assert.Equal(t, -3.5, c.Mean())
	assert.Equal(t, 0.0, c.Variance())
}

func TestCalcReset(t *testing.T) {
	var c stats.Calc
	c.Add(1, 2, 3)
	c.Reset()

	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 0.0, c.Mean())
}

func TestCalcLargeOffset(t *testing.T) {
	// Welford's recurrence keeps the variance accurate when the values
	// sit far from zero.
	var c stats.Calc
	for _, x := range []float64{1, 2, 3, 4, 5} {
		c.Add(1e9 + x)
	}

	assert.InDelta(t, 1e9+3, c.Mean(), 1e-3)
	assert.InDelta(t, 2.5, c.Variance(), 1e-3)
}
