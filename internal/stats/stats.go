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

// Package stats provides a running statistics accumulator for streams
// of float64 values.
package stats

import "math"

// Calc accumulates count, minimum, maximum, mean and standard
// deviation of a stream of values in a single pass. The mean and
// variance are updated with Welford's recurrence, which stays accurate
// when the values are large and close together. The zero value is
// ready to use.
type Calc struct {
	cnt  int
	min  float64
	max  float64
	mean float64
	m2   float64
}

// Add folds values into the accumulator.
func (c *Calc) Add(values ...float64) {
	for _, x := range values {
		if c.cnt == 0 {
			c.min, c.max = x, x
		} else if x < c.min {
			c.min = x
		} else if x > c.max {
			c.max = x
		}
		c.cnt++
		d := x - c.mean
		c.mean += d / float64(c.cnt)
		c.m2 += d * (x - c.mean)
	}
}

// Reset restores the accumulator to its initial state.
func (c *Calc) Reset() {
	*c = Calc{}
}

// Count returns the number of accumulated values.
func (c *Calc) Count() int {
	return c.cnt
}

// Min returns the smallest accumulated value, 0 when empty.
func (c *Calc) Min() float64 {
	return c.min
}

// Max returns the largest accumulated value, 0 when empty.
func (c *Calc) Max() float64 {
	return c.max
}

// Mean returns the arithmetic mean of the accumulated values.
func (c *Calc) Mean() float64 {
	return c.mean
}

// Variance returns the unbiased sample variance, 0 with fewer than two
// values.
func (c *Calc) Variance() float64 {
	if c.cnt < 2 {
		return 0
	}

	return c.m2 / float64(c.cnt-1)
}

// StdDev returns the sample standard deviation.
func (c *Calc) StdDev() float64 {
	return math.Sqrt(c.Variance())
}
