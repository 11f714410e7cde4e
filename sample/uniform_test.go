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

package sample_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xlab-si/landau/sample"
)

// testOpenUnitInterval draws values from src and checks they stay
// strictly inside (0, 1) with a mean near 1/2.
func testOpenUnitInterval(t *testing.T, src sample.UniformSource) {
	t.Helper()

	const n = 10000
	sum := 0.0
	for i := 0; i < n; i++ {
		u, err := src.Uniform()
		assert.NoError(t, err)
		assert.Greater(t, u, 0.0)
		assert.Less(t, u, 1.0)
		sum += u
	}

	// Standard error of the mean is about 0.003.
	assert.InDelta(t, 0.5, sum/n, 0.02)
}

func TestCryptoUniform(t *testing.T) {
	testOpenUnitInterval(t, sample.NewCrypto())
}

func TestCryptoUniformDistinctValues(t *testing.T) {
	src := sample.NewCrypto()

	seen := make(map[float64]bool)
	for i := 0; i < 1000; i++ {
		u, err := src.Uniform()
		assert.NoError(t, err)
		seen[u] = true
	}
	assert.Len(t, seen, 1000)
}
