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

func TestShakeUniform(t *testing.T) {
	testOpenUnitInterval(t, sample.NewShake([]byte("distribution test seed")))
}

func TestShakeReproducible(t *testing.T) {
	a := sample.NewShake([]byte("seed"))
	b := sample.NewShake([]byte("seed"))

	for i := 0; i < 1000; i++ {
		ua, err := a.Uniform()
		assert.NoError(t, err)
		ub, err := b.Uniform()
		assert.NoError(t, err)
		assert.Equal(t, ua, ub)
	}
}

func TestShakeSeedsDiverge(t *testing.T) {
	a := sample.NewShake([]byte("seed-a"))
	b := sample.NewShake([]byte("seed-b"))

	equal := 0
	for i := 0; i < 100; i++ {
		ua, err := a.Uniform()
		assert.NoError(t, err)
		ub, err := b.Uniform()
		assert.NoError(t, err)
		if ua == ub {
			equal++
		}
	}
	assert.Zero(t, equal)
}
