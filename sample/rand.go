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

package sample

import "math/rand"

// FromRand samples uniform values from a caller-supplied math/rand
// generator, for callers that already hold a seeded generator. The
// safety of concurrent use is that of the wrapped generator.
type FromRand struct {
	rand *rand.Rand
}

// NewFromRand returns an instance of the FromRand source wrapping r.
func NewFromRand(r *rand.Rand) *FromRand {
	return &FromRand{rand: r}
}

// Uniform samples a random value from the open interval (0, 1).
func (f *FromRand) Uniform() (float64, error) {
	return toOpenUnit(f.rand.Uint64()), nil
}
