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

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
)

// UniformSource yields uniformly distributed values from the open
// interval (0, 1), one independent unbiased value per call. When a
// source is shared across concurrent callers, the source owns the
// contract of handing out independent values; see the individual
// implementations for their guarantees.
type UniformSource interface {
	Uniform() (float64, error)
}

// Crypto samples uniform values from the operating system's
// cryptographic random number generator. It is safe for concurrent
// use.
type Crypto struct{}

// NewCrypto returns an instance of the Crypto source.
func NewCrypto() *Crypto {
	return &Crypto{}
}

// Uniform samples a random value from the open interval (0, 1).
func (c *Crypto) Uniform() (float64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, errors.Wrap(err, "failed to read random bytes")
	}

	return toOpenUnit(binary.LittleEndian.Uint64(buf[:])), nil
}

// toOpenUnit maps a random 64-bit value to the open interval (0, 1):
// the top 53 bits fill the float64 mantissa and the added half step
// keeps both endpoints out of range.
func toOpenUnit(r uint64) float64 {
	return (float64(r>>11) + 0.5) / (1 << 53)
}
