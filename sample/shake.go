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
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Shake samples uniform values from a deterministic SHAKE128 stream
// expanded from a seed. Two instances created with the same seed
// produce the same sequence, which makes sampling reproducible in
// tests and simulations. It is not safe for concurrent use without
// external locking.
type Shake struct {
	stream sha3.ShakeHash
}

// NewShake returns an instance of the Shake source seeded with the
// given bytes.
func NewShake(seed []byte) *Shake {
	stream := sha3.NewShake128()
	stream.Write(seed)

	return &Shake{stream: stream}
}

// Uniform samples a random value from the open interval (0, 1).
func (s *Shake) Uniform() (float64, error) {
	var buf [8]byte
	if _, err := s.stream.Read(buf[:]); err != nil {
		return 0, errors.Wrap(err, "failed to read the SHAKE stream")
	}

	return toOpenUnit(binary.LittleEndian.Uint64(buf[:])), nil
}
