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

// Package sample provides sources of uniformly distributed random
// values from the open interval (0, 1).
//
// Package sample defines the UniformSource interface along with
// implementations backed by the operating system's cryptographic
// generator, by a deterministic seeded SHAKE128 stream, and by a
// caller-supplied math/rand generator. Its primary purpose is to feed
// inverse-transform samplers, which consume exactly one uniform value
// per variate they produce.
package sample
