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

// Package landau evaluates the Landau probability distribution and
// draws random samples from it.
//
// The Landau distribution is a heavy-tailed continuous distribution
// describing the fluctuations of the energy lost by a charged particle
// traversing a thin layer of matter. Neither its density nor its
// cumulative distribution function has a closed elementary form; the
// package evaluates both with the piecewise rational approximations of
// K.S. Koelbig and B. Schorr, "A program package for the Landau
// distribution", Comput. Phys. Commun. 31 (1984) 97-111 (the CERN
// library routines DENLAN, DISLAN and RANLAN). The approximations are
// accurate to a few parts in 10^4 over the whole real line.
//
// Sampling inverts the cumulative distribution through a precomputed
// quantile table with interpolation in the bulk and analytic formulas
// in both tails, consuming exactly one uniform value per sample. The
// uniform values come from an implementation of sample.UniformSource;
// the package sample provides cryptographic, deterministic seeded and
// math/rand backed sources.
//
// All evaluators are pure functions over their inputs and immutable
// package-level tables, so any number of calls may run concurrently.
package landau
