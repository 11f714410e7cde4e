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

package landau

import (
	"math"

	"github.com/pkg/errors"

	"github.com/xlab-si/landau/sample"
)

// Mode and median of the standard Landau distribution (Mu = 0,
// Sigma = 1). The density reaches its maximum at the mode; the median
// is the table value of the quantile function at probability 1/2.
const (
	standardMode   = -0.22278298
	standardMedian = 1.355780
)

// Landau is the Landau probability distribution with location
// parameter Mu and scale parameter Sigma, Sigma > 0. Src supplies the
// uniform values consumed by Rand; when it is nil, Rand falls back to
// a cryptographic source.
//
// The zero value is not usable; construct instances with New or fill
// in the fields directly, keeping Sigma positive.
type Landau struct {
	Mu    float64
	Sigma float64
	Src   sample.UniformSource
}

// New returns an instance of the Landau distribution with the given
// location and scale parameters. It returns an error when sigma is not
// positive.
func New(mu, sigma float64) (*Landau, error) {
	if sigma <= 0 || math.IsNaN(sigma) {
		return nil, errors.New("scale parameter sigma must be positive")
	}

	return &Landau{
		Mu:    mu,
		Sigma: sigma,
	}, nil
}

// Rand draws one random value distributed according to l. It consumes
// exactly one uniform value from the configured source per call.
func (l *Landau) Rand() (float64, error) {
	src := l.Src
	if src == nil {
		src = defaultSource
	}

	u, err := src.Uniform()
	if err != nil {
		return 0, errors.Wrap(err, "failed to draw a uniform value")
	}

	return l.Quantile(u), nil
}

// defaultSource backs Rand when no source is configured. It is safe
// for concurrent use.
var defaultSource = sample.NewCrypto()

// Mode returns the location of the density maximum.
func (l *Landau) Mode() float64 {
	return l.Mu + l.Sigma*standardMode
}

// Median returns the value below which half of the probability mass
// lies.
func (l *Landau) Median() float64 {
	return l.Mu + l.Sigma*standardMedian
}

// Mean returns positive infinity: the tail of the Landau density falls
// off as 1/x^2, so the expectation integral diverges.
func (l *Landau) Mean() float64 {
	return math.Inf(1)
}

// Variance returns positive infinity, as the second moment diverges
// together with the first.
func (l *Landau) Variance() float64 {
	return math.Inf(1)
}

// NumParameters returns the number of parameters of the distribution.
func (l *Landau) NumParameters() int {
	return 2
}
