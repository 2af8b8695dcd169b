// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
//
// NormalDist provides no CDF; callers needing one can compose it from
// math.Erf as (1 + erf((x−μ)/(σ√2)))/2.
type NormalDist struct {
	Mu, Sigma float64

	// Src is the source of randomness used by Rvs. If Src is
	// nil, Rvs uses the global random source.
	Src rand.Source
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{Mu: 0, Sigma: 1}

func (d NormalDist) check() {
	if d.Sigma <= 0 {
		panic("dist: normal standard deviation must be positive")
	}
}

func (d NormalDist) LogPDF(x float64) float64 {
	d.check()
	z := (x - d.Mu) / d.Sigma
	return -0.5*log2Pi - math.Log(d.Sigma) - 0.5*z*z
}

func (d NormalDist) LogPDFEach(xs []float64) []float64 {
	return each(d.LogPDF, xs)
}

func (d NormalDist) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d NormalDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

// Rvs returns n independent draws from this distribution.
func (d NormalDist) Rvs(n int) []float64 {
	d.check()
	norm := distuv.Normal{Mu: d.Mu, Sigma: d.Sigma, Src: d.Src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = norm.Rand()
	}
	return xs
}

func (d NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return d.Mu - stddevs*d.Sigma, d.Mu + stddevs*d.Sigma
}
