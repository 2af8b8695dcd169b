// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// LogitNormalDist is a logit-normal distribution: the distribution of
// the logistic transform of a Normal(Mu, Sigma) variate. Its support
// is the open interval (0, 1).
type LogitNormalDist struct {
	// Mu and Sigma are the mean and standard deviation on the
	// logit scale. Sigma > 0.
	Mu, Sigma float64

	// Src is the source of randomness used by Rvs. If Src is
	// nil, Rvs uses the global random source.
	Src rand.Source
}

func (d LogitNormalDist) check() {
	if d.Sigma <= 0 {
		panic("dist: logit-normal standard deviation must be positive")
	}
}

// logit returns log(x) − log(1−x). It requires 0 < x < 1.
func logit(x float64) float64 {
	return math.Log(x) - math.Log(1-x)
}

// logistic is the inverse of logit.
func logistic(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func (d LogitNormalDist) LogPDF(x float64) float64 {
	d.check()
	if x <= 0 || x >= 1 {
		panic("dist: logit-normal sample value must be in (0, 1)")
	}
	z := (logit(x) - d.Mu) / d.Sigma
	return -math.Log(x) - math.Log(1-x) - 0.5*math.Log(2*math.Pi*d.Sigma*d.Sigma) - 0.5*z*z
}

func (d LogitNormalDist) LogPDFEach(xs []float64) []float64 {
	return each(d.LogPDF, xs)
}

func (d LogitNormalDist) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d LogitNormalDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

// Rvs returns n independent draws from this distribution, obtained by
// pushing normal draws on the logit scale through the logistic
// function.
func (d LogitNormalDist) Rvs(n int) []float64 {
	d.check()
	norm := distuv.Normal{Mu: d.Mu, Sigma: d.Sigma, Src: d.Src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = logistic(norm.Rand())
	}
	return xs
}

func (d LogitNormalDist) Bounds() (float64, float64) {
	return 0, 1
}
