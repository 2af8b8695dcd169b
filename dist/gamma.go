// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// GammaDist is a gamma distribution with shape Alpha and rate Beta.
//
// Note that Beta is the rate, not the scale. The scale is 1/Beta.
type GammaDist struct {
	// Alpha is the shape parameter. Alpha > 0.
	Alpha float64

	// Beta is the rate parameter. Beta > 0.
	Beta float64

	// Src is the source of randomness used by Rvs. If Src is
	// nil, Rvs uses the global random source.
	Src rand.Source
}

func (d GammaDist) check() {
	if d.Alpha <= 0 {
		panic("dist: gamma shape must be positive")
	}
	if d.Beta <= 0 {
		panic("dist: gamma rate must be positive")
	}
}

// LogPDF returns the log-density
//
//	α log β − log Γ(α) + (α−1) log x − βx
//
// evaluated at x.
func (d GammaDist) LogPDF(x float64) float64 {
	d.check()
	lg, _ := math.Lgamma(d.Alpha)
	return d.Alpha*math.Log(d.Beta) - lg + (d.Alpha-1)*math.Log(x) - d.Beta*x
}

// LogPDFEach returns LogPDF(xs[i]) for each i.
func (d GammaDist) LogPDFEach(xs []float64) []float64 {
	return each(d.LogPDF, xs)
}

func (d GammaDist) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d GammaDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

// CDF returns the regularized lower incomplete gamma function
// evaluated at (α, xβ). For x ≤ 0 it returns 0.
func (d GammaDist) CDF(x float64) float64 {
	d.check()
	if x <= 0 {
		return 0
	}
	return mathext.GammaIncReg(d.Alpha, x*d.Beta)
}

func (d GammaDist) CDFEach(xs []float64) []float64 {
	return each(d.CDF, xs)
}

// Rvs returns n independent draws from this distribution.
func (d GammaDist) Rvs(n int) []float64 {
	d.check()
	g := distuv.Gamma{Alpha: d.Alpha, Beta: d.Beta, Src: d.Src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = g.Rand()
	}
	return xs
}

func (d GammaDist) Bounds() (float64, float64) {
	// Mean plus four standard deviations covers all but a
	// vanishing upper tail.
	return 0, (d.Alpha + 4*math.Sqrt(d.Alpha)) / d.Beta
}
