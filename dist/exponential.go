// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ExpDist is an exponential distribution with rate Beta.
type ExpDist struct {
	// Beta is the rate parameter. Beta > 0. The scale is 1/Beta.
	Beta float64

	// Src is the source of randomness used by Rvs. If Src is
	// nil, Rvs uses the global random source.
	Src rand.Source
}

func (d ExpDist) check() {
	if d.Beta <= 0 {
		panic("dist: exponential rate must be positive")
	}
}

// LogPDF returns log β − βx.
func (d ExpDist) LogPDF(x float64) float64 {
	d.check()
	return math.Log(d.Beta) - d.Beta*x
}

func (d ExpDist) LogPDFEach(xs []float64) []float64 {
	return each(d.LogPDF, xs)
}

func (d ExpDist) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d ExpDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

// Rvs returns n independent draws from this distribution.
func (d ExpDist) Rvs(n int) []float64 {
	d.check()
	e := distuv.Exponential{Rate: d.Beta, Src: d.Src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = e.Rand()
	}
	return xs
}

func (d ExpDist) Bounds() (float64, float64) {
	// The upper bound leaves 1e-4 of the mass in the tail.
	return 0, math.Log(1e4) / d.Beta
}
