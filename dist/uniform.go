// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformDist is a continuous uniform distribution over [A, B].
//
// If A and B are both 0 (their zero values), they are treated as the
// unit interval [0, 1]. Otherwise A < B must hold.
type UniformDist struct {
	A, B float64

	// Src is the source of randomness used by Rvs. If Src is
	// nil, Rvs uses the global random source.
	Src rand.Source
}

// bounds returns the effective interval, applying the unit-interval
// default.
func (d UniformDist) bounds() (float64, float64) {
	if d.A == 0 && d.B == 0 {
		return 0, 1
	}
	if d.A >= d.B {
		panic("dist: uniform bounds must satisfy A < B")
	}
	return d.A, d.B
}

// PDF returns 1/(B−A) for A ≤ x ≤ B and 0 elsewhere. The indicator
// form keeps PDF and PDFEach identical elementwise.
func (d UniformDist) PDF(x float64) float64 {
	a, b := d.bounds()
	if a <= x && x <= b {
		return 1 / (b - a)
	}
	return 0
}

func (d UniformDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

// LogPDF returns −log(B−A) for A ≤ x ≤ B and −Inf elsewhere.
func (d UniformDist) LogPDF(x float64) float64 {
	a, b := d.bounds()
	if a <= x && x <= b {
		return -math.Log(b - a)
	}
	return -inf
}

func (d UniformDist) LogPDFEach(xs []float64) []float64 {
	return each(d.LogPDF, xs)
}

// Rvs returns n independent draws over [A, B).
func (d UniformDist) Rvs(n int) []float64 {
	a, b := d.bounds()
	u := distuv.Uniform{Min: a, Max: b, Src: d.Src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = u.Rand()
	}
	return xs
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.bounds()
}
