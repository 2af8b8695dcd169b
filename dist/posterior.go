// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"github.com/pkg/errors"

	"github.com/probkit/probkit/quadx"
)

// Posterior is a distribution derived from a caller-supplied
// non-negative function that is proportional to the true density. The
// normalizing constant is the integral of that function over
// (−∞, ∞), computed once by NewPosterior.
//
// A Posterior is immutable after construction and may be shared
// freely across goroutines.
type Posterior struct {
	prop    func(float64) float64
	norm    float64
	normErr float64
}

// NewPosterior returns a Posterior wrapping prop, which must be a
// non-negative integrable function of one variable. It fails if the
// normalization integral is non-finite, not strictly positive, or did
// not converge to quadrature precision.
func NewPosterior(prop func(float64) float64) (*Posterior, error) {
	if prop == nil {
		return nil, errors.New("dist: nil proportional density")
	}
	norm, normErr := quadx.Quad(prop, -inf, inf)
	if math.IsNaN(norm) || math.IsInf(norm, 0) || norm <= 0 {
		return nil, errors.Errorf("dist: posterior normalization is %v, want a positive finite value", norm)
	}
	if normErr > 1e-3*norm {
		return nil, errors.Errorf("dist: posterior normalization did not converge (estimate %v, error %v)", norm, normErr)
	}
	return &Posterior{prop: prop, norm: norm, normErr: normErr}, nil
}

// Norm returns the cached normalizing constant.
func (p *Posterior) Norm() float64 {
	return p.norm
}

// NormErr returns the quadrature error estimate for Norm.
func (p *Posterior) NormErr() float64 {
	return p.normErr
}

// PDF returns the normalized density at x.
func (p *Posterior) PDF(x float64) float64 {
	return p.prop(x) / p.norm
}

func (p *Posterior) PDFEach(xs []float64) []float64 {
	return each(p.PDF, xs)
}

func (p *Posterior) LogPDF(x float64) float64 {
	return math.Log(p.prop(x)) - math.Log(p.norm)
}

func (p *Posterior) LogPDFEach(xs []float64) []float64 {
	return each(p.LogPDF, xs)
}

// CDF integrates the normalized density from −∞ to x.
func (p *Posterior) CDF(x float64) float64 {
	c, _ := quadx.Quad(p.PDF, -inf, x)
	return c
}

// CDFEach returns CDF(xs[i]) for each i. Each entry is an independent
// integration; no partial sums are shared between query points.
func (p *Posterior) CDFEach(xs []float64) []float64 {
	return each(p.CDF, xs)
}

// Bounds expands a bracket around the origin until the mass outside
// it is negligible.
func (p *Posterior) Bounds() (float64, float64) {
	const tail = 1e-4
	lo, hi := -1.0, 1.0
	for i := 0; i < 32 && p.CDF(lo) > tail; i++ {
		lo *= 2
	}
	for i := 0; i < 32 && p.CDF(hi) < 1-tail; i++ {
		hi *= 2
	}
	return lo, hi
}
