// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// logNormalClip is the threshold below which the log-normal
// log-density switches to a normal-CDF tail approximation. The exact
// formula has a log(x) singularity as x → 0.
const logNormalClip = 1e-6

// LogNormalDist is a log-normal distribution whose logarithm has mean
// Mu and standard deviation Sigma.
//
// Sigma == 0 is a degenerate point mass: the log-density is 0 where
// x == Mu and −Inf elsewhere. The comparison is against Mu on the
// untransformed scale, not exp(Mu); this matches long-standing
// behavior and is deliberately preserved.
type LogNormalDist struct {
	// Mu is the location on the log scale.
	Mu float64

	// Sigma is the spread on the log scale. Sigma >= 0.
	Sigma float64

	// Src is the source of randomness used by Rvs. If Src is
	// nil, Rvs uses the global random source.
	Src rand.Source
}

func (d LogNormalDist) check() {
	if d.Sigma < 0 {
		panic("dist: log-normal spread must be non-negative")
	}
}

// tailLogPDF is the log-density used for x at or below the clipping
// threshold: the log of the normal CDF tail at the threshold,
// expressed through the error function.
func (d LogNormalDist) tailLogPDF() float64 {
	return math.Log(0.5 + 0.5*math.Erf((math.Log(logNormalClip)-d.Mu)/(math.Sqrt2*d.Sigma)))
}

// exactLogPDF is the log-density for x above the clipping threshold.
func (d LogNormalDist) exactLogPDF(x float64) float64 {
	logx := math.Log(x)
	z := (logx - d.Mu) / d.Sigma
	return -logx - 0.5*log2Pi - math.Log(d.Sigma) - 0.5*z*z
}

func (d LogNormalDist) LogPDF(x float64) float64 {
	d.check()
	if d.Sigma == 0 {
		if x == d.Mu {
			return 0
		}
		return -inf
	}
	if x > logNormalClip {
		return d.exactLogPDF(x)
	}
	return d.tailLogPDF()
}

// LogPDFEach returns LogPDF(xs[i]) for each i. The below-threshold
// tail value is computed once and broadcast, then entries above the
// threshold are overwritten with the exact formula.
func (d LogNormalDist) LogPDFEach(xs []float64) []float64 {
	d.check()
	res := make([]float64, len(xs))
	if d.Sigma == 0 {
		for i, x := range xs {
			if x == d.Mu {
				res[i] = 0
			} else {
				res[i] = -inf
			}
		}
		return res
	}
	tail := d.tailLogPDF()
	for i, x := range xs {
		if x > logNormalClip {
			res[i] = d.exactLogPDF(x)
		} else {
			res[i] = tail
		}
	}
	return res
}

func (d LogNormalDist) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d LogNormalDist) PDFEach(xs []float64) []float64 {
	return each(d.PDF, xs)
}

// Rvs returns n independent draws from this distribution.
func (d LogNormalDist) Rvs(n int) []float64 {
	d.check()
	if d.Sigma == 0 {
		panic("dist: cannot sample a degenerate log-normal")
	}
	ln := distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma, Src: d.Src}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = ln.Rand()
	}
	return xs
}

func (d LogNormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return 0, math.Exp(d.Mu + stddevs*d.Sigma)
}
