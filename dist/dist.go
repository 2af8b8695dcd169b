// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// PDFEach returns PDF(xs[i]) for each i.
	PDFEach(xs []float64) []float64

	// LogPDF returns the natural logarithm of the probability
	// density function at x. It is computed directly in log
	// space, so it remains finite and accurate where PDF
	// underflows.
	LogPDF(x float64) float64

	// LogPDFEach returns LogPDF(xs[i]) for each i.
	LogPDFEach(xs []float64) []float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF. The total weight outside of these bounds should be
	// approximately 0.
	Bounds() (float64, float64)
}

// A CumDist is a Dist with a cumulative distribution function.
//
// Families without a CumDist implementation (normal, exponential,
// uniform, log-normal) leave composing a CDF to the caller.
type CumDist interface {
	Dist

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF up to x.
	CDF(x float64) float64

	// CDFEach returns CDF(xs[i]) for each i.
	CDFEach(xs []float64) []float64
}

// A Sampler draws random variates from a distribution.
type Sampler interface {
	// Rvs returns n independent draws from this distribution.
	Rvs(n int) []float64
}
