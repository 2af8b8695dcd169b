// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// quadx provides one-dimensional numerical quadrature over possibly
// infinite intervals, with an error estimate.
package quadx // import "github.com/probkit/probkit/quadx"

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// quadNodes is the number of abscissas in the lower-order estimate.
// The higher-order estimate uses twice as many, and the difference of
// the two is the reported error bound.
const quadNodes = 120

// Quad estimates the definite integral of f from min to max, either
// or both of which may be infinite, along with an error estimate.
//
// Infinite bounds are mapped onto a finite interval by a rational
// change of variable and the result is integrated with a fixed-order
// Gauss-Legendre rule. The integrand must decay toward infinite
// bounds; a divergent integral shows up as a large or non-finite
// estimate with a comparably large error bound, not as a failure of
// Quad itself.
func Quad(f func(float64) float64, min, max float64) (est, errEst float64) {
	if min == max {
		return 0, 0
	}
	if min > max {
		est, errEst = Quad(f, max, min)
		return -est, errEst
	}

	g, lo, hi := transform(f, min, max)
	coarse := quad.Fixed(g, lo, hi, quadNodes, nil, 0)
	fine := quad.Fixed(g, lo, hi, 2*quadNodes, nil, 0)
	return fine, math.Abs(fine - coarse)
}

// transform rewrites the integral of f over [min, max] as an integral
// of g over a finite interval.
func transform(f func(float64) float64, min, max float64) (g func(float64) float64, lo, hi float64) {
	loInf := math.IsInf(min, -1)
	hiInf := math.IsInf(max, 1)
	switch {
	case loInf && hiInf:
		// x = u/(1−u²) maps (−1, 1) onto (−∞, ∞) with
		// dx = (1+u²)/(1−u²)² du.
		return func(u float64) float64 {
			w := 1 - u*u
			return f(u/w) * (1 + u*u) / (w * w)
		}, -1, 1
	case hiInf:
		// x = min + u/(1−u) maps (0, 1) onto (min, ∞) with
		// dx = du/(1−u)².
		return func(u float64) float64 {
			w := 1 - u
			return f(min+u/w) / (w * w)
		}, 0, 1
	case loInf:
		// x = max − u/(1−u) maps (0, 1) onto (−∞, max),
		// traversed in reverse, with |dx| = du/(1−u)².
		return func(u float64) float64 {
			w := 1 - u
			return f(max-u/w) / (w * w)
		}, 0, 1
	}
	return f, min, max
}
