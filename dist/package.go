// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist provides parametric continuous probability distributions.
//
// Each family is a value type whose fields are the distribution's
// parameters. All density operations come in a scalar form and an
// elementwise "Each" form over a slice; the Each form is defined as the
// scalar form applied to every element, so the two can never disagree.
// Parameters that violate a family's contract (a non-positive rate, a
// sample outside the support of the logit-normal) are programmer
// errors and panic rather than returning NaN.
package dist // import "github.com/probkit/probkit/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// log(2π)
const log2Pi = 1.8378770664093454835606594728112352797227949472755668

// each applies f to each element of xs.
func each(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}
