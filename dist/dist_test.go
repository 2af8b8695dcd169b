// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// Compile-time interface checks.
var (
	_ CumDist = GammaDist{}
	_ Dist    = NormalDist{}
	_ Dist    = ExpDist{}
	_ Dist    = UniformDist{}
	_ Dist    = LogNormalDist{}
	_ Dist    = LogitNormalDist{}
	_ CumDist = (*Posterior)(nil)

	_ Sampler = GammaDist{}
	_ Sampler = NormalDist{}
	_ Sampler = ExpDist{}
	_ Sampler = UniformDist{}
	_ Sampler = LogNormalDist{}
	_ Sampler = LogitNormalDist{}
)
