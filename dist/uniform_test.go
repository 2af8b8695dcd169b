// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestUniformPDFEach(t *testing.T) {
	var d UniformDist // zero value is the unit interval
	got := d.PDFEach([]float64{-1, 0.5, 2})
	want := []float64{0, 1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("want UniformDist{0,1}.PDFEach([-1, 0.5, 2]) = %v, got %v", want, got)
			break
		}
	}
}

func TestUniformPDF(t *testing.T) {
	d := UniformDist{A: 2, B: 6}
	testFunc(t, "UniformDist{2,6}.PDF", d.PDF, map[float64]float64{
		1.999: 0,
		2:     0.25,
		4:     0.25,
		6:     0.25,
		6.001: 0,
	})
	testPDFExpLogPDF(t, "UniformDist{2,6}", d, []float64{1, 2, 3, 6, 7})
}

func TestUniformLogPDF(t *testing.T) {
	d := UniformDist{A: 2, B: 6}
	testFunc(t, "UniformDist{2,6}.LogPDF", d.LogPDF, map[float64]float64{
		1: math.Inf(-1),
		2: -math.Log(4),
		4: -math.Log(4),
		6: -math.Log(4),
		7: math.Inf(-1),
	})

	// The elementwise form must branch per element, not once.
	got := d.LogPDFEach([]float64{1, 4, 7})
	want := []float64{math.Inf(-1), -math.Log(4), math.Inf(-1)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("want UniformDist{2,6}.LogPDFEach([1, 4, 7]) = %v, got %v", want, got)
			break
		}
	}
}

func TestUniformPrecondition(t *testing.T) {
	testPanics(t, "UniformDist{3,1}.PDF", func() { UniformDist{A: 3, B: 1}.PDF(2) })
	testPanics(t, "UniformDist{1,1}.LogPDF", func() { UniformDist{A: 1, B: 1}.LogPDF(1) })
	testPanics(t, "UniformDist{3,1}.Rvs", func() { UniformDist{A: 3, B: 1}.Rvs(1) })
}
