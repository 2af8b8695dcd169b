// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"sort"
	"testing"
)

func aeq(expect, got float64) bool {
	return aeqTol(expect, got, 0.00001)
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	xs := make([]float64, 0, len(vals))
	for x := range vals {
		xs = append(xs, x)
	}
	sort.Float64s(xs)
	for _, x := range xs {
		want, got := vals[x], f(x)
		if want == got || math.IsNaN(want) && math.IsNaN(got) || aeq(want, got) {
			continue
		}
		t.Errorf("want %s(%v) = %v, got %v", name, x, want, got)
	}
}

func testPanics(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("want %s to panic", name)
		}
	}()
	f()
}

// testPDFExpLogPDF checks that PDF(x) == exp(LogPDF(x)) and that the
// Each forms agree with the scalar forms.
func testPDFExpLogPDF(t *testing.T, name string, d Dist, xs []float64) {
	t.Helper()
	pdfs := d.PDFEach(xs)
	logs := d.LogPDFEach(xs)
	for i, x := range xs {
		if want := math.Exp(logs[i]); !aeq(want, pdfs[i]) {
			t.Errorf("want %s.PDF(%v) = exp(LogPDF(%v)) = %v, got %v", name, x, x, want, pdfs[i])
		}
		if got := d.PDF(x); got != pdfs[i] {
			t.Errorf("%s.PDFEach and PDF disagree at %v: %v != %v", name, x, pdfs[i], got)
		}
		if got := d.LogPDF(x); got != logs[i] {
			t.Errorf("%s.LogPDFEach and LogPDF disagree at %v: %v != %v", name, x, logs[i], got)
		}
	}
}

// testContinuousCDF checks that d's CDF is non-decreasing over its
// bounds and approaches 0 and 1 at the ends of the support.
func testContinuousCDF(t *testing.T, name string, d CumDist) {
	t.Helper()
	lo, hi := d.Bounds()
	width := hi - lo
	if c := d.CDF(lo - width); !aeq(0, c) {
		t.Errorf("want %s.CDF(%v) ≈ 0, got %v", name, lo-width, c)
	}
	if c := d.CDF(hi); c < 0.98 {
		t.Errorf("want %s.CDF(%v) ≈ 1, got %v", name, hi, c)
	}
	prev := 0.0
	for i := 0; i <= 100; i++ {
		x := lo + width*float64(i)/100
		c := d.CDF(x)
		if c < prev-1e-12 {
			t.Errorf("%s.CDF is decreasing at %v: %v < %v", name, x, c, prev)
			break
		}
		if c < -1e-9 || c > 1+1e-9 {
			t.Errorf("%s.CDF(%v) = %v is outside [0, 1]", name, x, c)
			break
		}
		prev = c
	}
}
