// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	samples := []float64{9, 2, 4, 4, 4, 5, 5, 7}
	sum := Summarize(samples)

	if sum.N != 8 {
		t.Errorf("N = %d, want 8", sum.N)
	}
	if sum.Min != 2 || sum.Max != 9 {
		t.Errorf("bounds = [%v, %v], want [2, 9]", sum.Min, sum.Max)
	}
	if sum.Mean != 5 {
		t.Errorf("Mean = %v, want 5", sum.Mean)
	}
	if want := math.Sqrt(32.0 / 7); math.Abs(sum.StdDev-want) > 1e-9 {
		t.Errorf("StdDev = %v, want %v", sum.StdDev, want)
	}
	if sum.Median < 4 || sum.Median > 5 {
		t.Errorf("Median = %v, want in [4, 5]", sum.Median)
	}
	if sum.P99 < 7 || sum.P99 > 9 {
		t.Errorf("P99 = %v, want in [7, 9]", sum.P99)
	}
	if samples[0] != 9 {
		t.Errorf("Summarize reordered its input")
	}

	if odd := Summarize([]float64{3, 1, 2}); math.Abs(odd.Median-2) > 1e-9 {
		t.Errorf("Median of {3,1,2} = %v, want 2", odd.Median)
	}
	if one := Summarize([]float64{1.5}); one.StdDev != 0 || one.Mean != 1.5 {
		t.Errorf("Summarize of one sample = %+v", one)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.N != 0 || !math.IsNaN(sum.Mean) || !math.IsNaN(sum.Median) {
		t.Errorf("Summarize(nil) = %+v, want N=0 and NaN statistics", sum)
	}
}

func TestRelative(t *testing.T) {
	for _, test := range []struct {
		base, value float64
		want        string
	}{
		{0.5701, 0.19952, "2.86 x faster"},
		{1, 2, "2.00 x slower"},
		{2, 2, "1.00 x slower"},
		{0, 2, ""},
		{math.NaN(), 2, ""},
	} {
		if got := Relative(test.base, test.value); got != test.want {
			t.Errorf("Relative(%v, %v) = %q, want %q", test.base, test.value, got, test.want)
		}
	}
}
