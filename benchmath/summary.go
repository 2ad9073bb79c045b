// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath computes summary statistics over benchmark samples
// and compares timings between data structures.
package benchmath

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Summary summarizes the per-trial samples of one benchmark.
// All fields except N are NaN for an empty sample.
type Summary struct {
	N                 int
	Min, Median, Max  float64
	Mean, P99, StdDev float64
}

// Summarize computes a Summary of samples. It does not modify
// samples.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		nan := math.NaN()
		return Summary{0, nan, nan, nan, nan, nan, nan}
	}
	s := stats.Sample{Xs: append([]float64(nil), samples...)}
	s.Sort()

	sum := Summary{N: len(samples)}
	sum.Min, sum.Max = s.Bounds()
	sum.Median = s.Quantile(0.5)
	sum.P99 = s.Quantile(0.99)
	sum.Mean = s.Mean()
	if len(samples) > 1 {
		sum.StdDev = s.StdDev()
	}
	return sum
}

// Relative describes value relative to base as a speed ratio, such as
// "2.86 x faster" when value is the smaller time. Times are compared
// as durations, so a smaller value is faster. It returns the empty
// string if either time is not positive.
func Relative(base, value float64) string {
	if !(base > 0) || !(value > 0) {
		return ""
	}
	if base > value {
		return fmt.Sprintf("%.2f x faster", base/value)
	}
	return fmt.Sprintf("%.2f x slower", value/base)
}
