// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries extracts per-trial sample series from benchmark
// records for plotting and line-chart export.
package benchseries

import (
	"fmt"

	"github.com/aclements/go-gg/table"

	"github.com/imt-benchmarks/analysis/benchjson"
)

// MembersColumn is the name of the X column of a series table. Each
// trial of an insertion benchmark adds one member to the tree, so the
// 1-based trial position is the tree size.
const MembersColumn = "Members"

// Decimate returns every rate'th element of s, starting with s[0].
// The result has ceil(len(s)/rate) elements and result[i] == s[i*rate].
// Decimate panics if rate < 1.
func Decimate[T any](s []T, rate int) []T {
	if rate < 1 {
		panic(fmt.Sprintf("Decimate: rate %d < 1", rate))
	}
	out := make([]T, 0, (len(s)+rate-1)/rate)
	for i := 0; i < len(s); i += rate {
		out = append(out, s[i])
	}
	return out
}

// Options selects which records become series.
type Options struct {
	// Indices are the record indices to extract, conventionally
	// the baseline structure first. If empty, records 0 and 1 are
	// used.
	Indices []int

	// Labels name each series. If shorter than Indices, missing
	// labels are taken from the records' Function fields.
	Labels []string

	// Rate is the decimation stride. Zero means no decimation.
	Rate int

	// Logf, if non-nil, receives diagnostics about inconsistent
	// records.
	Logf func(format string, args ...interface{})
}

// A Series is a set of sample sequences sharing an X axis.
type Series struct {
	// X holds the 1-based trial positions.
	X []int

	// Labels and Y are parallel: Y[i] is the series named Labels[i].
	Labels []string
	Y      [][]float64
}

// Extract builds a Series from the samples of the selected records.
// All selected records must have the same number of samples.
func Extract(records []*benchjson.Record, opts Options) (*Series, error) {
	indices := opts.Indices
	if len(indices) == 0 {
		indices = []int{0, 1}
	}
	if opts.Rate < 0 {
		return nil, fmt.Errorf("negative decimation rate %d", opts.Rate)
	}
	rate := opts.Rate
	if rate == 0 {
		rate = 1
	}

	s := new(Series)
	n := -1
	for i, idx := range indices {
		if idx < 0 || idx >= len(records) {
			return nil, fmt.Errorf("record index %d out of range [0,%d)", idx, len(records))
		}
		rec := records[idx]
		if rec.Samples == nil {
			return nil, fmt.Errorf("record %d (%s) has no %q", idx, rec.Function, benchjson.KeySamples)
		}
		if n < 0 {
			n = len(rec.Samples)
		} else if len(rec.Samples) != n {
			return nil, fmt.Errorf("record %d (%s) has %d samples, record %d has %d", idx, rec.Function, len(rec.Samples), indices[0], n)
		}
		if rec.SampleCount.Defined() && int(rec.SampleCount) != len(rec.Samples) && opts.Logf != nil {
			opts.Logf("record %d (%s): %q is %v but %q has %d values", idx, rec.Function, benchjson.KeySampleCount, rec.SampleCount.Float(), benchjson.KeySamples, len(rec.Samples))
		}

		label := rec.Function
		if i < len(opts.Labels) && opts.Labels[i] != "" {
			label = opts.Labels[i]
		}
		s.Labels = append(s.Labels, label)
		s.Y = append(s.Y, Decimate(rec.Samples, rate))
	}

	x := make([]int, n)
	for i := range x {
		x[i] = i + 1
	}
	s.X = Decimate(x, rate)
	return s, nil
}

// Len returns the number of points in each series.
func (s *Series) Len() int {
	return len(s.X)
}

// Table returns s as a table with a Members column followed by one
// column per series.
func (s *Series) Table() *table.Table {
	var b table.Builder
	b.Add(MembersColumn, s.X)
	for i, label := range s.Labels {
		b.Add(label, s.Y[i])
	}
	return b.Done()
}
