// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"fmt"

	"github.com/aclements/go-gg/table"

	"github.com/imt-benchmarks/analysis/benchjson"
	"github.com/imt-benchmarks/analysis/benchmath"
)

// DefaultBaseline is the data structure other structures are compared
// against.
const DefaultBaseline = "IMT"

// Summary statistic columns added by ExportOptions.Stats.
var statsColumns = []string{
	benchjson.KeySampleCount,
	"Min (ms)",
	"Median (ms)",
	"Mean (ms)",
	"p99 (ms)",
	"Max (ms)",
	"Std Dev (ms)",
}

// ExportOptions configures Export.
type ExportOptions struct {
	// Baseline names the data structure in the
	// "Relative to <Baseline>" column. If empty, DefaultBaseline
	// is used.
	Baseline string

	// Stats adds summary statistics of each record's samples.
	Stats bool
}

// Export returns a per-record table with the Function, ops/sec,
// Average Time (ms), and Relative to <Baseline> columns.
//
// If a record carries its own "Relative to <Baseline>" field, that
// text is used. Otherwise the relative speed is computed against the
// baseline data structure's record for the same function name; the
// baseline's own row, and rows without a baseline to compare to, are
// left empty.
func Export(records []*benchjson.Record, opts ExportOptions) (*table.Table, error) {
	if len(records) == 0 {
		return nil, errors.New("no records to export")
	}
	baseline := opts.Baseline
	if baseline == "" {
		baseline = DefaultBaseline
	}

	// Index the baseline's average time by function name.
	baseAvg := make(map[string]float64)
	for _, rec := range records {
		ds, fn, err := SplitFunction(rec.Function)
		if err != nil || ds != baseline {
			continue
		}
		if _, ok := baseAvg[fn]; !ok {
			baseAvg[fn] = rec.AverageTime.Float()
		}
	}

	n := len(records)
	var (
		names    = make([]string, n)
		ops      = make([]float64, n)
		avg      = make([]float64, n)
		relative = make([]string, n)
	)
	for i, rec := range records {
		for _, key := range []string{benchjson.KeyOpsPerSec, benchjson.KeyAverageTime} {
			if !rec.Has(key) {
				return nil, fmt.Errorf("record %d (%s): no %q field", i, rec.Function, key)
			}
		}
		names[i] = rec.Function
		ops[i] = rec.OpsPerSec.Float()
		avg[i] = rec.AverageTime.Float()
		if rel, ok := rec.Relative(baseline); ok {
			relative[i] = rel
			continue
		}
		ds, fn, err := SplitFunction(rec.Function)
		if err != nil || ds == baseline {
			continue
		}
		if base, ok := baseAvg[fn]; ok {
			relative[i] = benchmath.Relative(base, avg[i])
		}
	}

	var b table.Builder
	b.Add(FunctionColumn, names)
	b.Add(benchjson.KeyOpsPerSec, ops)
	b.Add(benchjson.KeyAverageTime, avg)
	b.Add(benchjson.KeyRelativePrefix+baseline, relative)

	if opts.Stats {
		count := make([]int, n)
		cols := make([][]float64, len(statsColumns)-1)
		for j := range cols {
			cols[j] = make([]float64, n)
		}
		for i, rec := range records {
			s := benchmath.Summarize(rec.Samples)
			count[i] = s.N
			for j, v := range []float64{s.Min, s.Median, s.Mean, s.P99, s.Max, s.StdDev} {
				cols[j][i] = v
			}
		}
		b.Add(statsColumns[0], count)
		for j, col := range cols {
			b.Add(statsColumns[j+1], col)
		}
	}
	return b.Done(), nil
}
