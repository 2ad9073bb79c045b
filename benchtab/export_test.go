// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const functionsJSON = `[
	{"Function": "IMT - Insert", "ops/sec": 1754, "Average Time (ms)": "0.57010", "Samples": 3, "Relative to IMT": "", "samples": [0.5, 0.6, 0.61]},
	{"Function": "LeanIMT - Insert", "ops/sec": 5012, "Average Time (ms)": "0.19952", "Samples": 3, "Relative to IMT": "2.86 x faster", "samples": [0.2, 0.19, 0.21]},
	{"Function": "IMT - Update", "ops/sec": 800, "Average Time (ms)": 1.25, "Samples": 3, "samples": [1, 1.25, 1.5]},
	{"Function": "LeanIMT - Update", "ops/sec": 400, "Average Time (ms)": 2.5, "Samples": 3, "samples": [2, 2.5, 3]}
]`

func TestExport(t *testing.T) {
	got, err := Export(records(t, functionsJSON), ExportOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{
		{"Function", "ops/sec", "Average Time (ms)", "Relative to IMT"},
		{"IMT - Insert", "1754", "0.5701", ""},
		{"LeanIMT - Insert", "5012", "0.19952", "2.86 x faster"},
		{"IMT - Update", "800", "1.25", ""},
		{"LeanIMT - Update", "400", "2.5", "2.00 x slower"},
	}
	if diff := cmp.Diff(want, dump(got)); diff != "" {
		t.Errorf("Export mismatch (-want +got):\n%s", diff)
	}
}

func TestExportBaseline(t *testing.T) {
	got, err := Export(records(t, functionsJSON), ExportOptions{Baseline: "LeanIMT"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Function", "ops/sec", "Average Time (ms)", "Relative to LeanIMT"}
	if diff := cmp.Diff(want, got.Columns()); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	rel := got.MustColumn("Relative to LeanIMT").([]string)
	if diff := cmp.Diff([]string{"2.86 x slower", "", "2.00 x faster", ""}, rel); diff != "" {
		t.Errorf("relative mismatch (-want +got):\n%s", diff)
	}
}

func TestExportStats(t *testing.T) {
	got, err := Export(records(t, functionsJSON), ExportOptions{Stats: true})
	if err != nil {
		t.Fatal(err)
	}
	wantCols := []string{
		"Function", "ops/sec", "Average Time (ms)", "Relative to IMT",
		"Samples", "Min (ms)", "Median (ms)", "Mean (ms)", "p99 (ms)", "Max (ms)", "Std Dev (ms)",
	}
	if diff := cmp.Diff(wantCols, got.Columns()); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if n := got.MustColumn("Samples").([]int); !cmp.Equal(n, []int{3, 3, 3, 3}) {
		t.Errorf("Samples = %v", n)
	}
	if min := got.MustColumn("Min (ms)").([]float64); min[3] != 2 {
		t.Errorf("Min (ms) = %v", min)
	}
	if max := got.MustColumn("Max (ms)").([]float64); max[2] != 1.5 {
		t.Errorf("Max (ms) = %v", max)
	}
}

func TestExportEmpty(t *testing.T) {
	if _, err := Export(nil, ExportOptions{}); err == nil {
		t.Errorf("Export(nil) succeeded, want error")
	}
}

func TestExportMissingField(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string
	}{
		{`[{"Function": "IMT - f", "Average Time (ms)": 1}]`, `record 0 (IMT - f): no "ops/sec" field`},
		{`[{"Function": "IMT - f", "ops/sec": 1, "Average Time (ms)": 1}, {"Function": "LeanIMT - f", "ops/sec": 2}]`,
			`record 1 (LeanIMT - f): no "Average Time (ms)" field`},
	} {
		_, err := Export(records(t, test.in), ExportOptions{})
		if err == nil || err.Error() != test.want {
			t.Errorf("Export(%s): got error %v, want %q", test.in, err, test.want)
		}
	}
}
