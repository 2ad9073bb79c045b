// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imt-benchmarks/analysis/benchjson"
	"github.com/imt-benchmarks/analysis/benchtab"
	"github.com/imt-benchmarks/analysis/internal/diff"
)

const functionsJSON = `[
	{"Function": "IMT - Insert", "ops/sec": 1754, "Average Time (ms)": "0.57010", "Samples": 2, "samples": [0.5, 0.64]},
	{"Function": "LeanIMT - Insert", "ops/sec": 5012, "Average Time (ms)": "0.19952", "Samples": 2, "samples": [0.2, 0.2]},
	{"Function": "IMT - GenerateProof", "ops/sec": 80, "Average Time (ms)": 12.5, "Samples": 2, "samples": [12, 13]},
	{"Function": "LeanIMT - GenerateProof", "ops/sec": 50000, "Average Time (ms)": 0.02, "Samples": 2, "samples": [0.02, 0.02]}
]`

func run(t *testing.T, dir string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "functions.json"), []byte(functionsJSON), 0666); err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	t.Logf("benchbarcsv %s", strings.Join(args, " "))
	err = benchbarcsv(&out, &errOut, append([]string{"-data", dir}, args...))
	return out.String(), errOut.String(), err
}

func compare(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if d := diff.Diff(want, string(got)); d != "" {
		t.Errorf("%s differs:\n%s", path, d)
	}
}

func TestBenchbarcsv(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "functions-bar.csv")
	// Output files are replaced.
	if err := os.WriteFile(out, []byte("stale\nstale\nstale\nstale\n"), 0666); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := run(t, dir, "functions")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}
	compare(t, out, `Function,IMT,LeanIMT
Insert,0.5701,0.19952
GenerateProof,12.5,0.02
`)
	wantErr := "benchbarcsv: " + filepath.Join(dir, "functions.json") + ": 2 samples in first record\n" +
		"benchbarcsv: wrote " + out + "\n"
	if d := diff.Diff(wantErr, stderr); d != "" {
		t.Errorf("stderr differs:\n%s", d)
	}
}

func TestBenchbarcsvFormats(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := run(t, dir, "-format", "html", "-v", "functions")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "GenerateProof") {
		t.Errorf("-v output missing table:\n%s", stdout)
	}
	data, err := os.ReadFile(filepath.Join(dir, "functions-bar.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<th>Function<th>IMT<th>LeanIMT")) {
		t.Errorf("HTML output missing header:\n%s", data)
	}

	if _, _, err := run(t, dir, "-format", "text", "functions"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "functions-bar.txt")); err != nil {
		t.Error(err)
	}

	if _, _, err := run(t, dir, "-format", "xml", "functions"); err == nil {
		t.Errorf("-format xml succeeded, want error")
	}
}

func TestBenchbarcsvErrors(t *testing.T) {
	dir := t.TempDir()
	ragged := `[{"Function": "A - f", "Average Time (ms)": 1}, {"Function": "B - g", "Average Time (ms)": 2}]`
	if err := os.WriteFile(filepath.Join(dir, "ragged.json"), []byte(ragged), 0666); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"Function": "A - f"}`), 0666); err != nil {
		t.Fatal(err)
	}

	_, _, err := run(t, dir, "ragged")
	var aerr *benchtab.AlignmentError
	if !errors.As(err, &aerr) {
		t.Errorf("ragged: got %v, want *benchtab.AlignmentError", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ragged-bar.csv")); !os.IsNotExist(err) {
		t.Errorf("ragged pivot wrote output")
	}

	_, _, err = run(t, dir, "bad")
	var perr *benchjson.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("bad: got %v, want *benchjson.ParseError", err)
	}

	_, _, err = run(t, dir, "missing")
	var nf *benchjson.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("missing: got %v, want *benchjson.NotFoundError", err)
	}
}
