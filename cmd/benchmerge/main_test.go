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

	"github.com/imt-benchmarks/analysis/benchtab"
	"github.com/imt-benchmarks/analysis/internal/cli"
	"github.com/imt-benchmarks/analysis/internal/diff"
)

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, data := range map[string]string{
		"functions-bar.csv":         "Function,IMT,LeanIMT\nInsert,0.5701,0.19952\nUpdate,1.25,0.5\n",
		"functions-browser-bar.csv": "Function,IMT,LeanIMT\nInsert,0.9,0.3\nUpdate,2,0.75\n",
		"short-bar.csv":             "Function,IMT,LeanIMT\nInsert,0.9,0.3\n",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0666); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	t.Logf("benchmerge %s", strings.Join(args, " "))
	err = benchmerge(&out, &errOut, args)
	return out.String(), errOut.String(), err
}

func TestBenchmerge(t *testing.T) {
	dir := setup(t)
	_, stderr, err := run(t, "-data", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}
	out := filepath.Join(dir, "leanimt-nodejs-browser-bar.csv")
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := "Function,Node.js,Browser\nInsert,0.19952,0.3\nUpdate,0.5,0.75\n"
	if d := diff.Diff(want, string(got)); d != "" {
		t.Errorf("%s differs:\n%s", out, d)
	}
	if want := "benchmerge: wrote " + out + "\n"; stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestBenchmergeColumn(t *testing.T) {
	dir := setup(t)
	stdout, _, err := run(t, "-data", dir, "-column", "IMT", "-o", "imt", "-v")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "Node.js") {
		t.Errorf("-v output missing table:\n%s", stdout)
	}
	got, err := os.ReadFile(filepath.Join(dir, "imt.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "Function,Node.js,Browser\nInsert,0.5701,0.9\nUpdate,1.25,2\n"; string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBenchmergeErrors(t *testing.T) {
	dir := setup(t)
	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"-data", dir, "-browserfile", "short-bar"}, `function "Update" is in the left table but not the right`},
		{[]string{"-data", dir, "-column", "Other"}, `left table has no "Other" column`},
		{[]string{"-data", dir, "-column", ""}, "-column must not be empty"},
		{[]string{"-data", dir, "-nodefile", "nothing"}, "no such file or directory"},
	} {
		_, _, err := run(t, test.args...)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%v: got error %v, want %q", test.args, err, test.want)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "leanimt-nodejs-browser-bar.csv")); !os.IsNotExist(err) {
		t.Errorf("failed merge wrote output")
	}

	if _, _, err := run(t, "-data", dir, "extra"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("positional argument: got %v, want usage error", err)
	}

	_, _, err := run(t, "-data", dir, "-o", filepath.Join(dir, "missing", "out"))
	var werr *benchtab.WriteError
	if !errors.As(err, &werr) {
		t.Errorf("unwritable output: got %v, want *benchtab.WriteError", err)
	}
}
