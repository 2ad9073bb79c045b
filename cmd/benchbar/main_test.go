// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const barCSV = `Function,IMT,LeanIMT
Insert,0.5701,0.19952
Update,1.25,0.5
GenerateProof,12,0.02
`

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	t.Logf("benchbar %s", strings.Join(args, " "))
	err = benchbar(&out, &errOut, args)
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
}

func isPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("%s is not a PNG", path)
	}
}

func TestBenchbar(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "functions-browser-bar.csv"), barCSV)

	stdout, stderr, err := run(t, "-data", dir, "-v")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}
	if !strings.Contains(stdout, "GenerateProof") {
		t.Errorf("stdout missing table:\n%s", stdout)
	}
	out := filepath.Join(dir, "functions-browser-bar.png")
	isPNG(t, out)
	if want := "benchbar: wrote " + out + "\n"; stderr != want {
		t.Errorf("stderr = %q, want %q", stderr, want)
	}
}

func TestBenchbarThree(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "three.csv")
	writeFile(t, in, "Function,A,B,C\nf,1,2,3\ng,4,5,6\n")

	if _, stderr, err := run(t, "-data", dir, "-y1", "A", "-y2", "B", "-y3", "C", "-log=false", in); err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}
	isPNG(t, filepath.Join(dir, "three.png"))
}

func TestBenchbarDottedName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "node-v20.11-bar.csv"), barCSV)

	if _, stderr, err := run(t, "-data", dir, "node-v20.11"); err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, stderr)
	}
	isPNG(t, filepath.Join(dir, "node-v20.11-bar.png"))
}

func TestBenchbarErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "zero-bar.csv"), "Function,IMT,LeanIMT\nf,0,1\n")
	writeFile(t, filepath.Join(dir, "functions-bar.csv"), barCSV)

	for _, test := range []struct {
		args []string
		want string
	}{
		{[]string{"-data", dir, "zero"}, "cannot be shown on a log axis"},
		{[]string{"-data", dir, "-y2", "Other", "functions"}, `no "Other" column`},
		{[]string{"-data", dir, "-y2", "IMT", "functions"}, `column "IMT" given more than once`},
		{[]string{"-data", dir, "-y1", "Function", "functions"}, "cannot plot the Function column"},
		{[]string{"-data", dir, "nothing"}, "no such file or directory"},
	} {
		_, _, err := run(t, test.args...)
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%v: got error %v, want %q", test.args, err, test.want)
		}
	}

	if _, _, err := run(t, "-data", dir, "-log=false", "zero"); err != nil {
		t.Errorf("zero on a linear axis: %v", err)
	}
}
