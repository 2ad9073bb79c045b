// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchbarcsv pivots benchmark records into a table of average times
// with one row per function and one column per data structure.
//
// Usage:
//
//	benchbarcsv [flags] file
//
// Benchbarcsv reads <dir>/<file>.json, in which each record's Function
// field has the form "<DataStructure> - <FunctionName>", and writes
// <dir>/<file>-bar.csv. For example, the records
//
//	[{"Function": "IMT - Insert", "Average Time (ms)": 0.57},
//	 {"Function": "LeanIMT - Insert", "Average Time (ms)": 0.2}]
//
// become
//
//	Function,IMT,LeanIMT
//	Insert,0.57,0.2
//
// Every function must be measured on the same data structures, and
// each data structure at most once per function.
//
// The -format flag selects csv, html, or text output.
package main

import (
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/imt-benchmarks/analysis/benchjson"
	"github.com/imt-benchmarks/analysis/benchtab"
	"github.com/imt-benchmarks/analysis/internal/cli"
)

type config struct {
	cli.Common

	File   string
	Format benchtab.Format
}

func main() {
	cli.Main("benchbarcsv", benchbarcsv)
}

func benchbarcsv(stdout, stderr io.Writer, args []string) error {
	var cfg config
	fs := cli.NewFlagSet("benchbarcsv", stderr, "[flags] file", `benchbarcsv pivots the records of <dir>/<file>.json into a table of
average times by function and data structure, written to
<dir>/<file>-bar.csv.
`)
	cfg.Common.Register(fs)
	format := fs.String("format", "csv", "output `format`: csv, html, or text")
	if err := cli.Parse(fs, args, 1, 1); err != nil {
		return err
	}
	cfg.File = fs.Arg(0)
	var err error
	if cfg.Format, err = benchtab.ParseFormat(*format); err != nil {
		return err
	}

	logger := cli.Logger("benchbarcsv", stderr)
	files := cfg.Files()
	recs, err := files.Load(cfg.File, &benchjson.Options{Logf: logger.Printf})
	if err != nil {
		return err
	}
	tab, err := benchtab.Pivot(recs)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		if err := table.Fprint(stdout, tab); err != nil {
			return err
		}
	}

	out := files.Output(cfg.File, "bar", cfg.Format.Ext())
	if err := benchtab.WriteFile(out, tab, cfg.Format); err != nil {
		return err
	}
	logger.Printf("wrote %s", out)
	return nil
}
