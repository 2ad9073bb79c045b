// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchtablecsv writes a per-record summary table of benchmark
// results.
//
// Usage:
//
//	benchtablecsv [flags] file
//
// Benchtablecsv reads <dir>/<file>.json and writes <dir>/<file>-table.csv
// with the columns Function, ops/sec, Average Time (ms), and
// Relative to <baseline>. A record's own "Relative to <baseline>" text
// is copied as is; otherwise it is computed from the average times of
// the baseline data structure and the record for the same function.
//
// The -stats flag adds the sample count and the minimum, median, mean,
// 99th percentile, maximum, and standard deviation of each record's
// samples. The -format flag selects csv, html, or text output.
package main

import (
	"errors"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/imt-benchmarks/analysis/benchjson"
	"github.com/imt-benchmarks/analysis/benchtab"
	"github.com/imt-benchmarks/analysis/internal/cli"
)

type config struct {
	cli.Common

	File     string
	Baseline string
	Stats    bool
	Format   benchtab.Format
}

func (c *config) validate() error {
	if c.Baseline == "" {
		return errors.New("-baseline must not be empty")
	}
	return nil
}

func main() {
	cli.Main("benchtablecsv", benchtablecsv)
}

func benchtablecsv(stdout, stderr io.Writer, args []string) error {
	var cfg config
	fs := cli.NewFlagSet("benchtablecsv", stderr, "[flags] file", `benchtablecsv writes a summary table of the records of <dir>/<file>.json
to <dir>/<file>-table.csv.
`)
	cfg.Common.Register(fs)
	fs.StringVar(&cfg.Baseline, "baseline", benchtab.DefaultBaseline, "compare against data structure `name`")
	fs.BoolVar(&cfg.Stats, "stats", false, "add sample statistics columns")
	format := fs.String("format", "csv", "output `format`: csv, html, or text")
	if err := cli.Parse(fs, args, 1, 1); err != nil {
		return err
	}
	cfg.File = fs.Arg(0)
	var err error
	if cfg.Format, err = benchtab.ParseFormat(*format); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return cli.Invalid(err)
	}

	logger := cli.Logger("benchtablecsv", stderr)
	files := cfg.Files()
	recs, err := files.Load(cfg.File, &benchjson.Options{Logf: logger.Printf})
	if err != nil {
		return err
	}
	tab, err := benchtab.Export(recs, benchtab.ExportOptions{
		Baseline: cfg.Baseline,
		Stats:    cfg.Stats,
	})
	if err != nil {
		return err
	}
	if cfg.Verbose {
		if err := table.Fprint(stdout, tab); err != nil {
			return err
		}
	}

	out := files.Output(cfg.File, "table", cfg.Format.Ext())
	if err := benchtab.WriteFile(out, tab, cfg.Format); err != nil {
		return err
	}
	logger.Printf("wrote %s", out)
	return nil
}
