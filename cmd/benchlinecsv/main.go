// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchlinecsv writes the per-trial samples of the first two benchmark
// records as a table for plotting elsewhere.
//
// Usage:
//
//	benchlinecsv [flags] file
//
// Benchlinecsv reads <dir>/<file>.json and writes <dir>/<file>-line.csv
// with a Members column holding the 1-based trial position, followed
// by the samples of record 0 under the -y1 label and of record 1 under
// the -y2 label. Only every -dr'th row is kept.
package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/imt-benchmarks/analysis/benchjson"
	"github.com/imt-benchmarks/analysis/benchseries"
	"github.com/imt-benchmarks/analysis/benchtab"
	"github.com/imt-benchmarks/analysis/internal/cli"
)

type config struct {
	cli.Common

	File   string
	Y1, Y2 string
	Rate   int
}

func (c *config) validate() error {
	if c.Rate < 1 {
		return fmt.Errorf("-dr must be at least 1, got %d", c.Rate)
	}
	if c.Y1 == "" || c.Y2 == "" || c.Y1 == c.Y2 {
		return fmt.Errorf("-y1 and -y2 must be distinct and non-empty, got %q and %q", c.Y1, c.Y2)
	}
	if c.Y1 == benchseries.MembersColumn || c.Y2 == benchseries.MembersColumn {
		return fmt.Errorf("column name %q is reserved", benchseries.MembersColumn)
	}
	return nil
}

func main() {
	cli.Main("benchlinecsv", benchlinecsv)
}

func benchlinecsv(stdout, stderr io.Writer, args []string) error {
	var cfg config
	fs := cli.NewFlagSet("benchlinecsv", stderr, "[flags] file", `benchlinecsv writes the samples of the first two records of
<dir>/<file>.json to <dir>/<file>-line.csv.
`)
	cfg.Common.Register(fs)
	fs.StringVar(&cfg.Y1, "y1", "IMT", "first column `name`")
	fs.StringVar(&cfg.Y2, "y2", "LeanIMT", "second column `name`")
	fs.IntVar(&cfg.Rate, "dr", 100, "keep every `n`th row")
	fs.IntVar(&cfg.Rate, "downsample_rate", 100, "same as -dr")
	if err := cli.Parse(fs, args, 1, 1); err != nil {
		return err
	}
	cfg.File = fs.Arg(0)
	if err := cfg.validate(); err != nil {
		return cli.Invalid(err)
	}

	logger := cli.Logger("benchlinecsv", stderr)
	files := cfg.Files()
	recs, err := files.Load(cfg.File, &benchjson.Options{Logf: logger.Printf})
	if err != nil {
		return err
	}
	s, err := benchseries.Extract(recs, benchseries.Options{
		Labels: []string{cfg.Y1, cfg.Y2},
		Rate:   cfg.Rate,
		Logf:   logger.Printf,
	})
	if err != nil {
		return err
	}
	tab := s.Table()
	if cfg.Verbose {
		if err := table.Fprint(stdout, tab); err != nil {
			return err
		}
	}

	out := files.Output(cfg.File, "line", ".csv")
	if err := benchtab.WriteFile(out, tab, benchtab.CSV); err != nil {
		return err
	}
	logger.Printf("wrote %s", out)
	return nil
}
