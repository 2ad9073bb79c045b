// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchline plots the per-trial samples of two benchmark records as a
// line chart.
//
// Usage:
//
//	benchline [flags] file
//
// Benchline reads <dir>/<file>.json, takes the samples of records -i1
// and -i2, keeps every -dr'th point, and writes the chart to
// <dir>/<file>-line.png. The X axis is the 1-based trial position,
// which for insertion benchmarks is the number of tree members.
//
// For example,
//
//	benchline -dr 10 -y1 "LeanIMT Loop Insertion" -y2 "LeanIMT Batch Insertion" \
//		-title "Loop Insertion vs Batch Insertion LeanIMT" insert-many-leanimt
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/imt-benchmarks/analysis/benchjson"
	"github.com/imt-benchmarks/analysis/benchplot"
	"github.com/imt-benchmarks/analysis/benchseries"
	"github.com/imt-benchmarks/analysis/internal/cli"
)

type config struct {
	cli.Common
	cli.Chart

	File   string
	Y1, Y2 string
	Rate   int
	I1, I2 int
}

func (c *config) validate() error {
	if c.File == "" {
		return errors.New("missing file name")
	}
	if c.Rate < 1 {
		return fmt.Errorf("-dr must be at least 1, got %d", c.Rate)
	}
	if c.I1 < 0 || c.I2 < 0 || c.I1 == c.I2 {
		return fmt.Errorf("-i1 and -i2 must be distinct and not negative, got %d and %d", c.I1, c.I2)
	}
	if c.Y1 == c.Y2 {
		return fmt.Errorf("-y1 and -y2 must differ, both are %q", c.Y1)
	}
	if c.Y1 == benchseries.MembersColumn || c.Y2 == benchseries.MembersColumn {
		return fmt.Errorf("series label %q is reserved for the X axis", benchseries.MembersColumn)
	}
	return c.Chart.Validate()
}

func main() {
	cli.Main("benchline", benchline)
}

func benchline(stdout, stderr io.Writer, args []string) error {
	var cfg config
	fs := cli.NewFlagSet("benchline", stderr, "[flags] file", `benchline plots the samples of two benchmark records in <dir>/<file>.json
as a line chart written to <dir>/<file>-line.png.
`)
	cfg.Common.Register(fs)
	cfg.Chart.Register(fs, "", benchseries.MembersColumn, "Time (ms)")
	fs.StringVar(&cfg.Y1, "y1", "IMT", "`label` of the first series")
	fs.StringVar(&cfg.Y2, "y2", "LeanIMT", "`label` of the second series")
	fs.IntVar(&cfg.Rate, "dr", 100, "keep every `n`th point")
	fs.IntVar(&cfg.Rate, "downsample_rate", 100, "same as -dr")
	fs.IntVar(&cfg.I1, "i1", 0, "record `index` of the first series")
	fs.IntVar(&cfg.I2, "i2", 1, "record `index` of the second series")
	if err := cli.Parse(fs, args, 1, 1); err != nil {
		return err
	}
	cfg.File = fs.Arg(0)
	if err := cfg.validate(); err != nil {
		return cli.Invalid(err)
	}

	logger := cli.Logger("benchline", stderr)
	files := cfg.Files()
	recs, err := files.Load(cfg.File, &benchjson.Options{Logf: logger.Printf})
	if err != nil {
		return err
	}
	s, err := benchseries.Extract(recs, benchseries.Options{
		Indices: []int{cfg.I1, cfg.I2},
		Labels:  []string{cfg.Y1, cfg.Y2},
		Rate:    cfg.Rate,
		Logf:    logger.Printf,
	})
	if err != nil {
		return err
	}
	if cfg.Verbose {
		if err := table.Fprint(stdout, s.Table()); err != nil {
			return err
		}
	}

	title := cfg.Title
	if title == "" {
		title = cfg.File
	}
	chart := benchplot.LineChart{
		Title:  title,
		XLabel: cfg.XLabel,
		YLabel: cfg.YLabel,
		X:      make([]float64, s.Len()),
	}
	for i, x := range s.X {
		chart.X[i] = float64(x)
	}
	for i, label := range s.Labels {
		chart.Series = append(chart.Series, benchplot.LineSeries{Label: label, Y: s.Y[i]})
	}
	p, err := benchplot.Line(chart)
	if err != nil {
		return err
	}

	out := cfg.Out
	if out == "" {
		out = files.Output(cfg.File, "line", ".png")
	}
	w, h := cfg.Size()
	if err := benchplot.Save(p, out, w, h); err != nil {
		return err
	}
	logger.Printf("wrote %s", out)
	return nil
}
