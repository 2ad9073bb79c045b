// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchbar plots a pivoted bar table as a grouped bar chart.
//
// Usage:
//
//	benchbar [flags] [file]
//
// Benchbar reads <dir>/<file>-bar.csv, as written by benchbarcsv, and
// draws one group of bars per function with one bar for each of the
// -y1, -y2, and optionally -y3 columns. The chart is written to
// <dir>/<file>-bar.png. If file has an extension, it names the CSV
// itself. The default file is functions-browser.
//
// With -log, which is the default, the Y axis is logarithmic with
// labels at powers of ten, printed without scientific notation.
package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/imt-benchmarks/analysis/benchplot"
	"github.com/imt-benchmarks/analysis/benchtab"
	"github.com/imt-benchmarks/analysis/internal/cli"
)

type config struct {
	cli.Common
	cli.Chart

	File       string
	Y1, Y2, Y3 string
	Log        bool
}

func (c *config) validate() error {
	if c.Y1 == "" || c.Y2 == "" {
		return errors.New("-y1 and -y2 must not be empty")
	}
	seen := map[string]bool{}
	for _, y := range c.columns() {
		if y == benchtab.FunctionColumn {
			return fmt.Errorf("cannot plot the %s column", benchtab.FunctionColumn)
		}
		if seen[y] {
			return fmt.Errorf("column %q given more than once", y)
		}
		seen[y] = true
	}
	return c.Chart.Validate()
}

// columns returns the non-empty series columns.
func (c *config) columns() []string {
	cols := []string{c.Y1, c.Y2}
	if c.Y3 != "" {
		cols = append(cols, c.Y3)
	}
	return cols
}

// paths returns the input table and default chart paths.
func (c *config) paths() (in, out string) {
	files := c.Files()
	if filepath.Ext(c.File) == ".csv" {
		in = files.Path(c.File, ".csv")
		return in, strings.TrimSuffix(in, ".csv") + ".png"
	}
	return files.Output(c.File, "bar", ".csv"), files.Output(c.File, "bar", ".png")
}

func main() {
	cli.Main("benchbar", benchbar)
}

func benchbar(stdout, stderr io.Writer, args []string) error {
	var cfg config
	fs := cli.NewFlagSet("benchbar", stderr, "[flags] [file]", `benchbar draws a grouped bar chart of <dir>/<file>-bar.csv and writes it
to <dir>/<file>-bar.png.
`)
	cfg.Common.Register(fs)
	cfg.Chart.Register(fs, "", benchtab.FunctionColumn, "Average Time (ms)")
	fs.StringVar(&cfg.Y1, "y1", "IMT", "first bar `column`")
	fs.StringVar(&cfg.Y2, "y2", "LeanIMT", "second bar `column`")
	fs.StringVar(&cfg.Y3, "y3", "", "optional third bar `column`")
	fs.BoolVar(&cfg.Log, "log", true, "use a logarithmic Y axis")
	if err := cli.Parse(fs, args, 0, 1); err != nil {
		return err
	}
	cfg.File = "functions-browser"
	if fs.NArg() > 0 {
		cfg.File = fs.Arg(0)
	}
	if err := cfg.validate(); err != nil {
		return cli.Invalid(err)
	}

	in, out := cfg.paths()
	if cfg.Out != "" {
		out = cfg.Out
	}
	tab, err := benchtab.ReadFile(in)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		if err := table.Fprint(stdout, tab); err != nil {
			return err
		}
	}

	chart := benchplot.BarChart{
		Title:  cfg.Title,
		XLabel: cfg.XLabel,
		YLabel: cfg.YLabel,
		Log:    cfg.Log,
	}
	if chart.Title == "" {
		chart.Title = "Functions " + strings.Join(cfg.columns(), " vs ")
	}
	if chart.Categories, err = benchtab.Strings(tab, benchtab.FunctionColumn); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	for _, col := range cfg.columns() {
		vals, err := benchtab.Float64s(tab, col)
		if err != nil {
			return fmt.Errorf("%s: %w", in, err)
		}
		chart.Series = append(chart.Series, benchplot.BarSeries{Label: col, Values: vals})
	}
	p, err := benchplot.Bar(chart)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	w, h := cfg.Size()
	if err := benchplot.Save(p, out, w, h); err != nil {
		return err
	}
	cli.Logger("benchbar", stderr).Printf("wrote %s", out)
	return nil
}
