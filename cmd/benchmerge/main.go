// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchmerge puts one column of a Node.js bar table next to the same
// column of a browser bar table.
//
// Usage:
//
//	benchmerge [flags]
//
// Benchmerge reads <dir>/<nodefile>.csv and <dir>/<browserfile>.csv, as
// written by benchbarcsv, and writes <dir>/<o>.csv with the columns
// Function, Node.js, and Browser. Rows are matched by Function, and
// both tables must list the same functions.
package main

import (
	"errors"
	"io"

	"github.com/aclements/go-gg/table"

	"github.com/imt-benchmarks/analysis/benchtab"
	"github.com/imt-benchmarks/analysis/internal/cli"
)

type config struct {
	cli.Common

	NodeFile, BrowserFile string
	Column                string
	Out                   string
}

func (c *config) validate() error {
	if c.NodeFile == "" || c.BrowserFile == "" || c.Out == "" {
		return errors.New("-nodefile, -browserfile, and -o must not be empty")
	}
	if c.Column == "" {
		return errors.New("-column must not be empty")
	}
	return nil
}

func main() {
	cli.Main("benchmerge", benchmerge)
}

func benchmerge(stdout, stderr io.Writer, args []string) error {
	var cfg config
	fs := cli.NewFlagSet("benchmerge", stderr, "[flags]", `benchmerge combines one column of a Node.js and a browser bar table into
<dir>/<o>.csv.
`)
	cfg.Common.Register(fs)
	fs.StringVar(&cfg.NodeFile, "nodefile", "functions-bar", "Node.js table base `name`")
	fs.StringVar(&cfg.BrowserFile, "browserfile", "functions-browser-bar", "browser table base `name`")
	fs.StringVar(&cfg.Column, "column", "LeanIMT", "`column` to take from both tables")
	fs.StringVar(&cfg.Out, "o", "leanimt-nodejs-browser-bar", "output base `name`")
	if err := cli.Parse(fs, args, 0, 0); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return cli.Invalid(err)
	}

	files := cfg.Files()
	node, err := benchtab.ReadFile(files.Path(cfg.NodeFile, ".csv"))
	if err != nil {
		return err
	}
	browser, err := benchtab.ReadFile(files.Path(cfg.BrowserFile, ".csv"))
	if err != nil {
		return err
	}
	tab, err := benchtab.Merge(node, browser, benchtab.MergeOptions{
		Column:    cfg.Column,
		LeftName:  "Node.js",
		RightName: "Browser",
	})
	if err != nil {
		return err
	}
	if cfg.Verbose {
		if err := table.Fprint(stdout, tab); err != nil {
			return err
		}
	}

	out := files.Path(cfg.Out, ".csv")
	if err := benchtab.WriteFile(out, tab, benchtab.CSV); err != nil {
		return err
	}
	cli.Logger("benchmerge", stderr).Printf("wrote %s", out)
	return nil
}
