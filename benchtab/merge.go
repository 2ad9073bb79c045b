// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"

	"github.com/aclements/go-gg/table"
)

// MergeOptions configures Merge.
type MergeOptions struct {
	// Column is the column to take from both tables.
	Column string

	// LeftName and RightName name the output columns taken from
	// the left and right tables.
	LeftName, RightName string
}

// Merge combines one column from each of two pivoted tables, matching
// rows by the Function column. For example, it can put the LeanIMT
// column of a Node.js run next to the LeanIMT column of a browser run.
//
// The output has the rows of left in order. Each function must appear
// exactly once in each table, and both tables must have the same set
// of functions.
func Merge(left, right *table.Table, opts MergeOptions) (*table.Table, error) {
	if opts.LeftName == opts.RightName || opts.LeftName == FunctionColumn || opts.RightName == FunctionColumn {
		return nil, fmt.Errorf("merged column names %q and %q must be distinct from each other and from %q", opts.LeftName, opts.RightName, FunctionColumn)
	}
	l, err := project(left, "left", opts.Column, opts.LeftName)
	if err != nil {
		return nil, err
	}
	r, err := project(right, "right", opts.Column, opts.RightName)
	if err != nil {
		return nil, err
	}

	lf, rf := functionNames(l), functionNames(r)
	in := make(map[string]bool, len(rf))
	for _, fn := range rf {
		in[fn] = true
	}
	for _, fn := range lf {
		if !in[fn] {
			return nil, fmt.Errorf("function %q is in the left table but not the right", fn)
		}
		delete(in, fn)
	}
	for _, fn := range rf {
		if in[fn] {
			return nil, fmt.Errorf("function %q is in the right table but not the left", fn)
		}
	}

	return table.Flatten(table.Join(l, FunctionColumn, r, FunctionColumn)), nil
}

// project returns a two-column table of t's Function column and column
// col, renamed to as. It checks that function names are unique.
func project(t *table.Table, side, col, as string) (*table.Table, error) {
	fns := t.Column(FunctionColumn)
	if fns == nil {
		return nil, fmt.Errorf("%s table has no %q column", side, FunctionColumn)
	}
	vals := t.Column(col)
	if vals == nil {
		return nil, fmt.Errorf("%s table has no %q column", side, col)
	}

	// ReadCSV coerces all-numeric function names to numbers.
	var b table.Builder
	b.Add(FunctionColumn, column(fns)).Add(as, vals)
	p := b.Done()

	seen := make(map[string]bool)
	for _, fn := range functionNames(p) {
		if seen[fn] {
			return nil, fmt.Errorf("%s table has more than one row for function %q", side, fn)
		}
		seen[fn] = true
	}
	return p, nil
}

func functionNames(t *table.Table) []string {
	return t.MustColumn(FunctionColumn).([]string)
}
