// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab reshapes benchmark records into tables and writes
// them as CSV, HTML, or aligned text.
//
// Tables are github.com/aclements/go-gg/table values: every column is
// a homogeneously typed Go slice, so numeric cells stay numeric until
// they are formatted for output.
package benchtab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aclements/go-gg/table"

	"github.com/imt-benchmarks/analysis/benchjson"
)

// FunctionColumn is the name of the row-label column of every table
// produced by this package.
const FunctionColumn = "Function"

// Separator splits a record's Function field into the data structure
// name and the function name.
const Separator = " - "

// Internal column names for the long form of a pivot. The leading dot
// keeps them from colliding with data structure names.
const (
	structureColumn = ".structure"
	valueColumn     = ".value"
)

// SplitFunction splits a benchmark name of the form
// "<DataStructure> - <FunctionName>".
func SplitFunction(name string) (structure, function string, err error) {
	parts := strings.Split(name, Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("benchmark name %q is not of the form %q", name, "<DataStructure>"+Separator+"<FunctionName>")
	}
	return parts[0], parts[1], nil
}

// An AlignmentError reports that the records can't be pivoted into a
// rectangular table: either a function was measured on a different
// set of data structures than the first function, or the same
// (data structure, function) pair appears more than once.
type AlignmentError struct {
	Function string

	// Duplicate, if non-empty, is the data structure measured
	// more than once for Function.
	Duplicate string

	// First is the first function in the input. Want is its set of
	// data structures, which defines the table columns, and Got is
	// the set for Function.
	First     string
	Want, Got []string
}

func (e *AlignmentError) Error() string {
	if e.Duplicate != "" {
		return fmt.Sprintf("function %q has more than one result for %q", e.Function, e.Duplicate)
	}
	return fmt.Sprintf("function %q was measured on [%s], but function %q was measured on [%s]",
		e.Function, strings.Join(e.Got, ", "), e.First, strings.Join(e.Want, ", "))
}

// Pivot reshapes records into a table with one row per function name
// and one column per data structure, where each cell is that data
// structure's average time for that function.
//
// Rows are in order of first appearance of each function name. The
// data structures measured for the first function, in order, define
// the columns. Every other function must have been measured on
// exactly the same set of data structures; otherwise Pivot returns an
// *AlignmentError. Every record must have an average time, though it
// may be NaN, which leaves an empty cell.
func Pivot(records []*benchjson.Record) (*table.Table, error) {
	if len(records) == 0 {
		return nil, errors.New("no records to pivot")
	}

	var (
		functions  []string
		structures = make(map[string][]string)
		seen       = make(map[[2]string]bool)

		fnCol = make([]string, 0, len(records))
		dsCol = make([]string, 0, len(records))
		avg   = make([]float64, 0, len(records))
	)
	for i, rec := range records {
		ds, fn, err := SplitFunction(rec.Function)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if ds == FunctionColumn {
			return nil, fmt.Errorf("record %d: data structure name %q collides with the %s column", i, ds, FunctionColumn)
		}
		if !rec.Has(benchjson.KeyAverageTime) {
			return nil, fmt.Errorf("record %d (%s): no %q field", i, rec.Function, benchjson.KeyAverageTime)
		}
		if seen[[2]string{fn, ds}] {
			return nil, &AlignmentError{Function: fn, Duplicate: ds}
		}
		seen[[2]string{fn, ds}] = true

		if _, ok := structures[fn]; !ok {
			functions = append(functions, fn)
		}
		structures[fn] = append(structures[fn], ds)

		fnCol = append(fnCol, fn)
		dsCol = append(dsCol, ds)
		avg = append(avg, rec.AverageTime.Float())
	}

	first := functions[0]
	columns := structures[first]
	for _, fn := range functions[1:] {
		if !sameSet(columns, structures[fn]) {
			return nil, &AlignmentError{Function: fn, First: first, Want: columns, Got: structures[fn]}
		}
	}

	var long table.Builder
	long.Add(FunctionColumn, fnCol).Add(structureColumn, dsCol).Add(valueColumn, avg)
	wide := table.Flatten(table.Pivot(long.Done(), structureColumn, valueColumn))

	// Pivot orders columns by first appearance across all
	// functions. Put them in the first function's order.
	var out table.Builder
	out.Add(FunctionColumn, wide.MustColumn(FunctionColumn))
	for _, ds := range columns {
		out.Add(ds, wide.MustColumn(ds))
	}
	return out.Done(), nil
}

// sameSet reports whether a and b, which have no duplicates, contain
// the same strings.
func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		if !set[s] {
			return false
		}
	}
	return true
}
