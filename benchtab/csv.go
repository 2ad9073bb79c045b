// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/table"
)

// writeCSV writes g as CSV with a header row.
func writeCSV(out io.Writer, g table.Grouping) error {
	tab := [][]string{g.Columns()}
	tab = append(tab, rows(g)...)
	csvw := csv.NewWriter(out)
	if err := csvw.WriteAll(tab); err != nil {
		return err
	}
	return csvw.Error()
}

// ReadCSV reads a CSV table with a header row. Columns whose cells
// all parse as integers become []int and columns whose cells all
// parse as floats become []float64; all other columns are []string.
func ReadCSV(r io.Reader) (*table.Table, error) {
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("CSV has no header row")
	}
	header := recs[0]
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		if seen[h] {
			return nil, fmt.Errorf("CSV header has duplicate column %q", h)
		}
		seen[h] = true
	}
	return table.TableFromStrings(header, recs[1:], true), nil
}

// ReadFile reads the CSV table at path.
func ReadFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Strings returns column col of t as strings.
func Strings(t *table.Table, col string) ([]string, error) {
	c := t.Column(col)
	if c == nil {
		return nil, fmt.Errorf("no %q column", col)
	}
	return column(c), nil
}

// Float64s returns column col of t as numbers. Empty cells of a
// string column are NaN.
func Float64s(t *table.Table, col string) ([]float64, error) {
	switch c := t.Column(col).(type) {
	case nil:
		return nil, fmt.Errorf("no %q column", col)
	case []float64:
		return c, nil
	case []int:
		out := make([]float64, len(c))
		for i, v := range c {
			out[i] = float64(v)
		}
		return out, nil
	case []string:
		out := make([]float64, len(c))
		for i, v := range c {
			if v == "" {
				out[i] = math.NaN()
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %q is not a number", col, i+1, v)
			}
			out[i] = f
		}
		return out, nil
	}
	return nil, fmt.Errorf("column %q is not numeric", col)
}

// rows formats every row of g as strings, one group after another.
func rows(g table.Grouping) [][]string {
	cols := g.Columns()
	var out [][]string
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		cells := make([][]string, len(cols))
		for i, col := range cols {
			cells[i] = column(t.Column(col))
		}
		for r := 0; r < t.Len(); r++ {
			row := make([]string, len(cols))
			for i := range cols {
				row[i] = cells[i][r]
			}
			out = append(out, row)
		}
	}
	return out
}

// column formats the cells of a column.
func column(col table.Slice) []string {
	switch col := col.(type) {
	case []string:
		return col
	case []float64:
		out := make([]string, len(col))
		for i, v := range col {
			out[i] = strof(v)
		}
		return out
	case []int:
		out := make([]string, len(col))
		for i, v := range col {
			out[i] = strconv.Itoa(v)
		}
		return out
	}
	rv := reflect.ValueOf(col)
	out := make([]string, rv.Len())
	for i := range out {
		out[i] = fmt.Sprint(rv.Index(i).Interface())
	}
	return out
}

// strof formats x with the fewest digits that read back as x. NaN,
// which marks a missing measurement, is an empty cell.
func strof(x float64) string {
	if math.IsNaN(x) {
		return ""
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
