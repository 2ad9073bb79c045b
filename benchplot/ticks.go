// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// LogTickLabel formats a tick value on a logarithmic axis without
// scientific notation. Values of at least 1 are printed as integers.
// Smaller values get just enough decimal places to show their first
// significant digit, -floor(log10(y)).
func LogTickLabel(y float64) string {
	if !(y > 0) || math.IsInf(y, 0) {
		return strconv.FormatFloat(y, 'f', -1, 64)
	}
	if y >= 1 {
		return strconv.FormatFloat(math.Trunc(y), 'f', 0, 64)
	}
	// Log10 of an exact decade can land just below the integer.
	d := int(-math.Floor(math.Log10(y) + 1e-9))
	return strconv.FormatFloat(y, 'f', d, 64)
}

// LogTicks marks a logarithmic axis with a labelled tick at each power
// of ten and unlabelled ticks at 2 through 9 times each power.
type LogTicks struct{}

const tickSlop = 1e-9

func (LogTicks) Ticks(min, max float64) []plot.Tick {
	if !(min > 0) || !(max >= min) || math.IsInf(max, 0) {
		return nil
	}
	lo, hi := min*(1-tickSlop), max*(1+tickSlop)
	var ticks []plot.Tick
	for e := math.Floor(math.Log10(min)); ; e++ {
		decade := math.Pow(10, e)
		if decade > hi {
			break
		}
		for m := 1; m <= 9; m++ {
			v := float64(m) * decade
			if v < lo {
				continue
			}
			if v > hi {
				break
			}
			t := plot.Tick{Value: v}
			if m == 1 {
				t.Label = LogTickLabel(v)
			}
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// decades widens [min, max] outward to the enclosing powers of ten.
func decades(min, max float64) (float64, float64) {
	lo := math.Pow(10, math.Floor(math.Log10(min)+tickSlop))
	hi := math.Pow(10, math.Ceil(math.Log10(max)-tickSlop))
	if hi <= lo {
		hi = lo * 10
	}
	return lo, hi
}
