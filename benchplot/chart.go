// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders benchmark line and bar charts.
package benchplot

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// LineWidth is the stroke width of every series in a line chart.
var LineWidth = vg.Points(2)

var lineColors = []color.Color{
	rgb(0x3b82f6), // blue
	rgb(0xec4899), // pink
	rgb(0xf59e0b), // amber
}

func rgb(c uint32) color.Color {
	return color.NRGBA{uint8(c >> 16), uint8(c >> 8), uint8(c), 0xff}
}

// pick returns palette[i], or a gonum default color once the palette
// runs out.
func pick(palette []color.Color, i int) color.Color {
	if i < len(palette) {
		return palette[i]
	}
	return plotutil.Color(i - len(palette))
}

// A LineSeries is one labelled line of a LineChart.
type LineSeries struct {
	Label string
	Y     []float64
}

// A LineChart plots several series against a shared X axis.
type LineChart struct {
	Title, XLabel, YLabel string

	X      []float64
	Series []LineSeries
}

// Line builds the plot for c. Every series must have one Y value for
// each X value.
func Line(c LineChart) (*plot.Plot, error) {
	if len(c.Series) == 0 {
		return nil, errors.New("line chart has no series")
	}

	p := plot.New()
	labels(p, c.Title, c.XLabel, c.YLabel)
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, s := range c.Series {
		if len(s.Y) != len(c.X) {
			return nil, fmt.Errorf("series %q has %d points, want %d", s.Label, len(s.Y), len(c.X))
		}
		xys := make(plotter.XYs, len(c.X))
		for j := range xys {
			xys[j].X, xys[j].Y = c.X[j], s.Y[j]
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		l.LineStyle.Width = LineWidth
		l.LineStyle.Color = pick(lineColors, i)
		p.Add(l)
		p.Legend.Add(s.Label, l)
	}
	return p, nil
}

func labels(p *plot.Plot, title, x, y string) {
	p.Title.Text = title
	p.X.Label.Text = x
	p.Y.Label.Text = y
}
