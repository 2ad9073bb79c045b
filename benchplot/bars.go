// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// GroupWidth is the fraction of each category's slot covered by its
// bars. Two series get bars 0.35 wide.
const GroupWidth = 0.7

var (
	barFills = []color.Color{
		rgb(0x60a5fa),
		rgb(0x4ade80),
		rgb(0xfbbf24),
	}
	barEdges = []color.Color{
		rgb(0x2563eb),
		rgb(0x16a34a),
		rgb(0xd97706),
	}
	gridColor = color.Gray{0xd3} // lightgray
)

// A BarSeries is one labelled set of bars, one per category.
type BarSeries struct {
	Label  string
	Values []float64
}

// A BarChart groups one bar from each series over every category.
type BarChart struct {
	Title, XLabel, YLabel string

	Categories []string
	Series     []BarSeries

	// Log selects a logarithmic Y axis labelled by LogTicks.
	Log bool
}

// Bar builds the plot for c. NaN values leave a gap. On a log axis,
// every other value must be positive and the axis is widened to whole
// decades.
func Bar(c BarChart) (*plot.Plot, error) {
	if len(c.Series) == 0 {
		return nil, errors.New("bar chart has no series")
	}
	if len(c.Categories) == 0 {
		return nil, errors.New("bar chart has no categories")
	}
	for _, s := range c.Series {
		if len(s.Values) != len(c.Categories) {
			return nil, fmt.Errorf("series %q has %d values, want %d", s.Label, len(s.Values), len(c.Categories))
		}
		if !c.Log {
			continue
		}
		for i, v := range s.Values {
			if !(v > 0) && !math.IsNaN(v) {
				return nil, fmt.Errorf("series %q: %s value %v cannot be shown on a log axis", s.Label, c.Categories[i], v)
			}
		}
	}

	p := plot.New()
	labels(p, c.Title, c.XLabel, c.YLabel)
	if c.Log {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = LogTicks{}
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	k := len(c.Series)
	w := GroupWidth / float64(k)
	for i, s := range c.Series {
		b := &bars{
			values: s.Values,
			offset: (float64(i) - float64(k-1)/2) * w,
			width:  w,
			fill:   pick(barFills, i),
			edge: draw.LineStyle{
				Color: pick(barEdges, i),
				Width: vg.Points(1),
			},
			log: c.Log,
		}
		p.Add(b)
		p.Legend.Add(s.Label, b)
	}
	p.NominalX(c.Categories...)

	if c.Log {
		if math.IsInf(p.Y.Min, 0) || math.IsInf(p.Y.Max, 0) {
			return nil, errors.New("bar chart has no values")
		}
		p.Y.Min, p.Y.Max = decades(p.Y.Min, p.Y.Max)
	}
	return p, nil
}

// bars draws one series of a grouped bar chart. Its bars sit at
// category index plus offset, in data units.
type bars struct {
	values []float64
	offset float64
	width  float64
	fill   color.Color
	edge   draw.LineStyle
	log    bool
}

// Plot draws the bars on Canvas c and Plot plt. Bars on a log axis
// rise from the bottom of the canvas, since log(0) is undefined.
func (b *bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	bottom := c.Min.Y
	if !b.log {
		bottom = trY(0)
	}
	for i, v := range b.values {
		if math.IsNaN(v) {
			continue
		}
		x := float64(i) + b.offset
		left, right := trX(x-b.width/2), trX(x+b.width/2)
		if !c.ContainsX(left) && !c.ContainsX(right) {
			continue
		}
		top := trY(v)
		pts := []vg.Point{
			{X: left, Y: bottom},
			{X: left, Y: top},
			{X: right, Y: top},
			{X: right, Y: bottom},
		}
		c.FillPolygon(b.fill, c.ClipPolygonY(pts))
		pts = append(pts, pts[0])
		c.StrokeLines(b.edge, c.ClipLinesY(pts)...)
	}
}

// DataRange returns the slot range of the categories and the range of
// the values. On a linear axis the range includes zero.
func (b *bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(b.values))-0.5
	ymin, ymax = math.Inf(1), math.Inf(-1)
	if !b.log {
		ymin, ymax = 0, 0
	}
	for _, v := range b.values {
		if math.IsNaN(v) {
			continue
		}
		ymin = math.Min(ymin, v)
		ymax = math.Max(ymax, v)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail draws a filled, outlined box for the legend.
func (b *bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(b.fill, c.ClipPolygonY(pts))
	pts = append(pts, pts[0])
	c.StrokeLines(b.edge, c.ClipLinesY(pts)...)
}
