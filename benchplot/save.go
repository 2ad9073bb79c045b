// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"bufio"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/imt-benchmarks/analysis/benchtab"
)

// DPI is the resolution of PNG output.
const DPI = 300

// Save renders p at width by height into the file at path, replacing
// any existing file. The format follows the file extension: PNG is
// drawn at DPI on a white background, and other extensions are any
// format supported by plot.Plot.WriterTo, such as svg or pdf.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	var wt io.WriterTo
	if ext == "png" {
		can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
			vgimg.UseWH(width, height),
			vgimg.UseDPI(DPI),
			vgimg.UseBackgroundColor(color.White),
		)}
		p.Draw(draw.New(can))
		wt = can
	} else {
		var err error
		wt, err = p.WriterTo(width, height, ext)
		if err != nil {
			return &benchtab.WriteError{Path: path, Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &benchtab.WriteError{Path: path, Err: err}
	}
	w := bufio.NewWriter(f)
	_, err = wt.WriteTo(w)
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &benchtab.WriteError{Path: path, Err: err}
	}
	return nil
}
