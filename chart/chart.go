// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options configures how views are composed and rendered.
type Options struct {
	Scale

	XLabel, YLabel string

	// Width and Height are the image size. Zero means the default
	// size of 16cm by 12cm.
	Width, Height vg.Length

	// DPI is the raster resolution. Zero means 96.
	DPI int
}

const (
	defaultWidth  = 16 * vg.Centimeter
	defaultHeight = 12 * vg.Centimeter
	defaultDPI    = 96
	pointRad      = 2
)

// A RenderError reports a chart that could not be written.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Plot composes v into a plot. Each series becomes a connected line
// with a glyph at every point, in the order of v.Series, and appears
// in the legend in that order. A view with no series yields a plot
// with axes and an empty legend.
func (o *Options) Plot(v *View) (*plot.Plot, error) {
	if err := o.Scale.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = v.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter
	p.BackgroundColor = color.White

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	colors := seriesColors(len(v.Series))
	for i, s := range v.Series {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		pts := o.Scale.Apply(s).XYs()

		line := &plotter.Line{LineStyle: plotter.DefaultLineStyle}
		glyphs := &plotter.Scatter{GlyphStyle: plotter.DefaultGlyphStyle}
		if len(pts) > 0 {
			var err error
			line, glyphs, err = plotter.NewLinePoints(pts)
			if err != nil {
				return nil, fmt.Errorf("series %q: %w", s.Label, err)
			}
			p.Add(line, glyphs)
		}
		line.Color = colors[i]
		glyphs.Color = colors[i]
		glyphs.Shape = plotutil.Shape(i)
		glyphs.Radius = vg.Points(pointRad)
		p.Legend.Add(s.Label, line, glyphs)
	}
	return p, nil
}

// seriesColors picks n distinguishable colors, preferring a
// qualitative brewer palette and falling back to plotutil's.
func seriesColors(n int) []color.Color {
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = plotutil.Color(i)
	}
	// brewer palettes come in sizes of at least 3.
	size := n
	if size < 3 {
		size = 3
	}
	if pal, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", size); err == nil {
		copy(colors, pal.Colors())
	}
	return colors
}

// Render composes v and writes it to w as a PNG image.
func (o *Options) Render(w io.Writer, v *View) error {
	p, err := o.Plot(v)
	if err != nil {
		return err
	}

	width, height, dpi := o.Width, o.Height, o.DPI
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}
	if dpi == 0 {
		dpi = defaultDPI
	}
	can := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White),
	)}
	p.Draw(draw.New(can))
	_, err = can.WriteTo(w)
	return err
}

// RenderFile renders v as a PNG image at path, replacing any existing
// file. The directory must already exist. Any failure is returned as a
// *RenderError.
func (o *Options) RenderFile(path string, v *View) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &RenderError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = &RenderError{Path: path, Err: cerr}
		}
	}()
	if err := o.Render(f, v); err != nil {
		return &RenderError{Path: path, Err: err}
	}
	return nil
}
