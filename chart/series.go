// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart composes line charts of benchmark series and renders
// them as PNG images.
package chart

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot/plotter"
)

// A Series is one labeled curve of a chart. X[i] pairs with Y[i].
//
// The slices are typically shared with a loaded dataset; nothing in
// this package modifies them.
type Series struct {
	Label string
	X, Y  []float64
}

// Validate reports whether s has the same number of x and y values.
func (s Series) Validate() error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("series %q: %d x values but %d y values", s.Label, len(s.X), len(s.Y))
	}
	return nil
}

// A View is the content of one chart: a set of series drawn together.
// Name identifies the view and is the base of its output file names.
type View struct {
	Name   string
	Title  string
	Series []Series
}

// A Scale converts raw values into chart units. X values are divided
// by XDivisor and Y values are multiplied by YMultiplier.
type Scale struct {
	XDivisor    float64
	YMultiplier float64
}

// Identity leaves values unchanged.
var Identity = Scale{XDivisor: 1, YMultiplier: 1}

// Validate reports whether both factors are positive.
func (sc Scale) Validate() error {
	if !(sc.XDivisor > 0) || math.IsInf(sc.XDivisor, 0) {
		return fmt.Errorf("x divisor must be positive, got %v", sc.XDivisor)
	}
	if !(sc.YMultiplier > 0) || math.IsInf(sc.YMultiplier, 0) {
		return fmt.Errorf("y multiplier must be positive, got %v", sc.YMultiplier)
	}
	return nil
}

// Apply returns a copy of s with its values rescaled. The values of s
// are not modified.
func (sc Scale) Apply(s Series) Series {
	return Series{
		Label: s.Label,
		X:     vec.Map(func(x float64) float64 { return x / sc.XDivisor }, s.X),
		Y:     vec.Map(func(y float64) float64 { return y * sc.YMultiplier }, s.Y),
	}
}

// XYs returns the points of s for plotting, skipping any point with a
// missing (NaN) or infinite coordinate.
func (s Series) XYs() plotter.XYs {
	n := len(s.X)
	if len(s.Y) < n {
		n = len(s.Y)
	}
	pts := make(plotter.XYs, 0, n)
	for i := 0; i < n; i++ {
		x, y := s.X[i], s.Y[i]
		if !finite(x) || !finite(y) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
	}
	return pts
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
