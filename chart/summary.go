// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/treebench/treeplot/benchunit"
)

// Summary column names.
const (
	SumView   = "view"
	SumSeries = "series"
	SumPoints = "points"
	SumX      = "x range"
	SumY      = "y range"
)

// Summarize returns a table with one row per series of views giving
// the number of plotted points and the range of the rescaled values.
func Summarize(views []*View, sc Scale) *table.Table {
	// Non-nil so a summary of nothing still has its columns.
	names, labels, xr, yr := []string{}, []string{}, []string{}, []string{}
	points := []int{}
	for _, v := range views {
		for _, s := range v.Series {
			pts := sc.Apply(s).XYs()
			xs := make([]float64, len(pts))
			ys := make([]float64, len(pts))
			for i, pt := range pts {
				xs[i], ys[i] = pt.X, pt.Y
			}
			names = append(names, v.Name)
			labels = append(labels, s.Label)
			points = append(points, len(pts))
			xr = append(xr, bounds(xs))
			yr = append(yr, bounds(ys))
		}
	}
	return new(table.Builder).
		Add(SumView, names).
		Add(SumSeries, labels).
		Add(SumPoints, points).
		Add(SumX, xr).
		Add(SumY, yr).
		Done()
}

func bounds(xs []float64) string {
	if len(xs) == 0 {
		return "-"
	}
	lo, hi := stats.Bounds(xs)
	s := benchunit.CommonScale([]float64{lo, hi})
	return s.Format(lo) + ".." + s.Format(hi)
}

// PrintSummary writes the summary of views to w.
func PrintSummary(w io.Writer, views []*View, sc Scale) error {
	return table.Fprint(w, Summarize(views, sc))
}
