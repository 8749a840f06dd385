// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"encoding/csv"
	"io"

	"github.com/treebench/treeplot/benchunit"
)

// WriteCSV writes the rescaled points of v to out as CSV with the
// header "series,x,y", one row per plotted point. Missing points are
// omitted, exactly as in the chart.
func (v *View) WriteCSV(out io.Writer, sc Scale) error {
	csvw := csv.NewWriter(out)
	csvw.Write([]string{"series", "x", "y"})
	for _, s := range v.Series {
		for _, pt := range sc.Apply(s).XYs() {
			csvw.Write([]string{s.Label, strof(pt.X), strof(pt.Y)})
		}
	}
	csvw.Flush()
	return csvw.Error()
}

func strof(x float64) string {
	return benchunit.NoOpScaler.Format(x)
}
