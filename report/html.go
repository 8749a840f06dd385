// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/google/safehtml/template"

	"github.com/treebench/treeplot/chart"
)

const indexName = "index.html"

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>Tree benchmarks</title>
<style>
body { font-family: sans-serif; }
.series { border-collapse: collapse; }
.series th, .series td { padding: 0em 1em; text-align: right; }
.series td:first-child { text-align: left; }
</style>
</head>
<body>
{{- range .}}
<h2>{{.Name}}</h2>
<img src="{{.Image}}" alt="{{.Name}}">
{{- if .Data}}
<p><a href="{{.Data}}">{{.Data}}</a></p>
{{- end}}
<table class="series">
<tr><th>series<th>points<th>x range<th>y range
{{range .Series -}}
<tr><td>{{.Label}}<td>{{.Points}}<td>{{.X}}<td>{{.Y}}
{{end -}}
</table>
{{- end}}
</body>
</html>
`))

type indexChart struct {
	Name, Image, Data string
	Series            []indexSeries
}

type indexSeries struct {
	Label  string
	Points int
	X, Y   string
}

// writeIndex writes an HTML page showing views, which must already be
// rendered next to it.
func writeIndex(w io.Writer, views []*chart.View, sc chart.Scale, withCSV bool) error {
	sum := chart.Summarize(views, sc)
	labels := sum.MustColumn(chart.SumSeries).([]string)
	points := sum.MustColumn(chart.SumPoints).([]int)
	xr := sum.MustColumn(chart.SumX).([]string)
	yr := sum.MustColumn(chart.SumY).([]string)

	var charts []indexChart
	row := 0
	for _, v := range views {
		ic := indexChart{Name: v.Name, Image: v.Name + ".png"}
		if withCSV {
			ic.Data = v.Name + ".csv"
		}
		for range v.Series {
			ic.Series = append(ic.Series, indexSeries{labels[row], points[row], xr[row], yr[row]})
			row++
		}
		charts = append(charts, ic)
	}
	return indexTemplate.Execute(w, charts)
}
