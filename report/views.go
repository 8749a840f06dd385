// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report turns tree benchmark datasets into a set of
// comparison charts.
//
// There are two kinds of chart: one per dataset, plotting each
// operation of that dataset, and one per operation, plotting that
// operation for each dataset. Which datasets and operations exist is
// configured by the DefaultDatasets and Operations tables.
package report

import (
	"github.com/treebench/treeplot/benchtab"
	"github.com/treebench/treeplot/chart"
)

// DefaultDatasets are the measurement files read when no others are
// given, as label=path inputs for benchtab.Files.
var DefaultDatasets = []string{
	"avl=out/avl.tsv",
	"rb=out/rb.tsv",
}

// An Operation is one measured tree operation. Its timings are in the
// column Name, measured at the sizes in column SizeColumn.
type Operation struct {
	Name       string
	SizeColumn string
}

// Operations lists the measured operations, in legend order.
var Operations = []Operation{
	{benchtab.Insertion, benchtab.SizeIns},
	{benchtab.Access, benchtab.SizeAcc},
	{benchtab.Deletion, benchtab.SizeDel},
}

func (op Operation) series(d *benchtab.Dataset, label string) chart.Series {
	return chart.Series{
		Label: label,
		X:     d.Column(op.SizeColumn),
		Y:     d.Column(op.Name),
	}
}

// DatasetView returns the chart of every operation of d. Its series
// are labeled by operation name.
func DatasetView(d *benchtab.Dataset) *chart.View {
	v := &chart.View{Name: d.Name, Title: d.Name}
	for _, op := range Operations {
		v.Series = append(v.Series, op.series(d, op.Name))
	}
	return v
}

// OperationView returns the chart of op across datasets. Its series
// are labeled by dataset name, in the order of datasets.
func OperationView(op Operation, datasets []*benchtab.Dataset) *chart.View {
	v := &chart.View{Name: op.Name, Title: op.Name}
	for _, d := range datasets {
		v.Series = append(v.Series, op.series(d, d.Name))
	}
	return v
}

// Views returns every chart for datasets: first one per dataset, then
// one per operation.
func Views(datasets []*benchtab.Dataset) []*chart.View {
	var views []*chart.View
	for _, d := range datasets {
		views = append(views, DatasetView(d))
	}
	for _, op := range Operations {
		views = append(views, OperationView(op, datasets))
	}
	return views
}
