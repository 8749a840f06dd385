// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/treebench/treeplot/benchtab"
	"github.com/treebench/treeplot/benchunit"
	"github.com/treebench/treeplot/chart"
	"github.com/treebench/treeplot/internal/sink"
)

// Config describes one run of the report.
type Config struct {
	// Inputs are the measurement files, as label=path or path (see
	// benchtab.Files). Empty means DefaultDatasets.
	Inputs []string

	// Out receives the images and any other output files.
	Out sink.Sink

	// Options controls chart scaling, labels, and size. Empty axis
	// labels are derived from the scale.
	Options chart.Options

	// Parallel is the number of charts rendered at once. Values
	// below 2 render sequentially.
	Parallel int

	// CSV also writes the plotted points of each chart as
	// <name>.csv.
	CSV bool

	// HTML also writes an index.html page showing every chart.
	HTML bool

	// Summary, if non-nil, receives a text table describing each
	// plotted series.
	Summary io.Writer

	// Logf, if non-nil, is called to report progress.
	Logf func(format string, args ...interface{})
}

// DefaultOptions returns the chart options used when none are given:
// sizes in units of 10⁴ and times in microseconds.
func DefaultOptions() chart.Options {
	return chart.Options{Scale: chart.Scale{XDivisor: 1e4, YMultiplier: 1e6}}
}

func (c *Config) logf(format string, args ...interface{}) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

// Run loads every input, then renders each view to <name>.png in
// c.Out. Loading is all-or-nothing, but rendering is not: if a chart
// fails, charts written before it remain and Run returns the error.
func Run(ctx context.Context, c *Config) error {
	if c.Out == nil {
		return errors.New("report: no output sink")
	}
	opts := c.Options
	if err := opts.Scale.Validate(); err != nil {
		return err
	}
	if opts.XLabel == "" {
		opts.XLabel = benchunit.Label("n", "", 1/opts.XDivisor)
	}
	if opts.YLabel == "" {
		opts.YLabel = benchunit.Label("time", "s", opts.YMultiplier)
	}

	inputs := c.Inputs
	if len(inputs) == 0 {
		inputs = DefaultDatasets
	}
	files := benchtab.Files{Paths: inputs, AllowLabels: true}
	datasets, err := files.Load()
	if err != nil {
		return err
	}
	for _, d := range datasets {
		c.logf("loaded %s: %d rows", d.Name, d.Len())
	}

	views := Views(datasets)

	g, gctx := errgroup.WithContext(ctx)
	if c.Parallel > 1 {
		g.SetLimit(c.Parallel)
	} else {
		g.SetLimit(1)
	}
	for _, v := range views {
		v := v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := c.write(gctx, v.Name+".png", func(w io.Writer) error {
				return opts.Render(w, v)
			}); err != nil {
				return err
			}
			if c.CSV {
				return c.write(gctx, v.Name+".csv", func(w io.Writer) error {
					return v.WriteCSV(w, opts.Scale)
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if c.HTML {
		if err := c.write(ctx, indexName, func(w io.Writer) error {
			return writeIndex(w, views, opts.Scale, c.CSV)
		}); err != nil {
			return err
		}
	}
	if c.Summary != nil {
		if err := chart.PrintSummary(c.Summary, views, opts.Scale); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}

// write creates name in c.Out and fills it using fill. Any failure is
// a *chart.RenderError for the output's path.
func (c *Config) write(ctx context.Context, name string, fill func(w io.Writer) error) error {
	path := c.Out.Path(name)
	w, err := c.Out.Create(ctx, name)
	if err != nil {
		return &chart.RenderError{Path: path, Err: err}
	}
	err = fill(w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return &chart.RenderError{Path: path, Err: err}
	}
	c.logf("wrote %s", path)
	return nil
}
