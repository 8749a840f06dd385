// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Treeplot draws comparison charts of tree benchmark measurements.
//
// Usage:
//
//	treeplot [options] [label=file.tsv ...]
//
// Each input is a tab-separated file with the columns size_ins,
// insertion, size_acc, access, size_del, and deletion, as written by
// the tree profiler. Times are in seconds. With no inputs, treeplot
// reads out/avl.tsv as "avl" and out/rb.tsv as "rb".
//
// Treeplot writes one PNG chart per input, plotting all three
// operations of that input, and one PNG chart per operation, comparing
// the inputs. Sizes are divided by -xdiv and times are multiplied by
// -ymul before plotting, so by default the charts show sizes in units
// of 10⁴ and times in microseconds.
//
// The -o option names the output directory, which must exist. It
// defaults to out, next to the default inputs. An
// output of the form gs://bucket/prefix writes to Google Cloud Storage
// instead.
//
// The -csv option also writes the plotted points of each chart as a
// CSV file next to it, and -html writes an index.html page showing
// every chart. The -summary option prints a table of the plotted
// series to standard output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"github.com/treebench/treeplot/internal/sink"
	"github.com/treebench/treeplot/report"
)

func main() {
	log.SetPrefix("treeplot: ")
	log.SetFlags(0)

	err := treeplot(context.Background(), os.Stdout, os.Stderr, os.Args[1:])
	var uerr usageError
	switch {
	case err == nil:
	case errors.Is(err, errFlags):
		os.Exit(2)
	case errors.As(err, &uerr):
		log.Print(err)
		os.Exit(2)
	default:
		log.Print(err)
		os.Exit(1)
	}
}

// errFlags reports a command line the flag package has already
// complained about.
var errFlags = errors.New("invalid flags")

type usageError string

func (e usageError) Error() string { return string(e) }

func treeplot(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	flags := flag.NewFlagSet("treeplot", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "usage: treeplot [options] [label=file.tsv ...]\n")
		fmt.Fprintf(stderr, "options:\n")
		flags.PrintDefaults()
	}

	opts := report.DefaultOptions()
	var (
		flagOut     = flags.String("o", "out", "write charts to `dir` or gs://bucket/prefix")
		flagXLabel  = flags.String("xlabel", "", "x axis `label` (default derived from -xdiv)")
		flagYLabel  = flags.String("ylabel", "", "y axis `label` (default derived from -ymul)")
		flagWidth   = flags.Float64("width", 16, "image width in `cm`")
		flagHeight  = flags.Float64("height", 12, "image height in `cm`")
		flagDPI     = flags.Int("dpi", 96, "image resolution in dots per inch")
		flagJ       = flags.Int("j", 1, "render up to `n` charts at once")
		flagCSV     = flags.Bool("csv", false, "also write the points of each chart as CSV")
		flagHTML    = flags.Bool("html", false, "also write an index.html gallery")
		flagSummary = flags.Bool("summary", false, "print a summary of the plotted series")
		flagQuiet   = flags.Bool("q", false, "do not log progress")
	)
	flags.Float64Var(&opts.XDivisor, "xdiv", opts.XDivisor, "divide sizes by `factor`")
	flags.Float64Var(&opts.YMultiplier, "ymul", opts.YMultiplier, "multiply times by `factor`")
	if err := flags.Parse(args); err != nil {
		return errFlags
	}
	if err := opts.Validate(); err != nil {
		return usageError(err.Error())
	}
	if *flagWidth <= 0 || *flagHeight <= 0 || *flagDPI <= 0 {
		return usageError("image size and resolution must be positive")
	}
	if *flagJ < 1 {
		return usageError("-j must be at least 1")
	}
	opts.XLabel, opts.YLabel = *flagXLabel, *flagYLabel
	opts.Width = vg.Length(*flagWidth) * vg.Centimeter
	opts.Height = vg.Length(*flagHeight) * vg.Centimeter
	opts.DPI = *flagDPI

	out, done, err := sink.Open(ctx, *flagOut)
	if err != nil {
		return err
	}
	defer done()

	c := &report.Config{
		Inputs:   flags.Args(),
		Out:      out,
		Options:  opts,
		Parallel: *flagJ,
		CSV:      *flagCSV,
		HTML:     *flagHTML,
	}
	if *flagSummary {
		c.Summary = stdout
	}
	if !*flagQuiet {
		l := log.New(stderr, "treeplot: ", 0)
		c.Logf = l.Printf
	}
	return report.Run(ctx, c)
}
