// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Required column names.
const (
	SizeIns   = "size_ins"
	SizeAcc   = "size_acc"
	SizeDel   = "size_del"
	Insertion = "insertion"
	Access    = "access"
	Deletion  = "deletion"
)

// Columns lists the columns every measurement table must have, in the
// order they appear in a loaded table.
var Columns = []string{SizeIns, SizeAcc, SizeDel, Insertion, Access, Deletion}

// Load reads a measurement table from r. The result has exactly the
// columns in Columns, each a []float64 with one element per data line
// in input order. Other columns in the input are ignored.
//
// An empty or absent cell is a missing sample and loads as NaN. Any
// other cell that does not parse as a float64 is a *ParseError. A
// missing header or required column is a *DataFormatError.
func Load(r io.Reader, fileName string) (*table.Table, error) {
	return load(NewReader(r, fileName))
}

func load(r *Reader) (*table.Table, error) {
	header, err := r.Header()
	if err != nil {
		return nil, err
	}
	index, err := columnIndex(header, r.FileName())
	if err != nil {
		return nil, err
	}

	cols := make([][]float64, len(Columns))
	for i := range cols {
		// Non-nil even when empty: a nil slice removes a column
		// from a table.Builder.
		cols[i] = []float64{}
	}
	for r.Scan() {
		fields := r.Fields()
		for i, fi := range index {
			v := math.NaN()
			if fi < len(fields) {
				cell := strings.TrimSpace(fields[fi])
				if cell != "" {
					v, err = strconv.ParseFloat(cell, 64)
					if err != nil {
						return nil, &ParseError{
							FileName: r.FileName(),
							Line:     r.Line(),
							Column:   Columns[i],
							Value:    cell,
							Err:      err,
						}
					}
				}
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	b := new(table.Builder)
	for i, name := range Columns {
		b.Add(name, cols[i])
	}
	return b.Done(), nil
}

// columnIndex maps each of Columns to its field index in header.
func columnIndex(header []string, fileName string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := pos[name]; ok && isRequired(name) {
			return nil, &DataFormatError{FileName: fileName, Msg: fmt.Sprintf("duplicate column %q", name)}
		}
		pos[name] = i
	}
	var index []int
	var missing []string
	for _, name := range Columns {
		i, ok := pos[name]
		if !ok {
			missing = append(missing, name)
		}
		index = append(index, i)
	}
	if len(missing) > 0 {
		return nil, &DataFormatError{FileName: fileName, Msg: "missing required columns: " + strings.Join(missing, ", ")}
	}
	return index, nil
}

func isRequired(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

// A Dataset is a measurement table tagged with the name of the
// structure it measures. A Dataset is read-only once loaded.
type Dataset struct {
	Name  string
	Table *table.Table
}

// LoadFile loads the measurement table at path as a Dataset called
// name. A file that cannot be opened is a *DataFormatError.
func LoadFile(name, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DataFormatError{FileName: path, Msg: "cannot open", Err: err}
	}
	defer f.Close()
	t, err := Load(f, path)
	if err != nil {
		return nil, err
	}
	return &Dataset{Name: name, Table: t}, nil
}

// Column returns the values of the named column, or nil if there is no
// such column. The returned slice is shared with the Dataset and must
// not be modified.
func (d *Dataset) Column(name string) []float64 {
	col, _ := d.Table.Column(name).([]float64)
	return col
}

// Len returns the number of data lines in the Dataset.
func (d *Dataset) Len() int {
	return d.Table.Len()
}
