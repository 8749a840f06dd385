// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab reads tab-separated benchmark measurement tables.
//
// A measurement file starts with a header line naming its columns,
// followed by one line per sample. Columns are separated by tabs:
//
//	size_ins	insertion	size_acc	access	size_del	deletion
//	5000	1.2e-07	10000	4.1e-08	9995	1.5e-07
//
// Each operation has its own size column because the harness samples
// each operation at different tree sizes. Values in the same row are
// only paired within a size/operation column pair.
package benchtab

import (
	"bufio"
	"io"
	"strings"
)

// A Reader reads the lines of a tab-separated measurement file.
//
// Its API is modeled on bufio.Scanner. The slice returned by Fields is
// reused by the next call to Scan; a caller should copy anything it
// needs to retain.
//
// To construct a new Reader, either call NewReader, or call Reset on a
// zeroed Reader.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     int

	header []string
	fields []string
	err    error
}

const maxLineSize = 1 << 20

// NewReader constructs a reader that reads a measurement table from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, maxLineSize)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.header = nil
	r.fields = r.fields[:0]
	r.err = nil
}

// next reads the next non-blank line into r.fields.
func (r *Reader) next() bool {
	for r.s.Scan() {
		r.line++
		line := strings.TrimRight(r.s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r.fields = append(r.fields[:0], strings.Split(line, "\t")...)
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = &DataFormatError{FileName: r.fileName, Msg: "read failed", Err: err}
	}
	return false
}

// Header reads the header line if it has not been read yet and returns
// the column names. Surrounding white space is removed from each name,
// as is a leading byte order mark.
//
// An input with no non-blank lines has no header; Header returns a
// *DataFormatError for it.
func (r *Reader) Header() ([]string, error) {
	if r.header != nil || r.err != nil {
		return r.header, r.err
	}
	if !r.next() {
		if r.err == nil {
			r.err = &DataFormatError{FileName: r.fileName, Msg: "no header line"}
		}
		return nil, r.err
	}
	r.header = make([]string, len(r.fields))
	for i, f := range r.fields {
		if i == 0 {
			f = strings.TrimPrefix(f, "\ufeff")
		}
		r.header[i] = strings.TrimSpace(f)
	}
	return r.header, nil
}

// Scan advances the reader to the next data line and reports whether a
// line was read. The first call also consumes the header line. The
// caller should use the Fields method to get the cells of the line. If
// Scan reaches EOF or an error occurs, it returns false, in which case
// the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if _, err := r.Header(); err != nil {
		return false
	}
	return r.next()
}

// Fields returns the cells of the line that was just read by Scan.
// A line may have fewer or more cells than the header.
func (r *Reader) Fields() []string {
	return r.fields
}

// Line returns the 1-based line number of the line that was just read.
func (r *Reader) Line() int {
	return r.line
}

// FileName returns the diagnostic name of the input.
func (r *Reader) FileName() string {
	return r.fileName
}

// Err returns the error that stopped Scan, if any. If Scan reached the
// end of the input, Err returns nil.
func (r *Reader) Err() error {
	return r.err
}
