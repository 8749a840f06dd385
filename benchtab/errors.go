// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import "fmt"

// A DataFormatError reports that a measurement file could not be used
// as a measurement table: it is missing, unreadable, has no header
// line, or lacks required columns.
type DataFormatError struct {
	FileName string
	Msg      string
	Err      error // underlying I/O error, if any
}

func (e *DataFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.FileName, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}

// A ParseError reports a cell in a required column that is not a
// number.
type ParseError struct {
	FileName string
	Line     int
	Column   string
	Value    string
	Err      error
}

// Pos returns the file and line of the bad cell.
func (e *ParseError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: column %s: cannot parse %q as a number", e.FileName, e.Line, e.Column, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
