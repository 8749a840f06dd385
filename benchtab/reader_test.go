// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReader(t *testing.T) {
	r := NewReader(strings.NewReader("\n a \tb\n\n1\t2\n3\n"), "")
	hdr, err := r.Header()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(hdr, []string{"a", "b"}) {
		t.Errorf("header = %q", hdr)
	}
	type line struct {
		n      int
		fields []string
	}
	var got []line
	for r.Scan() {
		got = append(got, line{r.Line(), append([]string(nil), r.Fields()...)})
	}
	if err := r.Err(); err != nil {
		t.Fatal(err)
	}
	want := []line{{4, []string{"1", "2"}}, {5, []string{"3"}}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(line{})); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
	if r.FileName() != "<unknown>" {
		t.Errorf("file name = %q", r.FileName())
	}
}

func TestReaderReset(t *testing.T) {
	var r Reader
	r.Reset(strings.NewReader(""), "one")
	if r.Scan() {
		t.Fatal("Scan succeeded on empty input")
	}
	if r.Err() == nil {
		t.Fatal("want missing header error")
	}
	r.Reset(strings.NewReader("x\n1\n"), "two")
	if !r.Scan() {
		t.Fatalf("Scan failed after Reset: %v", r.Err())
	}
	if got := r.Fields(); !cmp.Equal(got, []string{"1"}) {
		t.Errorf("fields = %q", got)
	}
}

func TestReaderByteOrderMark(t *testing.T) {
	r := NewReader(strings.NewReader("\ufeffsize_ins\tinsertion\n1\t2\n"), "bom.tsv")
	hdr, err := r.Header()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(hdr, []string{"size_ins", "insertion"}) {
		t.Errorf("header = %q", hdr)
	}
}
