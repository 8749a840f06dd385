// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInputs(t *testing.T) {
	f := Files{Paths: []string{"out/avl.tsv", "red=out/rb.tsv", "a=b=c"}, AllowLabels: true}
	got, err := f.Inputs()
	if err != nil {
		t.Fatal(err)
	}
	want := []Input{{"avl", "out/avl.tsv"}, {"red", "out/rb.tsv"}, {"a", "b=c"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("inputs (-want +got):\n%s", diff)
	}

	f = Files{Paths: []string{"x=1.tsv"}}
	got, err = f.Inputs()
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Name != "x=1" {
		t.Errorf("without labels, name = %q, want x=1", got[0].Name)
	}
}

func TestInputsErrors(t *testing.T) {
	for _, paths := range [][]string{
		{"a/avl.tsv", "b/avl.tsv"},
		{"=x.tsv"},
	} {
		f := Files{Paths: paths, AllowLabels: true}
		if _, err := f.Inputs(); err == nil {
			t.Errorf("Inputs(%q) succeeded, want error", paths)
		}
	}
}

func TestFilesLoad(t *testing.T) {
	f := Files{Paths: []string{filepath.Join("testdata", "avl.tsv"), filepath.Join("testdata", "rb.tsv")}}
	ds, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, d := range ds {
		names = append(names, d.Name)
	}
	if !cmp.Equal(names, []string{"avl", "rb"}) {
		t.Errorf("names = %q", names)
	}

	f.Paths = append(f.Paths, filepath.Join("testdata", "nope.tsv"))
	ds, err = f.Load()
	var fe *DataFormatError
	if !errors.As(err, &fe) || ds != nil {
		t.Errorf("got %v, %v; want nil, *DataFormatError", ds, err)
	}
}
