// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"path/filepath"
	"strings"
)

// A Files loads a sequence of measurement files as Datasets.
//
// By default, each Dataset is named after its file, with the directory
// and extension removed. If AllowLabels is true, then entries in Paths
// may be of the form label=path, and the label part will be used as
// the Dataset name.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowLabels indicates that custom labels are allowed in
	// Paths.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line flags.
	AllowLabels bool
}

// Input is one parsed entry of Files.Paths.
type Input struct {
	Name string
	Path string
}

// Inputs parses f.Paths into dataset names and file paths. Names must
// be unique, since they label the series of a chart.
func (f *Files) Inputs() ([]Input, error) {
	var inputs []Input
	seen := make(map[string]string)
	for _, path := range f.Paths {
		name := ""
		if i := strings.Index(path, "="); f.AllowLabels && i >= 0 {
			name, path = path[:i], path[i+1:]
		} else {
			name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		if name == "" {
			return nil, fmt.Errorf("%s: empty dataset name", path)
		}
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("dataset name %q used by both %s and %s", name, prev, path)
		}
		seen[name] = path
		inputs = append(inputs, Input{Name: name, Path: path})
	}
	return inputs, nil
}

// Load loads every file in f.Paths in order. It stops at the first
// file that fails to load; there is no partial result.
func (f *Files) Load() ([]*Dataset, error) {
	inputs, err := f.Inputs()
	if err != nil {
		return nil, err
	}
	var ds []*Dataset
	for _, in := range inputs {
		d, err := LoadFile(in.Name, in.Path)
		if err != nil {
			return nil, err
		}
		ds = append(ds, d)
	}
	return ds, nil
}
