// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteCSV(t *testing.T) {
	v := &View{
		Name: "insertion",
		Series: []Series{
			{"avl", []float64{10000, math.NaN(), 20000}, []float64{0.002, 1, 0.003}},
			{"rb", nil, nil},
			{"x,y", []float64{5000}, []float64{0.5}},
		},
	}
	var buf bytes.Buffer
	if err := v.WriteCSV(&buf, Scale{XDivisor: 1e4, YMultiplier: 1e6}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"series,x,y",
		"avl,1,2000",
		"avl,2,3000",
		`"x,y",0.5,500000`,
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("CSV (-want +got):\n%s", diff)
	}
}
