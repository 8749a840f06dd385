// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSummarize(t *testing.T) {
	views := []*View{testView(), {Name: "empty", Series: []Series{{Label: "rb"}}}}
	tab := Summarize(views, testOptions.Scale)
	if tab.Len() != 4 {
		t.Fatalf("got %d rows, want 4", tab.Len())
	}
	if diff := cmp.Diff([]int{3, 2, 1, 0}, tab.Column(SumPoints)); diff != "" {
		t.Errorf("points (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"insertion", "access", "deletion", "rb"}, tab.Column(SumSeries)); diff != "" {
		t.Errorf("series (-want +got):\n%s", diff)
	}
	xr := tab.Column(SumX).([]string)
	if xr[0] != "1.000..3.000" || xr[3] != "-" {
		t.Errorf("x ranges = %q", xr)
	}
	yr := tab.Column(SumY).([]string)
	if yr[1] != "1.000k..1.200k" {
		t.Errorf("y ranges = %q", yr)
	}

	var buf bytes.Buffer
	if err := PrintSummary(&buf, views, testOptions.Scale); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"view", "series", "insertion", "empty"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
