// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ozsolve/ana"
)

func TestWriteFamilyProducesThreeFiles(tst *testing.T) {
	chk.PrintTitle("WriteFamily writes SdeK, GdeR and CdeK files")

	dir := tst.TempDir()
	all := &ana.AllSeries{
		R:    []float64{0.5, 1.5},
		G:    []float64{0.0, 1.2},
		K:    []float64{0.1, 0.2},
		S:    []float64{0.9, 1.1},
		Chat: []float64{-0.3, -0.1},
	}
	WriteFamily(dir, "HNC", all)

	for _, suffix := range []string{"SdeK", "GdeR", "CdeK"} {
		path := filepath.Join(dir, "HNC_"+suffix+".dat")
		b, err := os.ReadFile(path)
		if err != nil {
			tst.Fatalf("expected %s to exist: %v\n", path, err)
		}
		lines := strings.Split(strings.TrimSpace(string(b)), "\n")
		if len(lines) != 2 {
			tst.Errorf("%s: expected 2 lines, got %d\n", path, len(lines))
		}
		if !strings.Contains(lines[0], "\t") {
			tst.Errorf("%s: expected tab-separated columns, got %q\n", path, lines[0])
		}
	}
}
