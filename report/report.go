// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package report writes the solver's output series as tab-separated ASCII
// files.
package report

import (
	"bytes"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/ozsolve/ana"
)

// WriteSeries writes one (x,y) series as two tab-separated columns at full
// double precision (%.17e), preserving a round trip through re-parsing.
func WriteSeries(path string, x, y []float64) {
	var buf bytes.Buffer
	for i := range x {
		io.Ff(&buf, "%.17e\t%.17e\n", x[i], y[i])
	}
	io.WriteFileV(path, &buf)
}

// WriteFamily writes the three .dat files named after a closure label
// (e.g. "HNC" or "RY"):
//
//	<label>_SdeK.dat  (k, S(k))
//	<label>_GdeR.dat  (r, g(r))
//	<label>_CdeK.dat  (k, chat(k))
func WriteFamily(dirout, label string, all *ana.AllSeries) {
	WriteSeries(io.Sf("%s/%s_SdeK.dat", dirout, label), all.K, all.S)
	WriteSeries(io.Sf("%s/%s_GdeR.dat", dirout, label), all.R, all.G)
	WriteSeries(io.Sf("%s/%s_CdeK.dat", dirout, label), all.K, all.Chat)
}
