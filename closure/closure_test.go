// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestZeroInputGivesZeroC(tst *testing.T) {
	chk.PrintTitle("closures at gamma=0, U=0 return c=0")
	for _, name := range []string{"HNC", "PY"} {
		mdl, err := New(name)
		if err != nil {
			tst.Errorf("New(%s) failed: %v\n", name, err)
			continue
		}
		c := mdl.C(1.0, 0, 0, 1.0)
		chk.Scalar(tst, name, 1e-14, c, 0)
	}
	ry, _ := New("RY")
	chk.Scalar(tst, "RY", 1e-10, ry.C(1.0, 0, 0, 1.0), 0)
}

func TestRYLimits(tst *testing.T) {
	chk.PrintTitle("RY(alpha) reduces to PY as alpha->0 and HNC as alpha->infinity")

	gamma, U, beta, r := 0.35, -0.2, 1.2, 1.3

	py, _ := New("PY")
	hnc, _ := New("HNC")
	cPY := py.C(r, gamma, U, beta)
	cHNC := hnc.C(r, gamma, U, beta)

	ryLow := &RY{Alpha: 1e-6}
	ryHigh := &RY{Alpha: 50}

	chk.AnaNum(tst, "RY(alpha->0) vs PY", 1e-5, ryLow.C(r, gamma, U, beta), cPY, chk.Verbose)
	chk.AnaNum(tst, "RY(alpha->inf) vs HNC", 1e-6, ryHigh.C(r, gamma, U, beta), cHNC, chk.Verbose)
}

func TestApplyHardCoreOverride(tst *testing.T) {
	chk.PrintTitle("closure.Apply enforces c=-1-gamma inside the hard core")

	mdl, _ := New("PY")
	r := []float64{0.2, 0.6, 1.2}
	gamma := []float64{0.1, 0.2, 0.3}
	U := []float64{0, 0, 0}
	core := []bool{true, true, false}

	c := Apply(mdl, r, gamma, U, 1.0, core)
	chk.Scalar(tst, "c[0]", 1e-14, c[0], -1-gamma[0])
	chk.Scalar(tst, "c[1]", 1e-14, c[1], -1-gamma[1])

	cOut := mdl.C(r[2], gamma[2], U[2], 1.0)
	chk.Scalar(tst, "c[2]", 1e-14, c[2], cOut)
	if math.IsNaN(c[2]) {
		tst.Errorf("unexpected NaN outside the core\n")
	}
}
