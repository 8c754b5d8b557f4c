// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

// checkUp compares the catalogue's analytic Up(r) = -r*dU/dr against a
// central-difference estimate, the way mdl/solid's driver checks a
// consistent tangent against num.DerivCen.
func checkUp(tst *testing.T, name string, mdl Model, rtest []float64, tol float64) {
	for _, r0 := range rtest {
		_, Up := mdl.Eval([]float64{r0})
		dnum := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
			Ux, _ := mdl.Eval([]float64{x})
			return Ux[0]
		}, r0)
		ana := -r0 * dnum
		chk.AnaNum(tst, io.Sf("%s Up(%.2f)", name, r0), tol, Up[0], ana, chk.Verbose)
	}
}

func TestIPL(tst *testing.T) {
	chk.PrintTitle("IPL potential")
	mdl, err := New(1)
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(fun.Prms{
		&fun.Prm{N: "eps", V: 1.0},
		&fun.Prm{N: "sigma", V: 1.0},
		&fun.Prm{N: "lambda", V: 12.0},
	})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	checkUp(tst, "IPL", mdl, []float64{0.8, 1.0, 1.5, 3.0}, 1e-6)
}

func TestWCACutoff(tst *testing.T) {
	chk.PrintTitle("WCA potential vanishes past cutoff")
	mdl, _ := New(2)
	mdl.Init(fun.Prms{&fun.Prm{N: "eps", V: 1.0}, &fun.Prm{N: "sigma", V: 1.0}})
	U, Up := mdl.Eval([]float64{2.0})
	if U[0] != 0 || Up[0] != 0 {
		tst.Errorf("WCA should vanish past its cutoff: U=%v Up=%v\n", U[0], Up[0])
	}
	checkUp(tst, "WCA", mdl, []float64{0.9, 1.0, 1.1}, 1e-6)
}

func TestHertzian(tst *testing.T) {
	chk.PrintTitle("Hertzian potential")
	mdl, _ := New(13)
	mdl.Init(fun.Prms{&fun.Prm{N: "eps", V: 2.0}, &fun.Prm{N: "sigma", V: 1.0}})
	U, _ := mdl.Eval([]float64{1.5})
	if U[0] != 0 {
		tst.Errorf("Hertzian should vanish for r > sigma; got %v\n", U[0])
	}
	checkUp(tst, "Hertzian", mdl, []float64{0.2, 0.5, 0.9}, 1e-6)
}

func TestHardSphereHasNoTail(tst *testing.T) {
	chk.PrintTitle("hard sphere catalogue entry")
	mdl, _ := New(7)
	mdl.Init(fun.Prms{&fun.Prm{N: "sigma", V: 1.0}})
	if mdl.Sigma() != 1.0 {
		tst.Errorf("expected sigma=1.0, got %v\n", mdl.Sigma())
	}
	if mdl.Tail() != nil {
		tst.Errorf("hard sphere should report no long-range tail\n")
	}
}

func TestDoubleYukawaTailRoundtrip(tst *testing.T) {
	chk.PrintTitle("double Yukawa tail splitter consistency")
	mdl, _ := New(4)
	mdl.Init(fun.Prms{
		&fun.Prm{N: "T2", V: 1.0},
		&fun.Prm{N: "lambda_a", V: 1.8},
		&fun.Prm{N: "lambda_r", V: 4.0},
		&fun.Prm{N: "sigma", V: 1.0},
		&fun.Prm{N: "beta", V: 1.0},
	})
	tail := mdl.Tail()
	if tail == nil {
		tst.Errorf("double Yukawa must report a long-range tail\n")
		return
	}
	// the tail function itself must be finite and decaying
	v1 := tail.Tail(2.0)
	v2 := tail.Tail(10.0)
	if v2 >= v1 {
		tst.Errorf("tail should decay with r: tail(2)=%v tail(10)=%v\n", v1, v2)
	}
}
