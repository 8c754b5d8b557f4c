// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/ozsolve/grid"
)

// WCA implements the Weeks-Chandler-Andersen potential: the repulsive branch
// of the Lennard-Jones potential, shifted to vanish continuously at its
// minimum rc = 2^(1/6)*sigma.
//
//	U(r) = 4*eps*[(sigma/r)^12 - (sigma/r)^6] + eps  for r < rc
//	U(r) = 0                                         for r >= rc
type WCA struct {
	Eps, Sig float64
	rc       float64
}

func init() {
	allocators[2] = func() Model { return new(WCA) }
}

// Init initialises the WCA potential from named parameters: "eps", "sigma".
func (o *WCA) Init(prms fun.Prms) (err error) {
	o.Eps, o.Sig = 1.0, 1.0
	for _, p := range prms {
		switch p.N {
		case "eps":
			o.Eps = p.V
		case "sigma":
			o.Sig = p.V
		}
	}
	o.rc = math.Pow(2, 1.0/6.0) * o.Sig
	return
}

// Sigma returns 0: WCA is repulsive but has no hard core, so its length
// scale sigma is not reported here.
func (o *WCA) Sigma() float64 { return 0 }

// Tail reports that WCA is compact-support and needs no tail splitting.
func (o *WCA) Tail() *grid.TailSplitter { return nil }

// Eval tabulates U(r) and Up(r) = -r*dU/dr = 48*eps*x^2 - 24*eps*x, x=(sigma/r)^6.
func (o *WCA) Eval(r []float64) (U, Up []float64) {
	U = make([]float64, len(r))
	Up = make([]float64, len(r))
	for i, ri := range r {
		if ri >= o.rc {
			continue
		}
		x := math.Pow(o.Sig/ri, 6)
		U[i] = 4*o.Eps*(x*x-x) + o.Eps
		Up[i] = 48*o.Eps*x*x - 24*o.Eps*x
	}
	return
}
