// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/ozsolve/grid"
)

// SquareWell implements the square-well potential:
//
//	U(r) = +infinity    for r < sigma
//	U(r) = -eps         for sigma <= r < lambda*sigma
//	U(r) = 0            for r >= lambda*sigma
type SquareWell struct {
	Eps, Sig, Lam float64
}

func init() {
	allocators[3] = func() Model { return new(SquareWell) }
}

// Init initialises the square-well potential from named parameters:
// "eps", "sigma", "lambda" (well width in units of sigma, default 1.5).
func (o *SquareWell) Init(prms fun.Prms) (err error) {
	o.Eps, o.Sig, o.Lam = 1.0, 1.0, 1.5
	for _, p := range prms {
		switch p.N {
		case "eps":
			o.Eps = p.V
		case "sigma":
			o.Sig = p.V
		case "lambda":
			o.Lam = p.V
		}
	}
	return
}

// Sigma returns the hard-core diameter.
func (o *SquareWell) Sigma() float64 { return o.Sig }

// Tail reports that the square well has compact support and needs no tail splitting.
func (o *SquareWell) Tail() *grid.TailSplitter { return nil }

// Eval tabulates U(r); the well has no smooth derivative (its Up would be a
// pair of delta functions at r=sigma and r=lambda*sigma), so Up is left zero
// inside the flat regions. The virial contribution of the two jumps is not
// computed analytically here.
func (o *SquareWell) Eval(r []float64) (U, Up []float64) {
	U = make([]float64, len(r))
	Up = make([]float64, len(r))
	rc := o.Lam * o.Sig
	for i, ri := range r {
		if ri < o.Sig {
			continue // hard core, flagged separately via the mesh's CoreMask
		}
		if ri < rc {
			U[i] = -o.Eps
		}
	}
	return
}
