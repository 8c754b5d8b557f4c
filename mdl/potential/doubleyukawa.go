// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/ozsolve/grid"
)

// DoubleYukawa implements the competing short-range attraction / long-range
// repulsion potential:
//
//	U(r) = -Ka*exp(-lambda_a*r)/r + Kr*exp(-lambda_r*r)/r
//
// The catalogue parameters T and T2 are resolved here as Ka=1 (unit
// attraction depth; the overall energy scale already enters through
// beta=1/T in the closure) and Kr=T2 (repulsion strength relative to the
// attraction); see DESIGN.md for the reasoning behind this mapping.
type DoubleYukawa struct {
	Ka, Kr, LamA, LamR, Sig float64
	beta                    float64
}

func init() {
	allocators[4] = func() Model { return new(DoubleYukawa) }
}

// Init initialises the potential from named parameters: "T2" (-> Kr),
// "lambda_a", "lambda_r", "sigma", "beta" (1/T).
func (o *DoubleYukawa) Init(prms fun.Prms) (err error) {
	o.Ka, o.Kr, o.LamA, o.LamR, o.Sig, o.beta = 1.0, 1.0, 1.8, 4.0, 1.0, 1.0
	for _, p := range prms {
		switch p.N {
		case "T2":
			o.Kr = p.V
		case "lambda_a":
			o.LamA = p.V
		case "lambda_r":
			o.LamR = p.V
		case "sigma":
			o.Sig = p.V
		case "beta":
			o.beta = p.V
		}
	}
	return
}

// Sigma returns the hard-core diameter.
func (o *DoubleYukawa) Sigma() float64 { return o.Sig }

// Tail returns the analytic tail of c(r), approximated at large r by -beta*U(r).
func (o *DoubleYukawa) Tail() *grid.TailSplitter {
	return &grid.TailSplitter{
		Tail: func(r float64) float64 {
			return o.beta * (o.Ka*math.Exp(-o.LamA*r) - o.Kr*math.Exp(-o.LamR*r)) / r
		},
		TailHat: func(k float64) float64 {
			return -o.beta * (yukawaHat(o.Ka, o.LamA, k) - yukawaHat(o.Kr, o.LamR, k))
		},
	}
}

// Eval tabulates U(r) and Up(r) outside the hard core.
func (o *DoubleYukawa) Eval(r []float64) (U, Up []float64) {
	U = make([]float64, len(r))
	Up = make([]float64, len(r))
	for i, ri := range r {
		if ri < o.Sig {
			continue
		}
		U[i] = -o.Ka*math.Exp(-o.LamA*ri)/ri + o.Kr*math.Exp(-o.LamR*ri)/ri
		Up[i] = yukawaUp(o.Ka, o.LamA, ri) - yukawaUp(o.Kr, o.LamR, ri)
	}
	return
}
