// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/ozsolve/grid"
)

// IPL implements the inverse power law potential U(r) = eps*(sigma/r)^lambda.
type IPL struct {
	Eps, Sig, Lam float64
}

func init() {
	allocators[1] = func() Model { return new(IPL) }
}

// Init initialises the IPL potential from named parameters: "eps", "sigma", "lambda".
func (o *IPL) Init(prms fun.Prms) (err error) {
	o.Eps, o.Sig = 1.0, 1.0
	o.Lam = 12.0
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
	if o.Lam <= 0 || math.IsNaN(o.Lam) {
		return chk.Err("IPL: lambda must be positive; got %g", o.Lam)
	}
	return
}

// Sigma returns 0: IPL has no hard core, so its reference diameter sigma is
// not reported here.
func (o *IPL) Sigma() float64 { return 0 }

// Tail reports that IPL decays as a power law and needs no tail splitting.
func (o *IPL) Tail() *grid.TailSplitter { return nil }

// Eval tabulates U(r) and Up(r) = -r*dU/dr = lambda*U(r).
func (o *IPL) Eval(r []float64) (U, Up []float64) {
	U = make([]float64, len(r))
	Up = make([]float64, len(r))
	for i, ri := range r {
		U[i] = o.Eps * math.Pow(o.Sig/ri, o.Lam)
		Up[i] = o.Lam * U[i]
	}
	return
}
