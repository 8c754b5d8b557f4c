// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/ozsolve/grid"
)

// Hertzian implements the soft, finite-at-contact Hertzian potential:
//
//	U(r) = eps*(1-r/sigma)^(5/2)  for r < sigma
//	U(r) = 0                      for r >= sigma
type Hertzian struct {
	Eps, Sig float64
}

func init() {
	allocators[13] = func() Model { return new(Hertzian) }
}

// Init initialises the Hertzian potential from named parameters: "eps", "sigma".
func (o *Hertzian) Init(prms fun.Prms) (err error) {
	o.Eps, o.Sig = 1.0, 1.0
	for _, p := range prms {
		switch p.N {
		case "eps":
			o.Eps = p.V
		case "sigma":
			o.Sig = p.V
		}
	}
	return
}

// Sigma returns 0, not the interaction range. Hertzian is finite at contact,
// so the OZ driver does not mask it as a hard core even though the name
// "sigma" marks the potential's cutoff.
func (o *Hertzian) Sigma() float64 { return 0 }

// Tail reports that Hertzian has compact support and needs no tail splitting.
func (o *Hertzian) Tail() *grid.TailSplitter { return nil }

// Eval tabulates U(r) and Up(r) = -r*dU/dr = (5/2)*eps*(r/sigma)*(1-r/sigma)^(3/2).
func (o *Hertzian) Eval(r []float64) (U, Up []float64) {
	U = make([]float64, len(r))
	Up = make([]float64, len(r))
	for i, ri := range r {
		if ri >= o.Sig {
			continue
		}
		x := 1 - ri/o.Sig
		U[i] = o.Eps * math.Pow(x, 2.5)
		Up[i] = 2.5 * o.Eps * (ri / o.Sig) * math.Pow(x, 1.5)
	}
	return
}
