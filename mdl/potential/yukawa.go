// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/ozsolve/grid"
)

// yukawaUp returns Up(r) = -r*dU/dr for a single Yukawa term U(r) = -K*exp(-lam*r)/r.
func yukawaUp(K, lam, r float64) float64 {
	return -K * math.Exp(-lam*r) * (lam*r + 1) / r
}

// yukawaHat returns the analytic 3-D Fourier transform of -K*exp(-lam*r)/r,
// namely -4*pi*K/(k^2+lam^2), used to build the TailSplitter.
func yukawaHat(K, lam, k float64) float64 {
	return -4 * math.Pi * K / (k*k + lam*lam)
}

// Yukawa implements the single attractive Yukawa potential U(r) = -K*exp(-lambda*r)/r,
// the degenerate Kr=0 case of DoubleYukawa, kept separately because it is
// the standard sticky-sphere reference used to sanity-check tail splitting.
type Yukawa struct {
	K, Lam, Sig float64
	beta        float64
}

func init() {
	allocators[5] = func() Model { return new(Yukawa) }
}

// Init initialises the Yukawa potential from named parameters: "K", "lambda",
// "sigma" (hard core), "beta" (1/T, needed to build the c(r) tail).
func (o *Yukawa) Init(prms fun.Prms) (err error) {
	o.K, o.Lam, o.Sig, o.beta = 1.0, 1.8, 1.0, 1.0
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "lambda":
			o.Lam = p.V
		case "sigma":
			o.Sig = p.V
		case "beta":
			o.beta = p.V
		}
	}
	return
}

// Sigma returns the hard-core diameter.
func (o *Yukawa) Sigma() float64 { return o.Sig }

// Tail returns the analytic tail of c(r), approximated at large r by -beta*U(r).
func (o *Yukawa) Tail() *grid.TailSplitter {
	return &grid.TailSplitter{
		Tail:    func(r float64) float64 { return o.beta * o.K * math.Exp(-o.Lam*r) / r },
		TailHat: func(k float64) float64 { return -o.beta * yukawaHat(o.K, o.Lam, k) },
	}
}

// Eval tabulates U(r) and Up(r) outside the hard core.
func (o *Yukawa) Eval(r []float64) (U, Up []float64) {
	U = make([]float64, len(r))
	Up = make([]float64, len(r))
	for i, ri := range r {
		if ri < o.Sig {
			continue
		}
		U[i] = -o.K * math.Exp(-o.Lam*ri) / ri
		Up[i] = yukawaUp(o.K, o.Lam, ri)
	}
	return
}
