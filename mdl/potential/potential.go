// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package potential implements the catalogue of radially symmetric pair
// potentials used by the Ornstein-Zernike solver. Each entry maps an
// integer potential ID and a set of parameters to tabulated U(r) and its
// companion Up(r) = -r*dU/dr, the virial-pressure integrand factor.
package potential

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/ozsolve/grid"
)

// Model defines the interface every cataloguedpair potential satisfies.
type Model interface {
	Init(prms fun.Prms) error                 // initialises model from named parameters
	Eval(r []float64) (U, Up []float64)       // tabulates U(r) and Up(r) = -r dU/dr on the grid
	Sigma() float64                           // hard-core / reference diameter; 0 if the potential has no core
	Tail() *grid.TailSplitter                 // analytic long-range tail + its 3-D FT, nil if none is needed
}

// New returns a new potential model for the given catalogue ID.
func New(id int) (model Model, err error) {
	allocator, ok := allocators[id]
	if !ok {
		return nil, chk.Err("potential: id %d is not available in the catalogue", id)
	}
	return allocator(), nil
}

// allocators holds all available potentials; id => allocator.
var allocators = map[int]func() Model{}
