// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package oz implements the self-consistent Picard-Ng solver for the
// Ornstein-Zernike equation: the density ramp, the inner fixed-point loop,
// and the Rogers-Young consistency outer loop.
package oz

import (
	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ozsolve/closure"
	"github.com/cpmech/ozsolve/grid"
	"github.com/cpmech/ozsolve/mdl/potential"
)

// Context bundles everything one solve needs that does not change once the
// solve starts: the grid, the tabulated potential, the closure, and the
// physical/control parameters, in place of a set of global variables
// (sigma, alpha, EZ, rho, dr, r, q, U, Up, xnu). A Context is built once and
// never mutated after NewContext returns; iteration state lives in State.
type Context struct {
	Mesh      *grid.Mesh
	Potential potential.Model
	Closure   closure.Model
	U, Up     []float64 // tabulated on Mesh.R
	Core      []bool    // true where Mesh.R[i] < Sigma
	Sigma     float64   // hard-core diameter, 0 if none
	Beta      float64   // 1/T
	RhoTarget float64   // target number density
	NRho      int       // density-ramp steps
	EZ        float64   // convergence tolerance on max|gamma_out-gamma_in|
	Xnu       float64   // legacy Picard damping parameter
	MaxIter   int       // iteration cap per density step
}

// NewContext builds a Context from a grid, a potential model and the
// control parameters. U, Up and the core mask are tabulated once here.
func NewContext(mesh *grid.Mesh, pot potential.Model, clo closure.Model, beta, rhoTarget float64, nrho int, ez, xnu float64, maxIter int) (ctx *Context, err error) {
	if mesh == nil || pot == nil || clo == nil {
		return nil, chk.Err("oz: mesh, potential and closure must all be non-nil")
	}
	if rhoTarget <= 0 {
		return nil, chk.Err("oz: target density must be positive; got %g", rhoTarget)
	}
	if nrho <= 0 {
		return nil, chk.Err("oz: nrho must be positive; got %d", nrho)
	}
	U, Up := pot.Eval(mesh.R)
	ctx = &Context{
		Mesh:      mesh,
		Potential: pot,
		Closure:   clo,
		U:         U,
		Up:        Up,
		Sigma:     pot.Sigma(),
		Beta:      beta,
		RhoTarget: rhoTarget,
		NRho:      nrho,
		EZ:        ez,
		Xnu:       xnu,
		MaxIter:   maxIter,
	}
	if ctx.Sigma > 0 {
		ctx.Core = mesh.CoreMask(ctx.Sigma)
	}
	return
}
