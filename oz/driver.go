// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oz

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ozsolve/closure"
	"github.com/cpmech/ozsolve/grid"
	"github.com/cpmech/ozsolve/ng"
)

// maxHalvings bounds the density-step-halving retry on a failed step.
const maxHalvings = 3

// Result is what one full density ramp produces: the converged state at the
// target density, plus the per-step history needed by the compressibility
// route to pressure (CompressibilityPressure integrates over it).
type Result struct {
	Ctx     *Context
	Final   *State
	History []*State // one converged State per density-ramp step, in order
}

// Driver runs the Picard-Ng fixed point at each step of the density ramp.
type Driver struct{}

// Run advances the density ramp from rho=0 to ctx.RhoTarget in ctx.NRho
// steps, reusing each converged gamma as the next step's initial guess
// (continuation).
func (o *Driver) Run(ctx *Context) (res *Result, err error) {
	cur := NewState(ctx.Mesh.N, 0)
	res = &Result{Ctx: ctx}
	for s := 1; s <= ctx.NRho; s++ {
		rhoS := (float64(s) / float64(ctx.NRho)) * ctx.RhoTarget
		cur, err = o.advanceTo(ctx, cur, rhoS, maxHalvings)
		if err != nil {
			return nil, &ConvergenceError{Err: chk.Err("oz: density ramp failed at step %d/%d (rho=%g): %v", s, ctx.NRho, rhoS, err)}
		}
		res.History = append(res.History, cur.Clone())
	}
	res.Final = cur
	return res, nil
}

// advanceTo tries to converge directly at rhoNew starting from cur. On
// failure (iteration cap or spinodal crossing) it recurses through a
// halved density step, up to halvings times, before giving up.
func (o *Driver) advanceTo(ctx *Context, cur *State, rhoNew float64, halvings int) (*State, error) {
	next, err := o.innerLoop(ctx, cur, rhoNew)
	if err == nil {
		return next, nil
	}
	if halvings <= 0 {
		return nil, err
	}
	mid := cur.Rho + (rhoNew-cur.Rho)/2
	midState, err2 := o.advanceTo(ctx, cur, mid, halvings-1)
	if err2 != nil {
		return nil, err2
	}
	return o.advanceTo(ctx, midState, rhoNew, halvings-1)
}

// innerLoop runs the Picard-Ng fixed point at a single fixed density:
// closure, forward transform, OZ relation, inverse transform, residual
// check, then Ng-accelerated update of the next trial gamma.
func (o *Driver) innerLoop(ctx *Context, prev *State, rho float64) (*State, error) {
	mesh := ctx.Mesh
	gammaIn := make([]float64, mesh.N)
	copy(gammaIn, prev.Gamma)

	buf := ng.NewBuffer(ng.Capacity)
	tail := ctx.Potential.Tail()

	var lastResid float64
	for iter := 0; iter < ctx.MaxIter; iter++ {

		// 1. closure
		c := closure.Apply(ctx.Closure, mesh.R, gammaIn, ctx.U, ctx.Beta, ctx.Core)

		// 2. forward transform, with tail splitting for long-range potentials
		var chat []float64
		if tail != nil {
			chat = grid.Forward(mesh, tail.Split(mesh, c))
			chat = tail.Merge(mesh, chat)
		} else {
			chat = grid.Forward(mesh, c)
		}

		// 3. OZ relation in k-space
		gammaHat := make([]float64, mesh.N)
		for i, chi := range chat {
			denom := 1 - rho*chi
			if denom <= 0 {
				return nil, &ConvergenceError{Err: chk.Err("oz: spinodal crossing at rho=%g, k=%g (1-rho*chat=%g)", rho, mesh.K[i], denom)}
			}
			gammaHat[i] = rho * chi * chi / denom
		}

		// 4. inverse transform
		gammaOut := grid.Inverse(mesh, gammaHat)

		// 5. residual / convergence check
		var maxAbs float64
		d := make([]float64, mesh.N)
		for i := range d {
			d[i] = gammaOut[i] - gammaIn[i]
			if a := math.Abs(d[i]); a > maxAbs {
				maxAbs = a
			}
		}
		lastResid = maxAbs

		if maxAbs < ctx.EZ {
			st := NewState(mesh.N, rho)
			st.Set(c, gammaOut)
			st.Chat = chat
			st.GammaHat = gammaHat
			return st, nil
		}
		// 6. Ng acceleration
		buf.Push(gammaIn, gammaOut)
		next, _ := ng.Accelerate(mesh.R, mesh.Dr, buf, ctx.Xnu)
		gammaIn = next
	}
	return nil, &ConvergenceError{Err: chk.Err("oz: failed to converge at rho=%g within %d iterations (last max|delta gamma|=%g, EZ=%g)", rho, ctx.MaxIter, lastResid, ctx.EZ)}
}
