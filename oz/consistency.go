// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oz

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ozsolve/closure"
)

const (
	alphaLoDefault  = 0.1
	alphaHiDefault  = 5.0
	alphaLoWide     = 0.01
	alphaHiWide     = 20.0
	alphaBracketTol = 1e-4
	alphaMaxIter    = 60
)

// ConsistencyResult is the outcome of the Rogers-Young consistency search.
type ConsistencyResult struct {
	Alpha      float64
	Delta      float64 // Pvirial - Pcompressibility at Alpha
	Run        *Result
	BestEffort bool // true if no sign change was found even after widening the bracket
}

// deltaAt sets the trial alpha on ry, runs the full density ramp, and
// returns the virial/compressibility pressure mismatch at rho_target.
func deltaAt(ctx *Context, ry *closure.RY, driver *Driver, alpha float64) (float64, *Result, error) {
	ry.Alpha = alpha
	res, err := driver.Run(ctx)
	if err != nil {
		return 0, nil, err
	}
	pv := VirialPressure(ctx, res.Final)
	pc := CompressibilityPressure(ctx, res.History)
	return pv - pc, res, nil
}

// SolveRYConsistency bisects alpha so the virial and compressibility routes
// to the pressure agree. ctx.Closure must be a *closure.RY; its Alpha field
// is mutated in place as trial values are swept, so ctx must not be shared
// with a concurrent solve.
//
// If [alphaLoDefault, alphaHiDefault] does not bracket a sign change in
// Delta, the bracket is widened once to [alphaLoWide, alphaHiWide] before
// giving up and reporting a best-effort alpha, the endpoint with the
// smaller |Delta|.
func SolveRYConsistency(ctx *Context) (*ConsistencyResult, error) {
	ry, ok := ctx.Closure.(*closure.RY)
	if !ok {
		return nil, chk.Err("oz: RY consistency search requires ctx.Closure to be *closure.RY, got %T", ctx.Closure)
	}
	driver := &Driver{}

	lo, hi := alphaLoDefault, alphaHiDefault
	dLo, resLo, err := deltaAt(ctx, ry, driver, lo)
	if err != nil {
		return nil, &ConvergenceError{Err: chk.Err("oz: RY consistency: failed evaluating alpha_lo=%g: %v", lo, err)}
	}
	dHi, resHi, err := deltaAt(ctx, ry, driver, hi)
	if err != nil {
		return nil, &ConvergenceError{Err: chk.Err("oz: RY consistency: failed evaluating alpha_hi=%g: %v", hi, err)}
	}

	if dLo*dHi > 0 {
		lo, hi = alphaLoWide, alphaHiWide
		dLo, resLo, err = deltaAt(ctx, ry, driver, lo)
		if err != nil {
			return nil, &ConvergenceError{Err: chk.Err("oz: RY consistency: failed evaluating widened alpha_lo=%g: %v", lo, err)}
		}
		dHi, resHi, err = deltaAt(ctx, ry, driver, hi)
		if err != nil {
			return nil, &ConvergenceError{Err: chk.Err("oz: RY consistency: failed evaluating widened alpha_hi=%g: %v", hi, err)}
		}
		if dLo*dHi > 0 {
			if math.Abs(dLo) <= math.Abs(dHi) {
				return &ConsistencyResult{Alpha: lo, Delta: dLo, Run: resLo, BestEffort: true}, nil
			}
			return &ConsistencyResult{Alpha: hi, Delta: dHi, Run: resHi, BestEffort: true}, nil
		}
	}

	var mid, dMid float64
	var resMid *Result
	for iter := 0; iter < alphaMaxIter && hi-lo > alphaBracketTol; iter++ {
		mid = 0.5 * (lo + hi)
		dMid, resMid, err = deltaAt(ctx, ry, driver, mid)
		if err != nil {
			return nil, &ConvergenceError{Err: chk.Err("oz: RY consistency: failed evaluating alpha=%g: %v", mid, err)}
		}
		if dMid == 0 {
			break
		}
		if (dMid > 0) == (dLo > 0) {
			lo, dLo = mid, dMid
		} else {
			hi, dHi = mid, dMid
		}
	}
	if resMid == nil {
		// the bracket was already within tolerance before any midpoint
		// evaluation ran; fall back to the lo endpoint's run.
		mid, dMid, resMid = lo, dLo, resLo
	}
	return &ConsistencyResult{Alpha: mid, Delta: dMid, Run: resMid}, nil
}
