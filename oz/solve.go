// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oz

import (
	"math"

	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/ozsolve/closure"
	"github.com/cpmech/ozsolve/grid"
	"github.com/cpmech/ozsolve/inp"
	"github.com/cpmech/ozsolve/mdl/potential"
)

// Solve is the library-level entry point: given a fully-populated Config it
// builds the mesh, potential and closure, runs the density ramp (or the RY
// consistency search, if the closure is RY), and returns the converged
// Result.
func Solve(cfg *inp.Config) (res *Result, err error) {
	mesh, err := grid.NewMesh(cfg.N, cfg.Rmax)
	if err != nil {
		return nil, err
	}

	pot, err := potential.New(cfg.PotentialID)
	if err != nil {
		return nil, err
	}
	beta := 1.0 / cfg.T
	sigma1 := cfg.Sigma1
	if sigma1 == 0 {
		sigma1 = 1
	}
	prms := fun.Prms{
		&fun.Prm{N: "eps", V: 1.0},
		&fun.Prm{N: "sigma", V: sigma1},
		&fun.Prm{N: "lambda", V: cfg.LambdaR},
		&fun.Prm{N: "lambda_a", V: cfg.LambdaA},
		&fun.Prm{N: "lambda_r", V: cfg.LambdaR},
		&fun.Prm{N: "K", V: 1.0},
		&fun.Prm{N: "T2", V: cfg.T2},
		&fun.Prm{N: "beta", V: beta},
	}
	if err = pot.Init(prms); err != nil {
		return nil, err
	}

	clo, err := closure.New(cfg.ClosureID)
	if err != nil {
		return nil, err
	}

	sig := pot.Sigma()
	if sig == 0 {
		sig = sigma1
	}
	rho := 6 * cfg.Phi / (math.Pi * sig * sig * sig)

	ctx, err := NewContext(mesh, pot, clo, beta, rho, cfg.NRho, cfg.EZ, cfg.Xnu, cfg.MaxIter)
	if err != nil {
		return nil, err
	}

	if ry, ok := clo.(*closure.RY); ok {
		ry.Alpha = cfg.AlphaInit
		out, errC := SolveRYConsistency(ctx)
		if errC != nil {
			return nil, errC
		}
		return out.Run, nil
	}

	driver := &Driver{}
	return driver.Run(ctx)
}
