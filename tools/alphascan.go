// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

package main

import (
	"flag"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/ozsolve/closure"
	"github.com/cpmech/ozsolve/grid"
	"github.com/cpmech/ozsolve/mdl/potential"
	"github.com/cpmech/ozsolve/oz"
)

func main() {

	// input data
	potID := 7
	phi := 0.3
	N := 1024
	rmax := 40.0
	aLo, aHi, steps := 0.1, 5.0, 20

	// parse flags
	flag.IntVar(&potID, "potential", potID, "potential catalogue id")
	flag.Float64Var(&phi, "volfactor", phi, "packing fraction phi")
	flag.IntVar(&N, "nodes", N, "number of radial grid nodes")
	flag.Float64Var(&rmax, "rmax", rmax, "outer radius")
	flag.Float64Var(&aLo, "alo", aLo, "alpha sweep lower bound")
	flag.Float64Var(&aHi, "ahi", aHi, "alpha sweep upper bound")
	flag.IntVar(&steps, "steps", steps, "number of alpha intervals (steps+1 samples)")
	flag.Parse()

	mesh, err := grid.NewMesh(N, rmax)
	if err != nil {
		io.Pfred("%v\n", err)
		return
	}
	pot, err := potential.New(potID)
	if err != nil {
		io.Pfred("%v\n", err)
		return
	}
	if err = pot.Init(nil); err != nil {
		io.Pfred("%v\n", err)
		return
	}
	sig := pot.Sigma()
	if sig == 0 {
		sig = 1
	}
	rho := 6 * phi / (3.141592653589793 * sig * sig * sig)

	ry := &closure.RY{Alpha: aLo}
	ctx, err := oz.NewContext(mesh, pot, ry, 1.0, rho, 6, 1e-8, 14.0, 400)
	if err != nil {
		io.Pfred("%v\n", err)
		return
	}
	driver := &oz.Driver{}

	io.Pf("%12s %16s\n", "alpha", "Pv-Pc")
	for i := 0; i <= steps; i++ {
		alpha := aLo + (aHi-aLo)*float64(i)/float64(steps)
		ry.Alpha = alpha
		res, err := driver.Run(ctx)
		if err != nil {
			io.Pf("%12.4f %16s (%v)\n", alpha, "failed", err)
			continue
		}
		pv := oz.VirialPressure(ctx, res.Final)
		pc := oz.CompressibilityPressure(ctx, res.History)
		io.Pf("%12.4f %16.6e\n", alpha, pv-pc)
	}
}
