// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/ozsolve/ana"
	"github.com/cpmech/ozsolve/inp"
	"github.com/cpmech/ozsolve/oz"
	"github.com/cpmech/ozsolve/report"
)

func main() {
	os.Exit(run())
}

// run drives one solve from CLI flags and returns the process exit code:
// 0 success, 1 bad arguments, 2 non-convergence.
func run() (code int) {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			code = 1
		}
	}()

	closureFlag := flag.String("closure", "HNC", "closure relation: HNC, PY or RY")
	potentialFlag := flag.Int("potential", 7, "potential catalogue id")
	volfactorFlag := flag.Float64("volfactor", 0.3, "packing fraction phi")
	tempFlag := flag.Float64("temp", 1.0, "reduced temperature T")
	temp2Flag := flag.Float64("temp2", 1.0, "secondary energy scale T2")
	lambdaAFlag := flag.Float64("lambda_a", 1.8, "attractive range lambda_a")
	lambdaRFlag := flag.Float64("lambda_r", 4.0, "repulsive range/exponent lambda_r")
	nodesFlag := flag.Int("nodes", 4096, "number of radial grid nodes")
	knodesFlag := flag.Int("knodes", 0, "number of wavevector grid nodes, 0 to match --nodes")
	configFlag := flag.String("config", "", "optional JSON config overriding the flags above")
	outFlag := flag.String("out", ".", "output directory for the .dat files")
	plotFlag := flag.Bool("plot", false, "print a short summary table instead of writing files")
	singleFlag := flag.Bool("single", false, "write only the series selected by --outputFlag instead of all three")
	outputFlagFlag := flag.Int("outputFlag", 0, "single-series selector: 0=S(k) 1=1/S(k) 2=chat(k) 3=g(r), used with --single")
	flag.Parse()

	cfg := new(inp.Config)
	cfg.SetDefault()
	if *configFlag != "" {
		var err error
		cfg, err = inp.ReadConfig(*configFlag)
		if err != nil {
			io.PfRed("%v\n", err)
			return 1
		}
	} else {
		cfg.N = *nodesFlag
		cfg.ClosureID = *closureFlag
		cfg.PotentialID = *potentialFlag
		cfg.Phi = *volfactorFlag
		cfg.T = *tempFlag
		cfg.T2 = *temp2Flag
		cfg.LambdaA = *lambdaAFlag
		cfg.LambdaR = *lambdaRFlag
		cfg.OutputFlag = *outputFlagFlag
	}
	if *knodesFlag != 0 && *knodesFlag != cfg.N {
		io.PfRed("knodes (%d) must match nodes (%d): the solver uses one conjugate grid\n", *knodesFlag, cfg.N)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		io.PfRed("%v\n", err)
		return 1
	}

	res, err := oz.Solve(cfg)
	if err != nil {
		io.PfRed("%v\n", err)
		var convErr *oz.ConvergenceError
		if errors.As(err, &convErr) {
			return 2
		}
		return 1
	}

	if *plotFlag {
		th := ana.ComputeThermo(res)
		io.Pf("rho=%g  g(sigma+)=%g  Pv=%g  Pc=%g  U/NkT=%g\n",
			th.Rho, th.ContactValue, th.VirialPressure, th.CompressPressure, th.InternalEnergy)
		return 0
	}
	if *singleFlag {
		which := ana.OutputFlag(cfg.OutputFlag)
		x, y := ana.Series(res, which)
		report.WriteSeries(io.Sf("%s/%s_%s.dat", *outFlag, cfg.ClosureID, which.Suffix()), x, y)
		return 0
	}
	report.WriteFamily(*outFlag, cfg.ClosureID, ana.ComputeAllSeries(res))
	return 0
}
