// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"

	"github.com/cpmech/ozsolve/oz"
)

// OutputFlag selects which quantity the entry point's (x,y) series carries.
type OutputFlag int

const (
	OutputSk    OutputFlag = iota // S(k)
	OutputInvSk                   // 1/S(k)
	OutputChat                    // chat(k)
	OutputGr                      // g(r)
)

// Suffix names the .dat file a single-series write under this flag gets,
// following the same "<Quantity>de<Variable>" convention as WriteFamily's
// three always-written files.
func (o OutputFlag) Suffix() string {
	switch o {
	case OutputGr:
		return "GdeR"
	case OutputInvSk:
		return "InvSdeK"
	case OutputChat:
		return "CdeK"
	default:
		return "SdeK"
	}
}

// Series returns the (x,y) pair named by flag from a converged run's final
// state: (r,g(r)) for OutputGr, (k,...) otherwise.
func Series(res *oz.Result, flag OutputFlag) (x, y []float64) {
	ctx, st := res.Ctx, res.Final
	mesh := ctx.Mesh
	n := mesh.N
	x = make([]float64, n)
	y = make([]float64, n)
	switch flag {
	case OutputGr:
		copy(x, mesh.R)
		for i := range y {
			y[i] = 1 + st.H[i]
		}
	case OutputSk:
		copy(x, mesh.K)
		for i := range y {
			y[i] = 1 / (1 - st.Rho*st.Chat[i])
		}
	case OutputInvSk:
		copy(x, mesh.K)
		for i := range y {
			y[i] = 1 - st.Rho*st.Chat[i]
		}
	case OutputChat:
		copy(x, mesh.K)
		copy(y, st.Chat)
	}
	return
}

// AllSeries bundles the three series always produced together, regardless
// of which single one a given .dat file asked for.
type AllSeries struct {
	R, G []float64
	K, S []float64
	Chat []float64
}

// ComputeAllSeries builds (r,g), (k,S) and (k,chat) together from one run.
func ComputeAllSeries(res *oz.Result) *AllSeries {
	r, g := Series(res, OutputGr)
	k, s := Series(res, OutputSk)
	_, chat := Series(res, OutputChat)
	return &AllSeries{R: r, G: g, K: k, S: s, Chat: chat}
}

// Plot draws g(r) and S(k) with matplotlib, skipping either panel when its
// args string is empty. Both panels get a dashed reference line at y=1, the
// value both g(r) and S(k) approach asymptotically, sampled with
// utl.LinSpace over the panel's x-range.
func Plot(all *AllSeries, rmax, kmax float64, npts int, argsG, argsS, label string) {
	if argsG != "" {
		plt.Subplot(2, 1, 1)
		plt.Plot(all.R, all.G, io.Sf("%s, label='%s', clip_on=0", argsG, label))
		rr := utl.LinSpace(all.R[0], rmax, npts)
		plt.Plot(rr, utl.LinSpace(1, 1, npts), "'k--'")
		plt.Gll("$r$", "$g(r)$", "")
	}
	if argsS != "" {
		plt.Subplot(2, 1, 2)
		plt.Plot(all.K, all.S, io.Sf("%s, label='%s', clip_on=0", argsS, label))
		kk := utl.LinSpace(all.K[0], kmax, npts)
		plt.Plot(kk, utl.LinSpace(1, 1, npts), "'k--'")
		plt.Gll("$k$", "$S(k)$", "")
	}
}
