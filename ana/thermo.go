// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/ozsolve/oz"
)

// Thermo collects the reduced thermodynamic quantities reported alongside
// g(r), c(r) and S(k) at the end of a run: the two routes to the pressure
// (their disagreement is the diagnostic for a closure's thermodynamic
// inconsistency) and the internal energy.
type Thermo struct {
	Rho            float64
	ContactValue   float64 // g(sigma+), 0 if the potential has no hard core
	VirialPressure float64
	CompressPressure float64
	InternalEnergy float64
	InverseS0      float64 // 1/S(k->0) = 1-rho*chat(0)
}

// ComputeThermo evaluates every Thermo field from a converged run.
func ComputeThermo(res *oz.Result) *Thermo {
	ctx, st := res.Ctx, res.Final
	return &Thermo{
		Rho:              st.Rho,
		ContactValue:     oz.ContactValue(ctx, st),
		VirialPressure:   oz.VirialPressure(ctx, st),
		CompressPressure: oz.CompressibilityPressure(ctx, res.History),
		InternalEnergy:   oz.InternalEnergy(ctx, st),
		InverseS0:        oz.InverseS0(ctx, st),
	}
}
