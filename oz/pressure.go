// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oz

import "math"

// ContactValue extrapolates g(sigma+) linearly from the two grid points just
// outside the hard core, the standard way to read off a contact value from a
// discretized g(r) that has no grid point sitting exactly on sigma.
func ContactValue(ctx *Context, st *State) float64 {
	if ctx.Sigma <= 0 {
		return 0
	}
	i0 := -1
	for i, r := range ctx.Mesh.R {
		if r >= ctx.Sigma {
			i0 = i
			break
		}
	}
	if i0 < 0 || i0+1 >= ctx.Mesh.N {
		return 0
	}
	g0 := 1 + st.H[i0]
	g1 := 1 + st.H[i0+1]
	r0, r1 := ctx.Mesh.R[i0], ctx.Mesh.R[i0+1]
	// linear extrapolation back to r=sigma
	slope := (g1 - g0) / (r1 - r0)
	return g0 + slope*(ctx.Sigma-r0)
}

// VirialPressure returns the reduced pressure via the virial route:
//
//	beta*P = rho*(1 + (2*pi*rho/3)*[contact term + continuous integral])
//
// The continuous integral uses Up(r) = -r*dU/dr tabulated by the potential
// catalogue; Up is identically zero inside a hard core, so the core itself
// contributes only through the analytic contact term below, preferred over
// a numerical spike in Up at the core boundary.
func VirialPressure(ctx *Context, st *State) float64 {
	rho := st.Rho
	mesh := ctx.Mesh

	var integral float64
	for i, r := range mesh.R {
		g := 1 + st.H[i]
		integral += r * r * ctx.Up[i] * g * mesh.Dr
	}

	var contact float64
	if ctx.Sigma > 0 {
		contact = ctx.Sigma * ctx.Sigma * ctx.Sigma * ContactValue(ctx, st)
	}

	return rho * (1 + (2*math.Pi*rho/3)*(integral+contact))
}

// DirectCorrelationIntegral returns the zero-wavevector limit of c's
// Fourier transform, chat(0) = integral of c(r) d^3r = 4*pi*sum_i r_i^2*c_i*Dr,
// computed directly in real space rather than by extrapolating the k-grid.
func DirectCorrelationIntegral(ctx *Context, st *State) float64 {
	var sum float64
	for i, r := range ctx.Mesh.R {
		sum += r * r * st.C[i] * ctx.Mesh.Dr
	}
	return 4 * math.Pi * sum
}

// InverseS0 returns 1/S(k->0) = 1 - rho*chat(0) for the given state.
func InverseS0(ctx *Context, st *State) float64 {
	return 1 - st.Rho*DirectCorrelationIntegral(ctx, st)
}

// CompressibilityPressure integrates the standard compressibility route to
// the reduced pressure along a density-ramp history:
//
//	beta*P_c(rho) = integral_0^rho [1 - rho'*chat(0;rho')] drho'
//
// via the trapezoidal rule over the (State.Rho, InverseS0) samples recorded
// at each density-ramp step.
func CompressibilityPressure(ctx *Context, history []*State) float64 {
	if len(history) == 0 {
		return 0
	}
	var integral float64
	prevRho := 0.0
	prevKappa := 1.0 // kappa(0) = 1 (ideal gas limit)
	for _, st := range history {
		kappa := InverseS0(ctx, st)
		integral += 0.5 * (kappa + prevKappa) * (st.Rho - prevRho)
		prevRho = st.Rho
		prevKappa = kappa
	}
	return integral
}

// InternalEnergy returns the reduced internal energy
// U/(N*k*T) = 2*pi*rho*integral r^2*U(r)*g(r) dr.
func InternalEnergy(ctx *Context, st *State) float64 {
	var integral float64
	for i, r := range ctx.Mesh.R {
		g := 1 + st.H[i]
		integral += r * r * ctx.U[i] * g * ctx.Mesh.Dr
	}
	return 2 * math.Pi * st.Rho * integral
}
