// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import "math"

// RY implements the Rogers-Young interpolating closure:
//
//	f(r)  = 1 - exp(-alpha*r)
//	g(r)  = exp(-beta*U) * (1 + (exp(gamma*f(r))-1)/f(r))
//	c(r)  = g(r) - 1 - gamma(r)
//
// As alpha->0, f(r)->0 and RY reduces to PY; as alpha->infinity, f(r)->1 and
// RY reduces to HNC.
type RY struct {
	Alpha float64
}

func init() {
	allocators["RY"] = func() Model { return &RY{Alpha: 1.0} }
}

// C returns c(r) for the RY(alpha) closure.
func (o *RY) C(r, gamma, U, beta float64) float64 {
	f := 1 - math.Exp(-o.Alpha*r)
	var mix float64
	if f < 1e-8 {
		// f(r) -> 0: (exp(gamma*f)-1)/f -> gamma, the PY limit, avoiding 0/0.
		mix = gamma
	} else {
		mix = (math.Exp(gamma*f) - 1) / f
	}
	g := math.Exp(-beta*U) * (1 + mix)
	return g - 1 - gamma
}
