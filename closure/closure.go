// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package closure implements the closure relations (HNC, PY, Rogers-Young)
// that relate the direct correlation function c(r) to the indirect
// correlation function gamma(r) = h(r) - c(r) and the pair potential U(r).
// Every closure is pointwise and stateless: c(r_i) depends only on
// gamma(r_i), U(r_i), beta and (for RY) alpha.
package closure

import "github.com/cpmech/gosl/chk"

// Model defines a pointwise closure relation. r is passed alongside
// gamma/U/beta because Rogers-Young's mixing function f(r) = 1-exp(-alpha*r)
// depends on r explicitly, not only on the local correlation values.
type Model interface {
	C(r, gamma, U, beta float64) float64 // returns c(r) at a single grid point
}

// New returns a new closure model by name: "HNC", "PY" or "RY".
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("closure: %q is not available; want HNC, PY or RY", name)
	}
	return allocator(), nil
}

// allocators holds all available closures; name => allocator.
var allocators = map[string]func() Model{}

// Apply evaluates a closure on the whole grid, overriding the hard-core
// region (where core[i] is true) to c(r) = -1 - gamma(r), which enforces
// h(r) = -1 and g(r) = 0 exactly on those grid points regardless of what the
// closure formula alone would produce for an infinite U.
func Apply(mdl Model, r, gamma, U []float64, beta float64, core []bool) []float64 {
	c := make([]float64, len(gamma))
	for i := range gamma {
		if core != nil && core[i] {
			c[i] = -1 - gamma[i]
			continue
		}
		c[i] = mdl.C(r[i], gamma[i], U[i], beta)
	}
	return c
}
