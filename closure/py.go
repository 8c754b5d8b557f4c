// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import "math"

// PY implements the Percus-Yevick closure: c = (exp(-beta*U)-1)*(1+gamma).
type PY struct{}

func init() {
	allocators["PY"] = func() Model { return new(PY) }
}

// C returns c(r) for the PY closure.
func (o *PY) C(r, gamma, U, beta float64) float64 {
	return (math.Exp(-beta*U) - 1) * (1 + gamma)
}
