// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package closure

import "math"

// HNC implements the hypernetted-chain closure: c = exp(-beta*U+gamma) - gamma - 1.
type HNC struct{}

func init() {
	allocators["HNC"] = func() Model { return new(HNC) }
}

// C returns c(r) for the HNC closure.
func (o *HNC) C(r, gamma, U, beta float64) float64 {
	return math.Exp(-beta*U+gamma) - gamma - 1
}
