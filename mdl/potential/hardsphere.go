// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package potential

import (
	"github.com/cpmech/gosl/fun"

	"github.com/cpmech/ozsolve/grid"
)

// HardSphere implements the hard-sphere potential: U(r) = +infinity for
// r < sigma, 0 otherwise. The core region is handled by the grid's
// CoreMask and the closure module, not by a tabulated +Inf value.
type HardSphere struct {
	Sig float64
}

func init() {
	allocators[7] = func() Model { return new(HardSphere) }
}

// Init initialises the hard-sphere diameter from the "sigma" parameter.
func (o *HardSphere) Init(prms fun.Prms) (err error) {
	o.Sig = 1.0
	for _, p := range prms {
		if p.N == "sigma" {
			o.Sig = p.V
		}
	}
	return
}

// Sigma returns the hard-core diameter.
func (o *HardSphere) Sigma() float64 { return o.Sig }

// Tail reports that the hard sphere has no long-range part.
func (o *HardSphere) Tail() *grid.TailSplitter { return nil }

// Eval tabulates U(r) and Up(r); both are identically zero outside the core,
// and the core itself is represented as a mask elsewhere, not as a finite
// value here. The contact delta-function contribution to the pressure is
// added analytically by oz.VirialPressure via oz.ContactValue instead.
func (o *HardSphere) Eval(r []float64) (U, Up []float64) {
	return make([]float64, len(r)), make([]float64, len(r))
}
