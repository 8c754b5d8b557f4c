// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oz

// State holds one converged (or in-progress) correlation-function iterate
// at a given density. Every accepted iterate satisfies
// gamma = h - c exactly, by construction (see Set).
type State struct {
	Rho      float64
	C        []float64
	H        []float64
	Gamma    []float64
	Chat     []float64
	Hhat     []float64
	GammaHat []float64
}

// NewState allocates a zeroed state of the given length for density rho.
func NewState(n int, rho float64) *State {
	return &State{
		Rho:      rho,
		C:        make([]float64, n),
		H:        make([]float64, n),
		Gamma:    make([]float64, n),
		Chat:     make([]float64, n),
		Hhat:     make([]float64, n),
		GammaHat: make([]float64, n),
	}
}

// Set derives h = gamma + c on the whole grid, preserving the
// gamma = h - c invariant exactly.
func (o *State) Set(c, gamma []float64) {
	copy(o.C, c)
	copy(o.Gamma, gamma)
	for i := range o.H {
		o.H[i] = gamma[i] + c[i]
	}
}

// Clone returns a deep copy of the state.
func (o *State) Clone() *State {
	c := NewState(len(o.C), o.Rho)
	copy(c.C, o.C)
	copy(c.H, o.H)
	copy(c.Gamma, o.Gamma)
	copy(c.Chat, o.Chat)
	copy(c.Hhat, o.Hhat)
	copy(c.GammaHat, o.GammaHat)
	return c
}
