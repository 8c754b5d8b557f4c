// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid builds the conjugate radial/wavevector meshes used by the
// Ornstein-Zernike solver and performs spherically symmetric (3-D) Fourier
// transforms via a 1-D discrete sine transform on the half-integer grid.
package grid

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Mesh holds the radial grid r_i = (i+1/2)*Δr and its conjugate wavevector
// grid k_i = (i+1/2)*Δk, with Δr = rmax/N and Δk = π/rmax. The half-integer
// offset makes k_i*r_j = π(i+1/2)(j+1/2)/N, which is the pairing the sine
// transform in dst.go relies on.
type Mesh struct {
	N    int       // number of grid points
	Rmax float64   // outer radius of the real-space grid
	Dr   float64   // real-space spacing
	Dk   float64   // k-space spacing
	R    []float64 // r_i, i=0..N-1
	K    []float64 // k_i, i=0..N-1
}

// NewMesh allocates a mesh with N points out to rmax.
func NewMesh(N int, rmax float64) (o *Mesh, err error) {
	if N <= 1 {
		return nil, chk.Err("grid: N must be greater than 1; got %d", N)
	}
	if rmax <= 0 {
		return nil, chk.Err("grid: rmax must be positive; got %g", rmax)
	}
	o = new(Mesh)
	o.N = N
	o.Rmax = rmax
	o.Dr = rmax / float64(N)
	o.Dk = math.Pi / rmax
	o.R = make([]float64, N)
	o.K = make([]float64, N)
	for i := 0; i < N; i++ {
		o.R[i] = (float64(i) + 0.5) * o.Dr
		o.K[i] = (float64(i) + 0.5) * o.Dk
	}
	return
}

// Alloc returns a new zeroed vector with the mesh's length; a thin helper so
// every package that needs an N-length working array allocates consistently.
func (o *Mesh) Alloc() []float64 {
	return make([]float64, o.N)
}

// CoreMask returns a boolean mask that is true wherever r_i < sigma, i.e.
// inside a hard core of diameter sigma. Computed once at setup (oz.Context.Core)
// and passed to the closure module so it does not retest the inequality; the
// potential catalogue's Eval methods test r < sigma on their own.
func (o *Mesh) CoreMask(sigma float64) []bool {
	mask := make([]bool, o.N)
	for i, r := range o.R {
		mask[i] = r < sigma
	}
	return mask
}
