// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ng implements the Ng acceleration operator: a least-squares
// projection over the last few Picard iterates that speeds up convergence
// of the Ornstein-Zernike fixed point. It is stateless as an operator (the
// math in Accelerate depends only on its arguments); the Buffer type holds
// the small amount of history the operator needs.
package ng

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Capacity is the default number of past iterates Ng keeps.
const Capacity = 3

// Buffer is a fixed-capacity FIFO of the last few (gammaIn, gammaOut) pairs
// for one density step. It is created fresh per density step and discarded
// at the end of that step; nothing aliases the solver's own iterate state.
type Buffer struct {
	m        int
	gammaIn  [][]float64 // oldest first
	gammaOut [][]float64
}

// NewBuffer allocates an empty buffer holding up to m pairs.
func NewBuffer(m int) *Buffer {
	if m <= 0 {
		m = Capacity
	}
	return &Buffer{m: m}
}

// Push records a new (gammaIn, gammaOut) pair, evicting the oldest one once
// the buffer is full.
func (o *Buffer) Push(gammaIn, gammaOut []float64) {
	in := make([]float64, len(gammaIn))
	out := make([]float64, len(gammaOut))
	copy(in, gammaIn)
	copy(out, gammaOut)
	o.gammaIn = append(o.gammaIn, in)
	o.gammaOut = append(o.gammaOut, out)
	if len(o.gammaIn) > o.m {
		o.gammaIn = o.gammaIn[1:]
		o.gammaOut = o.gammaOut[1:]
	}
}

// Len returns the number of pairs currently stored.
func (o *Buffer) Len() int { return len(o.gammaIn) }

// residual returns d^(k) = gammaOut - gammaIn for the k-th stored pair
// (0 = oldest).
func (o *Buffer) residual(k int) []float64 {
	n := len(o.gammaIn[k])
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		d[i] = o.gammaOut[k][i] - o.gammaIn[k][i]
	}
	return d
}

// wdot is the Ng inner product <a,b> = sum_i r_i^2*Dr*a_i*b_i.
func wdot(r []float64, dr float64, a, b []float64) float64 {
	var sum float64
	for i, ri := range r {
		sum += ri * ri * dr * a[i] * b[i]
	}
	return sum
}

// Accelerate produces the next gamma iterate from the buffered history.
// When fewer than 3 residuals are stored, or the latest residual's weighted
// norm is not below 1 (a divergence guard), it falls back to damped Picard:
// gammaNext = gammaIn + omega*d, with
// omega = 1/xnu ramping linearly up to 1 as the residual shrinks towards
// zero. Otherwise it solves the 2x2 least-squares problem for the Ng
// mixing coefficients and returns the accelerated iterate.
func Accelerate(r []float64, dr float64, buf *Buffer, xnu float64) (gammaNext []float64, usedNg bool) {
	n := buf.Len()
	latestIn := buf.gammaIn[n-1]
	d := buf.residual(n - 1)
	dnorm := math.Sqrt(math.Abs(wdot(r, dr, d, d)))

	if n >= 3 && dnorm < 1 {
		if next, ok := ngStep(r, dr, buf); ok {
			return next, true
		}
	}

	omega := 1.0 / xnu
	if dnorm < 1 {
		omega = 1.0/xnu + (1-1.0/xnu)*(1-dnorm)
	}
	gammaNext = make([]float64, len(latestIn))
	for i := range gammaNext {
		gammaNext[i] = latestIn[i] + omega*d[i]
	}
	return gammaNext, false
}

// ngStep implements the Ng least-squares projection over the three most
// recent iterates. Returns ok=false if the 2x2 normal-equations matrix is
// (numerically) singular, in which case the caller falls back to Picard.
func ngStep(r []float64, dr float64, buf *Buffer) (gammaNext []float64, ok bool) {
	n := buf.Len()
	dn := buf.residual(n - 1)
	dn1 := buf.residual(n - 2)
	dn2 := buf.residual(n - 3)

	e1 := subtract(dn, dn1)
	e2 := subtract(dn, dn2)

	A := la.MatAlloc(2, 2)
	A[0][0] = wdot(r, dr, e1, e1)
	A[0][1] = wdot(r, dr, e1, e2)
	A[1][0] = wdot(r, dr, e2, e1)
	A[1][1] = wdot(r, dr, e2, e2)
	rhs := []float64{wdot(r, dr, e1, dn), wdot(r, dr, e2, dn)}

	Ai := la.MatAlloc(2, 2)
	det, err := la.MatInv(Ai, A, 1e-14)
	if err != nil || math.Abs(det) < 1e-30 {
		return nil, false
	}
	c1 := Ai[0][0]*rhs[0] + Ai[0][1]*rhs[1]
	c2 := Ai[1][0]*rhs[0] + Ai[1][1]*rhs[1]

	outN := buf.gammaOut[n-1]
	outN1 := buf.gammaOut[n-2]
	outN2 := buf.gammaOut[n-3]

	gammaNext = make([]float64, len(outN))
	w0 := 1 - c1 - c2
	for i := range gammaNext {
		gammaNext[i] = w0*outN[i] + c1*outN1[i] + c2*outN2[i]
	}
	return gammaNext, true
}

func subtract(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}
