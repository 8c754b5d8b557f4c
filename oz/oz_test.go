// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oz

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/ozsolve/closure"
	"github.com/cpmech/ozsolve/grid"
	"github.com/cpmech/ozsolve/mdl/potential"
)

func hardSphereContext(tst *testing.T, clo closure.Model, eta float64) *Context {
	mesh, err := grid.NewMesh(256, 8.0)
	if err != nil {
		tst.Fatalf("NewMesh failed: %v\n", err)
	}
	pot, err := potential.New(7)
	if err != nil {
		tst.Fatalf("potential.New failed: %v\n", err)
	}
	if err := pot.Init(nil); err != nil {
		tst.Fatalf("potential Init failed: %v\n", err)
	}
	rho := 6 * eta / math.Pi // sigma=1, eta = (pi/6)*rho*sigma^3
	ctx, err := NewContext(mesh, pot, clo, 1.0, rho, 4, 1e-8, 14.0, 400)
	if err != nil {
		tst.Fatalf("NewContext failed: %v\n", err)
	}
	return ctx
}

// TestHardSpherePYContact checks the PY contact value g(sigma+) against the
// closed-form PY hard-sphere contact value at a modest packing fraction, to
// a loose tolerance appropriate for a coarse grid.
func TestHardSpherePYContact(tst *testing.T) {
	chk.PrintTitle("hard-sphere PY: contact value at eta=0.3")

	eta := 0.3
	ctx := hardSphereContext(tst, &closure.PY{}, eta)
	driver := &Driver{}
	res, err := driver.Run(ctx)
	if err != nil {
		tst.Fatalf("density ramp failed: %v\n", err)
	}

	g := ContactValue(ctx, res.Final)
	// PY contact value for hard spheres, Wertheim/Thiele closed form:
	// g(sigma+) = (1+eta/2)/(1-eta)^2
	want := (1 + eta/2) / ((1 - eta) * (1 - eta))
	if math.Abs(g-want) > 0.05 {
		tst.Errorf("contact value mismatch: got %v want ~%v\n", g, want)
	}
}

// TestHardSpherePYCompressibility checks that 1/S(k->0) stays positive and
// finite well below the PY hard-sphere spinodal (eta ~ 0.494 for the
// compressibility route), i.e. no false spinodal crossing is reported.
func TestHardSpherePYCompressibility(tst *testing.T) {
	chk.PrintTitle("hard-sphere PY: S(k->0) finite at eta=0.3")

	ctx := hardSphereContext(tst, &closure.PY{}, 0.3)
	driver := &Driver{}
	res, err := driver.Run(ctx)
	if err != nil {
		tst.Fatalf("density ramp failed: %v\n", err)
	}
	kappa := InverseS0(ctx, res.Final)
	if kappa <= 0 || math.IsNaN(kappa) || math.IsInf(kappa, 0) {
		tst.Errorf("expected a finite positive inverse compressibility, got %v\n", kappa)
	}
}

// TestHertzianHNCPeak checks that g(r) for a soft Hertzian fluid under HNC
// develops its first correlation peak near r=sigma, the qualitative
// signature of liquid-like structure.
func TestHertzianHNCPeak(tst *testing.T) {
	chk.PrintTitle("Hertzian HNC: first peak near r=sigma")

	mesh, err := grid.NewMesh(256, 8.0)
	if err != nil {
		tst.Fatalf("NewMesh failed: %v\n", err)
	}
	pot, err := potential.New(13)
	if err != nil {
		tst.Fatalf("potential.New failed: %v\n", err)
	}
	if err := pot.Init(nil); err != nil {
		tst.Fatalf("potential Init failed: %v\n", err)
	}
	ctx, err := NewContext(mesh, pot, &closure.HNC{}, 1.0, 0.6, 6, 1e-8, 14.0, 400)
	if err != nil {
		tst.Fatalf("NewContext failed: %v\n", err)
	}
	driver := &Driver{}
	res, err := driver.Run(ctx)
	if err != nil {
		tst.Fatalf("density ramp failed: %v\n", err)
	}

	peakIdx, peakVal := 0, -1.0
	for i, r := range mesh.R {
		if r < 0.5 || r > 2.0 {
			continue
		}
		g := 1 + res.Final.H[i]
		if g > peakVal {
			peakVal = g
			peakIdx = i
		}
	}
	if peakVal <= 1.0 {
		tst.Errorf("expected a correlation peak above g=1, got %v\n", peakVal)
	}
	rPeak := mesh.R[peakIdx]
	if rPeak < 0.8 || rPeak > 1.6 {
		tst.Errorf("first peak at unexpected radius: got %v\n", rPeak)
	}
}

// TestIPLHNCInconsistency checks that the HNC closure applied to a steep
// repulsive IPL potential converges (no spinodal crossing) but that the
// virial and compressibility pressure routes disagree, the textbook
// signature of HNC's thermodynamic inconsistency.
func TestIPLHNCInconsistency(tst *testing.T) {
	chk.PrintTitle("IPL HNC: virial/compressibility pressure mismatch")

	mesh, err := grid.NewMesh(256, 6.0)
	if err != nil {
		tst.Fatalf("NewMesh failed: %v\n", err)
	}
	pot, err := potential.New(1)
	if err != nil {
		tst.Fatalf("potential.New failed: %v\n", err)
	}
	if err := pot.Init(nil); err != nil {
		tst.Fatalf("potential Init failed: %v\n", err)
	}
	ctx, err := NewContext(mesh, pot, &closure.HNC{}, 1.0, 0.7, 6, 1e-8, 14.0, 400)
	if err != nil {
		tst.Fatalf("NewContext failed: %v\n", err)
	}
	driver := &Driver{}
	res, err := driver.Run(ctx)
	if err != nil {
		tst.Fatalf("density ramp failed: %v\n", err)
	}
	pv := VirialPressure(ctx, res.Final)
	pc := CompressibilityPressure(ctx, res.History)
	if math.Abs(pv-pc) < 1e-3 {
		tst.Errorf("expected HNC pressure routes to disagree measurably, got pv=%v pc=%v\n", pv, pc)
	}
}

// TestRYConsistencyConverges checks that the bisection finds an alpha inside
// the default bracket with a small residual Delta for a modest hard-sphere
// density, the case the RY closure was designed for.
func TestRYConsistencyConverges(tst *testing.T) {
	chk.PrintTitle("RY consistency: bisection converges for hard spheres")

	ctx := hardSphereContext(tst, &closure.RY{Alpha: 1.0}, 0.3)
	out, err := SolveRYConsistency(ctx)
	if err != nil {
		tst.Fatalf("SolveRYConsistency failed: %v\n", err)
	}
	if out.BestEffort {
		tst.Errorf("expected a bracketed root, got best-effort alpha=%v delta=%v\n", out.Alpha, out.Delta)
	}
	if out.Alpha < alphaLoDefault || out.Alpha > alphaHiDefault {
		tst.Errorf("alpha outside the default bracket: got %v\n", out.Alpha)
	}
	if math.Abs(out.Delta) > 1e-2 {
		tst.Errorf("residual pressure mismatch too large: got %v\n", out.Delta)
	}
}
