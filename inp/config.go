// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads the JSON run configuration for the Ornstein-Zernike
// solver.
package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Config mirrors the entry-point parameter list: nodes, density-ramp steps,
// outer radius, potential/closure selection, and the physical parameters
// each potential catalogue entry understands.
//
// Sigma2 and D round-trip through JSON for a future multi-species
// extension but are not read by any single-component potential today;
// only Sigma1 feeds oz.Solve's diameter.
type Config struct {
	N           int     `json:"nodes"`       // grid points
	NRho        int     `json:"nrho"`        // density-ramp steps
	Rmax        float64 `json:"r_max"`       // outer radius
	PotentialID int     `json:"potentialId"` // catalogue id, see mdl/potential
	ClosureID   string  `json:"closureId"`   // "HNC", "PY" or "RY"
	Sigma1      float64 `json:"sigma1"`      // primary diameter
	Sigma2      float64 `json:"sigma2"`      // reserved for a future multi-species extension
	T           float64 `json:"temp"`        // reduced temperature, 1/beta
	T2          float64 `json:"temp2"`       // secondary energy scale
	LambdaA     float64 `json:"lambda_a"`    // attractive range (Yukawa family)
	LambdaR     float64 `json:"lambda_r"`    // repulsive range / exponent
	Phi         float64 `json:"phi"`         // packing fraction
	D           float64 `json:"d"`           // diameter scale, reserved
	AlphaInit   float64 `json:"alphaInit"`   // RY initial alpha
	EZ          float64 `json:"ez"`          // convergence tolerance
	Xnu         float64 `json:"xnu"`         // Picard damping parameter
	MaxIter     int     `json:"maxIter"`     // iteration cap per density step
	OutputFlag  int     `json:"outputFlag"`  // ana.OutputFlag value, read by main's --single mode
}

// SetDefault fills every field a caller left at its zero value with the
// solver's reference defaults.
func (o *Config) SetDefault() {
	if o.N == 0 {
		o.N = 4096
	}
	if o.NRho == 0 {
		o.NRho = 20
	}
	if o.Rmax == 0 {
		o.Rmax = 160
	}
	if o.ClosureID == "" {
		o.ClosureID = "HNC"
	}
	if o.Sigma1 == 0 {
		o.Sigma1 = 1
	}
	if o.T == 0 {
		o.T = 1
	}
	if o.AlphaInit == 0 {
		o.AlphaInit = 1
	}
	if o.EZ == 0 {
		o.EZ = 1e-10
	}
	if o.Xnu == 0 {
		o.Xnu = 14
	}
	if o.MaxIter == 0 {
		o.MaxIter = 500
	}
}

// Validate checks the configuration fields that are fatal on their own:
// unknown ids are caught later by potential.New and closure.New, so this
// only checks what those catalogues cannot.
func (o *Config) Validate() error {
	if o.N <= 1 {
		return chk.Err("inp: nodes must be greater than 1; got %d", o.N)
	}
	if o.NRho <= 0 {
		return chk.Err("inp: nrho must be positive; got %d", o.NRho)
	}
	if o.Rmax <= 0 {
		return chk.Err("inp: r_max must be positive; got %g", o.Rmax)
	}
	if o.Phi <= 0 || o.Phi >= math.Pi/(3*math.Sqrt2) {
		return chk.Err("inp: phi=%g is outside (0, close-packing limit)", o.Phi)
	}
	return nil
}

// ReadConfig reads and decodes a JSON run configuration, applying defaults
// to every field the file omits.
func ReadConfig(path string) (cfg *Config, err error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read config file %q: %v", path, err)
	}
	cfg = new(Config)
	cfg.SetDefault()
	if err = json.Unmarshal(b, cfg); err != nil {
		return nil, chk.Err("inp: cannot unmarshal config file %q: %v", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
