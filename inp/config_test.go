// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func TestReadConfigAppliesDefaults(tst *testing.T) {
	chk.PrintTitle("ReadConfig fills in defaults for an omitted field")

	dir := tst.TempDir()
	path := filepath.Join(dir, "run.json")
	body := `{"nodes": 512, "phi": 0.3, "potentialId": 7, "closureId": "PY"}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatalf("WriteFile failed: %v\n", err)
	}

	cfg, err := ReadConfig(path)
	if err != nil {
		tst.Fatalf("ReadConfig failed: %v\n", err)
	}
	io.Pf("cfg = %+v\n", cfg)

	if cfg.N != 512 {
		tst.Errorf("nodes not preserved: got %d\n", cfg.N)
	}
	if cfg.NRho != 20 {
		tst.Errorf("nrho default not applied: got %d\n", cfg.NRho)
	}
	if cfg.Rmax != 160 {
		tst.Errorf("r_max default not applied: got %g\n", cfg.Rmax)
	}
	if cfg.EZ != 1e-10 {
		tst.Errorf("ez default not applied: got %g\n", cfg.EZ)
	}
}

func TestReadConfigRejectsBadPhi(tst *testing.T) {
	chk.PrintTitle("ReadConfig rejects phi outside the physical range")

	dir := tst.TempDir()
	path := filepath.Join(dir, "run.json")
	body := `{"phi": 0.9, "potentialId": 7}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		tst.Fatalf("WriteFile failed: %v\n", err)
	}

	_, err := ReadConfig(path)
	if err == nil {
		tst.Errorf("expected ReadConfig to reject phi=0.9\n")
	}
}

func TestReadConfigMissingFile(tst *testing.T) {
	chk.PrintTitle("ReadConfig reports a clear error for a missing file")

	_, err := ReadConfig(filepath.Join(tst.TempDir(), "does-not-exist.json"))
	if err == nil {
		tst.Errorf("expected an error for a missing config file\n")
	}
}
