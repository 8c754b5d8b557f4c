// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oz

// ConvergenceError marks a numerical non-convergence or spinodal-crossing
// failure, as opposed to a configuration error: callers map it to a
// distinct exit status (2, not 1).
type ConvergenceError struct {
	Err error
}

func (e *ConvergenceError) Error() string { return e.Err.Error() }
func (e *ConvergenceError) Unwrap() error { return e.Err }
