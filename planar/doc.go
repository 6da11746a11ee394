// SPDX-License-Identifier: MIT

// Package planar is the reference som.Calculator for rectangular grids.
//
// Schedules (t = iteration, N = total):
//
//	radius(t)   = R · exp(−t · ln R / N)   (R = max radius; constant when R ≤ 1)
//	rate(t)     = L · exp(−t / N)          (L = max learning rate)
//	influence   = exp(−d² / r²)            (Gaussian kernel)
//
// so the radius shrinks from R to 1 and the learning rate from L to L/e over
// a run. Defaults: R = min(width, height)/2, L = 0.5, Euclidean distance in
// both weight space and grid space. WithMetric and WithMapMetric switch to
// Manhattan or Chebyshev norms; all norms are computed with
// gonum.org/v1/gonum/floats.
//
// A Calculator is immutable after New and safe for concurrent use.
package planar
