// SPDX-License-Identifier: MIT

package som

import "github.com/katalvlaran/kohonen/vector"

// Calculator supplies the numeric strategy a Trainer runs with.
//
// Implementations hold only construction-time configuration (map size,
// maximum radius, maximum learning rate) and every method must be pure:
// the same arguments always give the same result and no state changes.
//
// Contract per method:
//   - DistanceOf: weight-space distance, >= 0, symmetric, 0 only for equal
//     vectors. Dimension mismatch must be reported as an error.
//   - MapDistanceOf: topology distance derived from cell positions, >= 0,
//     independent of weights.
//   - NeighbourhoodRadius: > 0, starts near its maximum at iteration 0 and
//     does not increase as iteration → total.
//   - Influence: in [0,1], 1 at distance 0, decreasing as distance grows
//     relative to radius.
//   - LearningRate: in (0, max], does not increase as iteration → total.
type Calculator interface {
	DistanceOf(a, b *vector.Vector) (float64, error)
	MapDistanceOf(a, b *Cell) (float64, error)
	NeighbourhoodRadius(iteration, total int) float64
	Influence(c *Cell, distance, radius float64) float64
	LearningRate(iteration, total int) float64
}
