// SPDX-License-Identifier: MIT

// Package som trains a Self-Organizing Map (Kohonen map): a fixed set of
// cells, each holding a weight vector in input space, pulled toward sampled
// inputs so that cells close on the grid end up responding to similar inputs.
//
// 🚀 Building blocks:
//
//   - Cell       — one node: owned weight *vector.Vector, an immutable grid
//     Position, and a typed attribute map (Value: number, string or bool).
//   - Map        — fixed, ordered collection of cells. Traversal order is
//     construction order and is part of the contract.
//   - Calculator — strategy supplying weight distance, map distance,
//     neighbourhood radius, influence kernel and learning rate.
//   - Trainer    — runs the competitive learning loop over a Map.
//
// ⚙️ Algorithm (one iteration t of N):
//
//  1. onStep(map)                         — live alias, fired BEFORE the update
//  2. x   ← uniform sample (with replacement) from inputs
//  3. bmu ← argmin_c DistanceOf(c.Weight, x); first strictly smaller wins
//  4. r   ← NeighbourhoodRadius(t, N)
//  5. for every cell c with MapDistanceOf(c, bmu) < r:
//     c.Weight += Influence(c, d, r) · LearningRate(t, N) · (x − c.Weight)
//
// After N iterations onComplete(map) fires once.
//
// Usage:
//
//	m, _ := som.NewGridMap(10, 10, 3, rand.New(rand.NewSource(1)))
//	calc, _ := planar.New(10, 10)
//	tr, _ := som.NewTrainer(m, calc, som.WithSeed(42))
//	err := tr.Start(inputs, 1000, nil, nil)
//
// Concurrency: a Trainer and the Map it trains are single-writer. Each
// Trainer owns its own *rand.Rand; runs are reproducible under WithSeed.
// Cancellation is done by returning an error from the step callback.
//
// Errors are package sentinels matched with errors.Is; no function panics on
// caller input.
package som
