// Package kohonen is a small, deterministic toolkit for training
// Self-Organizing Maps (Kohonen maps) in pure Go.
//
// 🚀 What is a SOM?
//
//	A grid of cells, each holding a weight vector in input space. Every
//	training step picks an input, finds the closest cell (the best-matching
//	unit) and pulls it, and its grid neighbours, toward the input. Over time
//	neighbouring cells come to respond to similar inputs: a topology
//	preserving projection of the data onto the grid.
//
// Packages:
//
//	vector/        — fixed-dimension float64 vectors, in-place and pure arithmetic
//	som/           — Cell, Map, the Calculator strategy and the Trainer
//	planar/        — reference Calculator for rectangular grids
//	colorsom/      — RGB colour maps, JSON export and image rendering
//	cmd/colorsom/  — command line demo
//
// ✨ Guarantees:
//
//   - Deterministic: every Trainer owns a seedable RNG; traversal order is
//     construction order.
//   - Explicit errors: package sentinels matched with errors.Is; no panics on
//     caller input.
//   - Pluggable math: distance, topology, decay and influence all come from a
//     Calculator you can replace.
//
//	go get github.com/katalvlaran/kohonen
package kohonen
