// SPDX-License-Identifier: MIT

// Package vector provides the fixed-dimension numeric vector used as the
// weight and input type of the kohonen SOM packages.
//
// A Vector is an ordered sequence of float64 values whose dimension is set at
// construction and never changes. Two flavours of arithmetic coexist:
//
//   - in-place methods (v.Add, v.Sub, v.Scale, v.Div) mutate the receiver and
//     return it, so calls can be chained;
//   - pure functions (vector.Add, vector.Sub, vector.Scale, vector.Div) leave
//     their operands untouched and allocate a new result.
//
// Every binary operation validates dimensions before touching any data, so a
// failed call never leaves a half-updated operand behind. Division by zero is
// not checked and follows IEEE-754 (±Inf, NaN).
//
// Usage:
//
//	import "github.com/katalvlaran/kohonen/vector"
//
//	w, _ := vector.New(0.2, 0.4, 0.6)
//	x, _ := vector.New(1, 1, 1)
//	diff, _ := vector.Sub(x, w)   // new vector, x and w unchanged
//	_, _ = w.Add(diff.Scale(0.5)) // w moves half way toward x
//
// Element-wise kernels are delegated to gonum.org/v1/gonum/floats.
// Vectors are not safe for concurrent mutation.
package vector
