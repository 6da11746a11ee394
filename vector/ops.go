// SPDX-License-Identifier: MIT

package vector

import "gonum.org/v1/gonum/floats"

// In-place operations. Each one requires exclusive access to the receiver,
// validates before writing, and returns the receiver for chaining.

// Add adds o to v component-wise and returns v.
// On dimension mismatch neither operand is modified.
// Complexity: O(d).
func (v *Vector) Add(o *Vector) (*Vector, error) {
	if err := validateSameDim("Add", v, o); err != nil {
		return nil, err
	}
	floats.Add(v.data, o.data)

	return v, nil
}

// Sub subtracts o from v component-wise and returns v.
// On dimension mismatch neither operand is modified.
// Complexity: O(d).
func (v *Vector) Sub(o *Vector) (*Vector, error) {
	if err := validateSameDim("Sub", v, o); err != nil {
		return nil, err
	}
	floats.Sub(v.data, o.data)

	return v, nil
}

// Scale multiplies every component of v by s and returns v.
func (v *Vector) Scale(s float64) *Vector {
	floats.Scale(s, v.data)

	return v
}

// Div divides every component of v by d and returns v.
// d == 0 is not checked; results follow IEEE-754.
func (v *Vector) Div(d float64) *Vector {
	floats.Div(v.data, repeat(d, len(v.data)))

	return v
}

// Pure operations. Operands are read only; the result never aliases them.

// Add returns a + b as a new vector.
// Complexity: O(d) time and memory.
func Add(a, b *Vector) (*Vector, error) {
	if err := validateSameDim("Add", a, b); err != nil {
		return nil, err
	}

	return &Vector{data: floats.AddTo(make([]float64, len(a.data)), a.data, b.data)}, nil
}

// Sub returns a - b as a new vector.
// Complexity: O(d) time and memory.
func Sub(a, b *Vector) (*Vector, error) {
	if err := validateSameDim("Sub", a, b); err != nil {
		return nil, err
	}

	return &Vector{data: floats.SubTo(make([]float64, len(a.data)), a.data, b.data)}, nil
}

// Scale returns v * s as a new vector.
func Scale(v *Vector, s float64) *Vector {
	return &Vector{data: floats.ScaleTo(make([]float64, len(v.data)), s, v.data)}
}

// Div returns v / d as a new vector. d == 0 is not checked.
func Div(v *Vector, d float64) *Vector {
	return &Vector{data: floats.DivTo(make([]float64, len(v.data)), v.data, repeat(d, len(v.data)))}
}

// repeat returns a slice holding x n times, the broadcast operand for Div.
func repeat(x float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = x
	}

	return out
}
