// SPDX-License-Identifier: MIT

package vector

import (
	"encoding/binary"
	"hash/fnv"
	"iter"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// defaultRandomSeed seeds Random when the caller passes a nil *rand.Rand.
const defaultRandomSeed int64 = 1

// Vector is an ordered, fixed-dimension sequence of float64 values.
// The zero value is not usable; build vectors with New, Zeros or Random.
type Vector struct {
	data []float64 // len(data) == dimension, never resized
}

// New creates a vector holding a copy of values.
// Returns ErrInvalidDimension when values is empty.
// Complexity: O(d).
func New(values ...float64) (*Vector, error) {
	if len(values) == 0 {
		return nil, vectorErrorf("New", ErrInvalidDimension)
	}
	data := make([]float64, len(values))
	copy(data, values)

	return &Vector{data: data}, nil
}

// Zeros creates a dim-dimensional vector of zeros.
// Complexity: O(d).
func Zeros(dim int) (*Vector, error) {
	if dim <= 0 {
		return nil, vectorErrorf("Zeros", ErrInvalidDimension)
	}

	return &Vector{data: make([]float64, dim)}, nil
}

// Random creates a dim-dimensional vector whose components are drawn
// independently and uniformly from [0, 1) using rng.
// A nil rng falls back to a fixed-seed stream so results stay reproducible;
// there is no hidden global source.
// Complexity: O(d).
func Random(dim int, rng *rand.Rand) (*Vector, error) {
	if dim <= 0 {
		return nil, vectorErrorf("Random", ErrInvalidDimension)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRandomSeed))
	}
	data := make([]float64, dim)
	for i := range data {
		data[i] = rng.Float64()
	}

	return &Vector{data: data}, nil
}

// Dim returns the vector dimension.
func (v *Vector) Dim() int {
	return len(v.data)
}

// At returns component i, or ErrOutOfRange when i is outside [0, Dim).
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, indexErrorf("At", i, len(v.data))
	}

	return v.data[i], nil
}

// Set assigns x to component i, or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return indexErrorf("Set", i, len(v.data))
	}
	v.data[i] = x

	return nil
}

// Values returns a copy of the components.
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{data: v.Values()}
}

// ForEach calls fn for every component in index order.
// fn observes values only; a nil fn is a no-op.
func (v *Vector) ForEach(fn func(i int, x float64)) {
	if fn == nil {
		return
	}
	for i, x := range v.data {
		fn(i, x)
	}
}

// All returns a lazy iterator over (index, value) pairs.
//
//	for i, x := range w.All() { ... }
func (v *Vector) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Equal reports whether v and o have the same dimension and identical
// components (== semantics, so NaN never equals NaN).
func (v *Vector) Equal(o *Vector) bool {
	if v == nil || o == nil {
		return v == o
	}

	return floats.Equal(v.data, o.data)
}

// Hash returns a structural 64-bit hash consistent with Equal:
// equal vectors hash equally. -0 and +0 hash the same.
func (v *Vector) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, x := range v.data {
		if x == 0 {
			x = 0 // fold -0 into +0
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}

// String implements fmt.Stringer, e.g. "[0.5 1 2]".
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteByte(']')

	return b.String()
}
