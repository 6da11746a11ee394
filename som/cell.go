// SPDX-License-Identifier: MIT

package som

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/katalvlaran/kohonen/vector"
)

// Position is a cell's coordinate on the map grid.
// It is fixed when the cell is built and defines the map topology.
type Position struct {
	X, Y int
}

// String implements fmt.Stringer as "x,y".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Cell is one map node: a weight vector it owns, a fixed Position, and a
// map of named attributes for ad hoc metadata.
// The trainer mutates Weight in place; Position never changes.
type Cell struct {
	weight *vector.Vector
	pos    Position
	attrs  map[string]Value
}

// NewCell creates a cell owning weight at pos with no attributes.
// The caller must not keep mutating weight outside of training.
func NewCell(weight *vector.Vector, pos Position) *Cell {
	return &Cell{
		weight: weight,
		pos:    pos,
		attrs:  make(map[string]Value),
	}
}

// Weight returns the cell's weight vector (live, not a copy).
func (c *Cell) Weight() *vector.Vector { return c.weight }

// Position returns the cell's grid coordinate.
func (c *Cell) Position() Position { return c.pos }

// Get returns the attribute stored under key, or ErrKeyNotFound.
// Missing keys are never defaulted.
func (c *Cell) Get(key string) (Value, error) {
	v, ok := c.attrs[key]
	if !ok {
		return Value{}, fmt.Errorf("som.Cell.Get(%q): %w", key, ErrKeyNotFound)
	}

	return v, nil
}

// Set inserts or overwrites the attribute under key.
func (c *Cell) Set(key string, v Value) {
	c.attrs[key] = v
}

// Len returns the number of attributes.
func (c *Cell) Len() int { return len(c.attrs) }

// Keys returns the attribute names sorted ascending.
func (c *Cell) Keys() []string {
	keys := make([]string, 0, len(c.attrs))
	for k := range c.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Clone returns a deep copy: new weight vector, same position, copied attributes.
func (c *Cell) Clone() *Cell {
	out := &Cell{
		weight: c.weight.Clone(),
		pos:    c.pos,
		attrs:  make(map[string]Value, len(c.attrs)),
	}
	for k, v := range c.attrs {
		out.attrs[k] = v
	}

	return out
}

// Equal reports structural equality: same weight components, same position,
// and the same attribute set (keys and values), regardless of insertion order.
func (c *Cell) Equal(o *Cell) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.pos != o.pos || len(c.attrs) != len(o.attrs) {
		return false
	}
	if !c.weight.Equal(o.weight) {
		return false
	}
	for k, v := range c.attrs {
		w, ok := o.attrs[k]
		if !ok || !v.Equal(w) {
			return false
		}
	}

	return true
}

// Hash returns a 64-bit hash consistent with Equal. Attributes are folded
// in sorted key order so insertion order does not matter.
func (c *Cell) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], c.weight.Hash())
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(c.pos.X)))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(c.pos.Y)))
	_, _ = h.Write(buf[:])

	var b []byte
	for _, k := range c.Keys() {
		b = b[:0]
		b = append(b, k...)
		b = append(b, 0)
		b = c.attrs[k].appendHash(b)
		_, _ = h.Write(b)
	}

	return h.Sum64()
}
