// SPDX-License-Identifier: MIT

package som

import (
	"fmt"
	"iter"
	"math/rand"

	"github.com/katalvlaran/kohonen/vector"
)

// Map is a fixed, ordered collection of cells.
// Cells are traversed in construction order; that order also breaks ties in
// best-matching-unit search. A Map is never resized; its cells are mutated
// in place by a Trainer.
type Map struct {
	cells []*Cell
	dim   int // shared weight dimension
}

// NewMap builds a map over cells, keeping their order.
// Stage 1 (Validate): at least one cell, no nil cells, equal weight dimensions.
// Stage 2 (Finalize): copy the slice header so later appends by the caller
// cannot resize the map.
// Complexity: O(n).
func NewMap(cells ...*Cell) (*Map, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("som.NewMap: %w", ErrEmptyMap)
	}
	dim := -1
	for i, c := range cells {
		if c == nil || c.weight == nil {
			return nil, fmt.Errorf("som.NewMap: cell %d: %w", i, ErrNilCell)
		}
		switch {
		case dim < 0:
			dim = c.weight.Dim()
		case c.weight.Dim() != dim:
			return nil, fmt.Errorf("som.NewMap: cell %d has dim %d, want %d: %w",
				i, c.weight.Dim(), dim, vector.ErrDimensionMismatch)
		}
	}
	own := make([]*Cell, len(cells))
	copy(own, cells)

	return &Map{cells: own, dim: dim}, nil
}

// NewGridMap builds a width×height rectangular map of dim-dimensional cells
// with random weights in [0,1) drawn from rng (nil ⇒ fixed default stream).
// Cells are created column by column: x outer, y inner.
// Complexity: O(width·height·dim).
func NewGridMap(width, height, dim int, rng *rand.Rand) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("som.NewGridMap(%d,%d): %w", width, height, ErrInvalidGrid)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	cells := make([]*Cell, 0, width*height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			w, err := vector.Random(dim, rng)
			if err != nil {
				return nil, fmt.Errorf("som.NewGridMap: %w", err)
			}
			cells = append(cells, NewCell(w, Position{X: x, Y: y}))
		}
	}

	return &Map{cells: cells, dim: dim}, nil
}

// Len returns the number of cells.
func (m *Map) Len() int { return len(m.cells) }

// Dim returns the weight dimension shared by all cells.
func (m *Map) Dim() int { return m.dim }

// ForEachCell applies fn to every cell in construction order.
// A nil fn is a no-op.
func (m *Map) ForEachCell(fn func(c *Cell)) {
	if fn == nil {
		return
	}
	for _, c := range m.cells {
		fn(c)
	}
}

// All returns an iterator over the cells in construction order.
func (m *Map) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, c := range m.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Locate finds the first cell at pos by inspecting positions.
// Complexity: O(n).
func (m *Map) Locate(pos Position) (*Cell, error) {
	for _, c := range m.cells {
		if c.pos == pos {
			return c, nil
		}
	}

	return nil, fmt.Errorf("som.Map.Locate(%s): %w", pos, ErrCellNotFound)
}

// Clone returns a deep copy of the map. Use it inside step callbacks when a
// snapshot must survive later iterations.
// Complexity: O(n·dim).
func (m *Map) Clone() *Map {
	cells := make([]*Cell, len(m.cells))
	for i, c := range m.cells {
		cells[i] = c.Clone()
	}

	return &Map{cells: cells, dim: m.dim}
}
