// SPDX-License-Identifier: MIT

package som_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kohonen/som"
	"github.com/katalvlaran/kohonen/vector"
)

// funcCalc is a Calculator assembled from function fields so each test can
// pin exactly the behaviour it needs.
type funcCalc struct {
	dist      func(a, b *vector.Vector) (float64, error)
	mapDist   func(a, b *som.Cell) (float64, error)
	radius    func(iteration, total int) float64
	influence func(c *som.Cell, distance, radius float64) float64
	rate      func(iteration, total int) float64
}

func (f *funcCalc) DistanceOf(a, b *vector.Vector) (float64, error) { return f.dist(a, b) }
func (f *funcCalc) MapDistanceOf(a, b *som.Cell) (float64, error)  { return f.mapDist(a, b) }
func (f *funcCalc) NeighbourhoodRadius(i, n int) float64            { return f.radius(i, n) }
func (f *funcCalc) Influence(c *som.Cell, d, r float64) float64     { return f.influence(c, d, r) }
func (f *funcCalc) LearningRate(i, n int) float64                   { return f.rate(i, n) }

// euclid is the reference weight distance.
func euclid(a, b *vector.Vector) (float64, error) {
	diff, err := vector.Sub(a, b)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	diff.ForEach(func(_ int, x float64) { sum += x * x })

	return math.Sqrt(sum), nil
}

// gridDist is the Euclidean distance between cell positions.
func gridDist(a, b *som.Cell) (float64, error) {
	pa, pb := a.Position(), b.Position()
	dx, dy := float64(pa.X-pb.X), float64(pa.Y-pb.Y)

	return math.Sqrt(dx*dx + dy*dy), nil
}

// constCalc returns a calculator with constant radius, influence and rate.
func constCalc(radius, influence, rate float64) *funcCalc {
	return &funcCalc{
		dist:      euclid,
		mapDist:   gridDist,
		radius:    func(int, int) float64 { return radius },
		influence: func(*som.Cell, float64, float64) float64 { return influence },
		rate:      func(int, int) float64 { return rate },
	}
}

// mustVec builds a vector or aborts the test.
func mustVec(t testing.TB, values ...float64) *vector.Vector {
	t.Helper()
	v, err := vector.New(values...)
	require.NoError(t, err)

	return v
}

// zeroGrid builds a w×h map of dim-dimensional zero weights, x outer, y inner.
func zeroGrid(t testing.TB, w, h, dim int) *som.Map {
	t.Helper()
	cells := make([]*som.Cell, 0, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			z, err := vector.Zeros(dim)
			require.NoError(t, err)
			cells = append(cells, som.NewCell(z, som.Position{X: x, Y: y}))
		}
	}
	m, err := som.NewMap(cells...)
	require.NoError(t, err)

	return m
}

// weights collects every cell weight in traversal order.
func weights(m *som.Map) [][]float64 {
	var out [][]float64
	m.ForEachCell(func(c *som.Cell) { out = append(out, c.Weight().Values()) })

	return out
}
