// SPDX-License-Identifier: MIT

package planar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/kohonen/som"
	"github.com/katalvlaran/kohonen/vector"
)

// Calculator implements som.Calculator for a width×height grid.
type Calculator struct {
	width, height int
	maxRadius     float64
	lnMaxRadius   float64 // 0 when maxRadius <= 1: radius stays constant
	maxRate       float64
	metric        Metric
	mapMetric     Metric
}

var _ som.Calculator = (*Calculator)(nil)

// New builds a Calculator for a width×height grid.
// Stage 1 (Validate): positive size, valid options.
// Stage 2 (Prepare): resolve the default radius and the decay constant once.
func New(width, height int, opts ...Option) (*Calculator, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("planar.New(%d,%d): %w", width, height, ErrInvalidSize)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, fmt.Errorf("planar.New: %w", o.err)
	}

	r := o.MaxRadius
	if r == 0 {
		r = float64(min(width, height)) / 2
	}
	var lnR float64
	if r > 1 {
		lnR = math.Log(r)
	}

	return &Calculator{
		width:       width,
		height:      height,
		maxRadius:   r,
		lnMaxRadius: lnR,
		maxRate:     o.MaxLearningRate,
		metric:      o.Metric,
		mapMetric:   o.MapMetric,
	}, nil
}

// Width returns the grid width.
func (c *Calculator) Width() int { return c.width }

// Height returns the grid height.
func (c *Calculator) Height() int { return c.height }

// MaxRadius returns the radius at iteration 0.
func (c *Calculator) MaxRadius() float64 { return c.maxRadius }

// MaxLearningRate returns the learning rate at iteration 0.
func (c *Calculator) MaxLearningRate() float64 { return c.maxRate }

// DistanceOf returns the weight-space distance between a and b.
func (c *Calculator) DistanceOf(a, b *vector.Vector) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("planar.DistanceOf: %w", vector.ErrNilVector)
	}
	if a.Dim() != b.Dim() {
		return 0, fmt.Errorf("planar.DistanceOf: %d vs %d: %w", a.Dim(), b.Dim(), vector.ErrDimensionMismatch)
	}

	return floats.Distance(a.Values(), b.Values(), c.metric.norm()), nil
}

// MapDistanceOf returns the grid distance between the positions of a and b.
func (c *Calculator) MapDistanceOf(a, b *som.Cell) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("planar.MapDistanceOf: %w", som.ErrNilCell)
	}
	pa, pb := a.Position(), b.Position()

	return floats.Distance(
		[]float64{float64(pa.X), float64(pa.Y)},
		[]float64{float64(pb.X), float64(pb.Y)},
		c.mapMetric.norm(),
	), nil
}

// NeighbourhoodRadius decays exponentially from MaxRadius at iteration 0 to
// 1 at iteration == total. A non-positive total yields MaxRadius.
func (c *Calculator) NeighbourhoodRadius(iteration, total int) float64 {
	if total <= 0 || c.lnMaxRadius == 0 {
		return c.maxRadius
	}

	return c.maxRadius * math.Exp(-float64(iteration)*c.lnMaxRadius/float64(total))
}

// Influence is the Gaussian kernel exp(−d²/r²); 1 at d == 0.
func (c *Calculator) Influence(_ *som.Cell, distance, radius float64) float64 {
	if distance == 0 {
		return 1
	}

	return math.Exp(-(distance * distance) / (radius * radius))
}

// LearningRate decays from MaxLearningRate to MaxLearningRate/e.
// A non-positive total yields MaxLearningRate.
func (c *Calculator) LearningRate(iteration, total int) float64 {
	if total <= 0 {
		return c.maxRate
	}

	return c.maxRate * math.Exp(-float64(iteration)/float64(total))
}
