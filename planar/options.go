// SPDX-License-Identifier: MIT

package planar

import (
	"fmt"
	"math"
)

// Metric selects the norm used for a distance.
type Metric int

const (
	// Euclidean is the L2 norm (default).
	Euclidean Metric = iota
	// Manhattan is the L1 norm.
	Manhattan
	// Chebyshev is the L∞ norm.
	Chebyshev
)

// norm returns the L parameter understood by floats.Distance.
func (m Metric) norm() float64 {
	switch m {
	case Manhattan:
		return 1
	case Chebyshev:
		return math.Inf(1)
	default:
		return 2
	}
}

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// DefaultMaxLearningRate is the starting learning rate.
const DefaultMaxLearningRate = 0.5

// Option configures a Calculator. Invalid values are recorded and returned
// as ErrOptionViolation from New.
type Option func(*Options)

// Options holds Calculator configuration.
type Options struct {
	// MaxRadius is the radius at iteration 0. 0 ⇒ min(width, height)/2.
	MaxRadius float64
	// MaxLearningRate is the learning rate at iteration 0, in (0, 1].
	MaxLearningRate float64
	// Metric is the weight-space norm.
	Metric Metric
	// MapMetric is the grid-space norm.
	MapMetric Metric

	err error
}

// DefaultOptions returns the defaults described in the package doc.
func DefaultOptions() Options {
	return Options{
		MaxRadius:       0,
		MaxLearningRate: DefaultMaxLearningRate,
		Metric:          Euclidean,
		MapMetric:       Euclidean,
	}
}

// WithMaxRadius sets the starting neighbourhood radius (finite, > 0).
func WithMaxRadius(r float64) Option {
	return func(o *Options) {
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			o.err = fmt.Errorf("%w: MaxRadius must be finite and > 0 (%v)", ErrOptionViolation, r)
			return
		}
		o.MaxRadius = r
	}
}

// WithMaxLearningRate sets the starting learning rate, in (0, 1].
func WithMaxLearningRate(lr float64) Option {
	return func(o *Options) {
		if math.IsNaN(lr) || lr <= 0 || lr > 1 {
			o.err = fmt.Errorf("%w: MaxLearningRate must be in (0,1] (%v)", ErrOptionViolation, lr)
			return
		}
		o.MaxLearningRate = lr
	}
}

// WithMetric sets the weight-space norm.
func WithMetric(m Metric) Option {
	return func(o *Options) {
		if m < Euclidean || m > Chebyshev {
			o.err = fmt.Errorf("%w: unknown %v", ErrOptionViolation, m)
			return
		}
		o.Metric = m
	}
}

// WithMapMetric sets the grid-space norm.
func WithMapMetric(m Metric) Option {
	return func(o *Options) {
		if m < Euclidean || m > Chebyshev {
			o.err = fmt.Errorf("%w: unknown map %v", ErrOptionViolation, m)
			return
		}
		o.MapMetric = m
	}
}
