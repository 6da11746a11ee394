// SPDX-License-Identifier: MIT

package colorsom

import (
	"fmt"

	"github.com/katalvlaran/kohonen/planar"
	"github.com/katalvlaran/kohonen/som"
	"github.com/katalvlaran/kohonen/vector"
)

// Dimension is the weight dimension of a colour map: red, green, blue.
const Dimension = 3

// Streams derived from the user seed.
const (
	streamMap uint64 = iota + 1
	streamTrainer
)

// Option configures New.
type Option func(*config)

type config struct {
	seed       int64
	planarOpts []planar.Option
	observer   func(som.Event)
}

// WithSeed makes map initialisation and sampling reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithMaxLearningRate overrides planar.DefaultMaxLearningRate.
func WithMaxLearningRate(lr float64) Option {
	return func(c *config) { c.planarOpts = append(c.planarOpts, planar.WithMaxLearningRate(lr)) }
}

// WithObserver forwards per-iteration events from the trainer.
func WithObserver(fn func(som.Event)) Option {
	return func(c *config) { c.observer = fn }
}

// SOM bundles a colour map with its calculator and trainer.
type SOM struct {
	width, height int
	m             *som.Map
	calc          *planar.Calculator
	trainer       *som.Trainer
}

// New builds a width×height colour SOM with random initial colours.
// The max radius is min(width, height)/2 (planar default).
func New(width, height int, opts ...Option) (*SOM, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("colorsom.New(%d,%d): %w", width, height, ErrInvalidSize)
	}
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	calc, err := planar.New(width, height, cfg.planarOpts...)
	if err != nil {
		return nil, fmt.Errorf("colorsom.New: %w", err)
	}
	m, err := som.NewGridMap(width, height, Dimension, som.DeriveRand(cfg.seed, streamMap))
	if err != nil {
		return nil, fmt.Errorf("colorsom.New: %w", err)
	}
	trOpts := []som.Option{som.WithRand(som.DeriveRand(cfg.seed, streamTrainer))}
	if cfg.observer != nil {
		trOpts = append(trOpts, som.WithObserver(cfg.observer))
	}
	tr, err := som.NewTrainer(m, calc, trOpts...)
	if err != nil {
		return nil, fmt.Errorf("colorsom.New: %w", err)
	}

	return &SOM{width: width, height: height, m: m, calc: calc, trainer: tr}, nil
}

// Width returns the grid width.
func (s *SOM) Width() int { return s.width }

// Height returns the grid height.
func (s *SOM) Height() int { return s.height }

// Map returns the colour map (live).
func (s *SOM) Map() *som.Map { return s.m }

// Calculator returns the planar calculator in use.
func (s *SOM) Calculator() *planar.Calculator { return s.calc }

// Start trains on inputs for iterations steps and calls done, if non-nil,
// once with the trained map.
func (s *SOM) Start(inputs []*vector.Vector, iterations int, done som.Handler) error {
	return s.trainer.Start(inputs, iterations, done, nil)
}

// DefaultPalette returns the six saturated corners of the RGB cube plus mid
// grey.
func DefaultPalette() []*vector.Vector {
	raw := [][3]float64{
		{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
		{1, 1, 0}, {0, 1, 1}, {1, 0, 1},
		{0.5, 0.5, 0.5},
	}
	out := make([]*vector.Vector, len(raw))
	for i, c := range raw {
		out[i], _ = vector.New(c[0], c[1], c[2])
	}

	return out
}
