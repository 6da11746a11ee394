// SPDX-License-Identifier: MIT

package som

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/kohonen/vector"
)

// Event describes one finished training iteration. It is delivered to the
// observer registered with WithObserver after that iteration's update.
type Event struct {
	Iteration    int            // 1-based
	Total        int            // iterations in this run
	Input        *vector.Vector // sampled input (live, do not mutate)
	BMU          *Cell          // best-matching cell (live)
	BMUDistance  float64        // DistanceOf(BMU.Weight, Input) before the update
	Radius       float64        // neighbourhood radius used
	LearningRate float64        // learning rate used
	Updated      int            // cells inside the radius
}

// Option configures a Trainer. Invalid options are recorded and surfaced as
// ErrOptionViolation by NewTrainer.
type Option func(*Options)

// Options holds the resolved Trainer configuration.
type Options struct {
	// Seed seeds the trainer's own RNG when Rand is nil. 0 ⇒ fixed default.
	Seed int64

	// Rand, if set, is used as-is for input sampling. The Trainer takes
	// ownership; do not share it with other goroutines.
	Rand *rand.Rand

	// Observer is called after every iteration. Nil disables it.
	Observer func(Event)

	err error
}

// DefaultOptions returns Options with seed 0 (fixed default stream), no
// injected RNG and no observer.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed makes input sampling reproducible from seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRand injects the RNG used for sampling. A nil r is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithObserver registers fn to receive an Event after every iteration.
func WithObserver(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// gatherOptions applies opts left to right over DefaultOptions.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
