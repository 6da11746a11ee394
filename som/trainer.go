// SPDX-License-Identifier: MIT

package som

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/kohonen/vector"
)

// State is the lifecycle state of a Trainer.
type State int

const (
	// Idle: constructed, or the last run failed.
	Idle State = iota
	// Running: inside Start.
	Running
	// Complete: the last run finished all iterations.
	Complete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return "idle"
	}
}

// Handler receives the live map during a run. A non-nil error aborts Start
// and is returned to its caller, wrapped.
type Handler func(m *Map) error

// Trainer runs the SOM learning loop over one Map with one Calculator.
// It owns its RNG and the transient state of the current run; it does not
// own the Map, which callers read after training.
type Trainer struct {
	m        *Map
	calc     Calculator
	rng      *rand.Rand
	observer func(Event)

	// per-run state, overwritten by every Start
	inputs    []*vector.Vector
	total     int
	iteration int
	state     State
}

// NewTrainer prepares a trainer for m using calc.
// Returns ErrNilMap, ErrNilCalculator or ErrOptionViolation.
func NewTrainer(m *Map, calc Calculator, opts ...Option) (*Trainer, error) {
	if m == nil {
		return nil, fmt.Errorf("som.NewTrainer: %w", ErrNilMap)
	}
	if calc == nil {
		return nil, fmt.Errorf("som.NewTrainer: %w", ErrNilCalculator)
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("som.NewTrainer: %w", err)
	}
	rng := o.Rand
	if rng == nil {
		rng = rngFromSeed(o.Seed)
	}

	return &Trainer{m: m, calc: calc, rng: rng, observer: o.Observer, state: Idle}, nil
}

// Map returns the trained map (live).
func (t *Trainer) Map() *Map { return t.m }

// State returns the lifecycle state.
func (t *Trainer) State() State { return t.state }

// Iteration returns the 1-based iteration currently running or last run.
func (t *Trainer) Iteration() int { return t.iteration }

// Total returns the iteration count of the current or last run.
func (t *Trainer) Total() int { return t.total }

// Start trains the map for iterations steps, sampling from inputs.
//
// Validation happens before anything runs and leaves the map untouched:
//   - iterations <= 0        ⇒ ErrInvalidIterationCount
//   - len(inputs) == 0       ⇒ ErrEmptyInputSet
//   - nil input              ⇒ ErrNilInput
//   - input dim ≠ map dim    ⇒ vector.ErrDimensionMismatch
//   - called from a callback ⇒ ErrRunInProgress
//
// onStep (optional) fires at the start of every iteration, before that
// iteration's update, with the live map. onComplete (optional) fires once
// after the last iteration. Errors from callbacks or from the Calculator
// abort the run; cells already updated stay updated.
//
// Start is synchronous. Calling it again after it returns, or after a
// recovered panic from a callback or the Calculator, begins a fresh run.
func (t *Trainer) Start(inputs []*vector.Vector, iterations int, onComplete, onStep Handler) error {
	if t.state == Running {
		return fmt.Errorf("som.Start: %w", ErrRunInProgress)
	}
	if iterations <= 0 {
		return fmt.Errorf("som.Start(%d): %w", iterations, ErrInvalidIterationCount)
	}
	if len(inputs) == 0 {
		return fmt.Errorf("som.Start: %w", ErrEmptyInputSet)
	}
	for i, in := range inputs {
		if in == nil {
			return fmt.Errorf("som.Start: input %d: %w", i, ErrNilInput)
		}
		if in.Dim() != t.m.dim {
			return fmt.Errorf("som.Start: input %d has dim %d, map dim %d: %w",
				i, in.Dim(), t.m.dim, vector.ErrDimensionMismatch)
		}
	}

	t.inputs = make([]*vector.Vector, len(inputs))
	copy(t.inputs, inputs)
	t.total = iterations
	t.iteration = 0
	t.state = Running
	// a failed or panicking run leaves the trainer ready for a fresh one
	defer func() {
		if t.state == Running {
			t.state = Idle
		}
	}()

	for i := 1; i <= t.total; i++ {
		t.iteration = i
		if onStep != nil {
			if err := onStep(t.m); err != nil {
				return trainerErrorf("Start: step callback", i, err)
			}
		}
		if err := t.applyInput(i); err != nil {
			return err
		}
	}

	t.state = Complete
	if onComplete != nil {
		if err := onComplete(t.m); err != nil {
			return fmt.Errorf("som.Start: complete callback: %w", err)
		}
	}

	return nil
}

// applyInput performs one iteration: sample, find the BMU, then pull every
// cell strictly inside the neighbourhood radius toward the input.
func (t *Trainer) applyInput(iteration int) error {
	input := t.choice()
	bmu, bmuDist, err := t.findBMU(input)
	if err != nil {
		return trainerErrorf("applyInput", iteration, err)
	}
	radius := t.calc.NeighbourhoodRadius(iteration, t.total)
	rate := t.calc.LearningRate(iteration, t.total)

	updated := 0
	for c := range t.m.All() {
		d, err := t.calc.MapDistanceOf(c, bmu)
		if err != nil {
			return trainerErrorf("applyInput", iteration, err)
		}
		// cells exactly on the boundary are excluded
		if d < radius {
			if err = t.adjust(c, input, d, radius, rate); err != nil {
				return trainerErrorf("applyInput", iteration, err)
			}
			updated++
		}
	}

	if t.observer != nil {
		t.observer(Event{
			Iteration:    iteration,
			Total:        t.total,
			Input:        input,
			BMU:          bmu,
			BMUDistance:  bmuDist,
			Radius:       radius,
			LearningRate: rate,
			Updated:      updated,
		})
	}

	return nil
}

// choice samples one input uniformly, with replacement.
func (t *Trainer) choice() *vector.Vector {
	return t.inputs[t.rng.Intn(len(t.inputs))]
}

// findBMU returns the first cell, in construction order, whose weight is
// strictly closer to input than every earlier cell.
func (t *Trainer) findBMU(input *vector.Vector) (*Cell, float64, error) {
	var bmu *Cell
	best := math.MaxFloat64
	for c := range t.m.All() {
		d, err := t.calc.DistanceOf(c.weight, input)
		if err != nil {
			return nil, 0, err
		}
		if d < best {
			best = d
			bmu = c
		}
	}
	if bmu == nil {
		return nil, 0, ErrNoBestMatch
	}

	return bmu, best, nil
}

// adjust applies W(t+1) = W(t) + θ(t)·L(t)·(V(t) − W(t)) to c in place.
func (t *Trainer) adjust(c *Cell, input *vector.Vector, distance, radius, rate float64) error {
	theta := t.calc.Influence(c, distance, radius)
	diff, err := vector.Sub(input, c.weight)
	if err != nil {
		return err
	}
	_, err = c.weight.Add(diff.Scale(theta * rate))

	return err
}
