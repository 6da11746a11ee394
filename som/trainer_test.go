// SPDX-License-Identifier: MIT

package som_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/kohonen/som"
	"github.com/katalvlaran/kohonen/vector"
)

// TrainerSuite exercises Trainer.Start on small deterministic maps.
type TrainerSuite struct {
	suite.Suite
	m     *som.Map
	input []*vector.Vector
}

// SetupTest builds a 2×2 map of 3-dim zero weights and a single [1,1,1] input.
func (s *TrainerSuite) SetupTest() {
	s.m = zeroGrid(s.T(), 2, 2, 3)
	s.input = []*vector.Vector{mustVec(s.T(), 1, 1, 1)}
}

func (s *TrainerSuite) newTrainer(calc som.Calculator, opts ...som.Option) *som.Trainer {
	tr, err := som.NewTrainer(s.m, calc, opts...)
	require.NoError(s.T(), err)

	return tr
}

// TestFullUpdate: rate 1, influence 1, radius covering the whole map ⇒
// every cell lands on the input after one iteration.
func (s *TrainerSuite) TestFullUpdate() {
	tr := s.newTrainer(constCalc(10, 1, 1))
	require.NoError(s.T(), tr.Start(s.input, 1, nil, nil))

	for _, w := range weights(s.m) {
		require.Equal(s.T(), []float64{1, 1, 1}, w)
	}
	require.Equal(s.T(), som.Complete, tr.State())
}

// TestHalfInfluence: influence 0.5 ⇒ every cell moves half way.
func (s *TrainerSuite) TestHalfInfluence() {
	tr := s.newTrainer(constCalc(10, 0.5, 1))
	require.NoError(s.T(), tr.Start(s.input, 1, nil, nil))

	for _, w := range weights(s.m) {
		require.Equal(s.T(), []float64{0.5, 0.5, 0.5}, w)
	}
}

// TestBMUOnly: a radius below the grid spacing updates the BMU alone. All
// cells tie, so the first cell in construction order is the BMU.
func (s *TrainerSuite) TestBMUOnly() {
	var bmu *som.Cell
	tr := s.newTrainer(constCalc(0.5, 1, 1), som.WithObserver(func(e som.Event) {
		bmu = e.BMU
		require.Equal(s.T(), 1, e.Updated)
		require.Equal(s.T(), math.Sqrt(3), e.BMUDistance)
	}))
	require.NoError(s.T(), tr.Start(s.input, 1, nil, nil))

	first, err := s.m.Locate(som.Position{X: 0, Y: 0})
	require.NoError(s.T(), err)
	require.Same(s.T(), first, bmu)

	changed := 0
	s.m.ForEachCell(func(c *som.Cell) {
		if c == first {
			require.Equal(s.T(), []float64{1, 1, 1}, c.Weight().Values())
			changed++
			return
		}
		require.Equal(s.T(), []float64{0, 0, 0}, c.Weight().Values())
	})
	require.Equal(s.T(), 1, changed)
}

// TestRadiusBoundaryExcluded: cells at exactly the radius are not updated.
func (s *TrainerSuite) TestRadiusBoundaryExcluded() {
	tr := s.newTrainer(constCalc(1, 1, 1))
	require.NoError(s.T(), tr.Start(s.input, 1, nil, nil))

	// BMU (0,0) is the only cell with map distance < 1.
	got := weights(s.m)
	require.Equal(s.T(), []float64{1, 1, 1}, got[0])
	for _, w := range got[1:] {
		require.Equal(s.T(), []float64{0, 0, 0}, w)
	}
}

// TestCallbackCounts: N step calls, then exactly one completion call.
func (s *TrainerSuite) TestCallbackCounts() {
	const n = 7
	var trace []string
	step := func(m *som.Map) error {
		require.Same(s.T(), s.m, m, "callbacks receive the live map")
		trace = append(trace, "step")
		return nil
	}
	done := func(m *som.Map) error {
		trace = append(trace, "done")
		return nil
	}

	tr := s.newTrainer(constCalc(10, 0.5, 0.5))
	require.NoError(s.T(), tr.Start(s.input, n, done, step))

	require.Len(s.T(), trace, n+1)
	for i := 0; i < n; i++ {
		require.Equal(s.T(), "step", trace[i])
	}
	require.Equal(s.T(), "done", trace[n])
	require.Equal(s.T(), n, tr.Iteration())
	require.Equal(s.T(), n, tr.Total())
}

// TestStepSeesPreUpdateState: the step callback fires before the update of
// its own iteration.
func (s *TrainerSuite) TestStepSeesPreUpdateState() {
	var seen [][]float64
	step := func(m *som.Map) error {
		first, err := m.Locate(som.Position{})
		if err != nil {
			return err
		}
		seen = append(seen, first.Weight().Values())
		return nil
	}
	tr := s.newTrainer(constCalc(10, 1, 1))
	require.NoError(s.T(), tr.Start(s.input, 2, nil, step))

	require.Equal(s.T(), [][]float64{{0, 0, 0}, {1, 1, 1}}, seen)
}

// TestValidation: invalid arguments fail before any callback or mutation.
func (s *TrainerSuite) TestValidation() {
	cases := []struct {
		name       string
		inputs     []*vector.Vector
		iterations int
		err        error
	}{
		{"ZeroIterations", s.input, 0, som.ErrInvalidIterationCount},
		{"NegativeIterations", s.input, -3, som.ErrInvalidIterationCount},
		{"NoInputs", nil, 5, som.ErrEmptyInputSet},
		{"NilInput", []*vector.Vector{s.input[0], nil}, 5, som.ErrNilInput},
		{"DimMismatch", []*vector.Vector{mustVec(s.T(), 1, 1)}, 5, vector.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			calls := 0
			cb := func(*som.Map) error { calls++; return nil }
			tr := s.newTrainer(constCalc(10, 1, 1))

			err := tr.Start(tc.inputs, tc.iterations, cb, cb)
			require.ErrorIs(s.T(), err, tc.err)
			require.Zero(s.T(), calls)
			require.Equal(s.T(), som.Idle, tr.State())
			for _, w := range weights(s.m) {
				require.Equal(s.T(), []float64{0, 0, 0}, w)
			}
		})
	}
}

// TestStepErrorAborts: an error from the step callback stops the run.
func (s *TrainerSuite) TestStepErrorAborts() {
	errStop := errors.New("stop")
	steps, done := 0, 0
	step := func(*som.Map) error {
		steps++
		if steps == 3 {
			return errStop
		}
		return nil
	}
	tr := s.newTrainer(constCalc(10, 0.5, 1))

	err := tr.Start(s.input, 10, func(*som.Map) error { done++; return nil }, step)
	require.ErrorIs(s.T(), err, errStop)
	require.Equal(s.T(), 3, steps)
	require.Zero(s.T(), done)
	require.Equal(s.T(), som.Idle, tr.State())
	// two iterations ran: 0 → 0.5 → 0.75
	for _, w := range weights(s.m) {
		require.Equal(s.T(), []float64{0.75, 0.75, 0.75}, w)
	}
}

// TestCalculatorErrorLeavesPartialUpdate: a failure in the middle of the
// neighbourhood pass keeps the cells already updated.
func (s *TrainerSuite) TestCalculatorErrorLeavesPartialUpdate() {
	errBroken := errors.New("broken topology")
	calc := constCalc(10, 1, 1)
	calls := 0
	calc.mapDist = func(a, b *som.Cell) (float64, error) {
		calls++
		if calls == 3 {
			return 0, errBroken
		}
		return gridDist(a, b)
	}
	tr := s.newTrainer(calc)

	err := tr.Start(s.input, 5, nil, nil)
	require.ErrorIs(s.T(), err, errBroken)
	require.Equal(s.T(), [][]float64{{1, 1, 1}, {1, 1, 1}, {0, 0, 0}, {0, 0, 0}}, weights(s.m))
}

// TestNoBestMatch: NaN distances leave no BMU.
func (s *TrainerSuite) TestNoBestMatch() {
	calc := constCalc(10, 1, 1)
	calc.dist = func(*vector.Vector, *vector.Vector) (float64, error) { return math.NaN(), nil }
	tr := s.newTrainer(calc)

	require.ErrorIs(s.T(), tr.Start(s.input, 1, nil, nil), som.ErrNoBestMatch)
}

// TestReentrantStart: Start from inside a callback is rejected; Start after
// completion begins a fresh run.
func (s *TrainerSuite) TestReentrantStart() {
	tr := s.newTrainer(constCalc(10, 0.5, 1))
	step := func(*som.Map) error {
		return tr.Start(s.input, 1, nil, nil)
	}
	require.ErrorIs(s.T(), tr.Start(s.input, 2, nil, step), som.ErrRunInProgress)

	require.NoError(s.T(), tr.Start(s.input, 4, nil, nil))
	require.Equal(s.T(), som.Complete, tr.State())
	require.Equal(s.T(), 4, tr.Total())

	require.NoError(s.T(), tr.Start(s.input, 2, nil, nil))
	require.Equal(s.T(), 2, tr.Total())
	require.Equal(s.T(), som.Complete, tr.State())
}

// TestPanicInStepResetsState: a recovered panic from a callback does not
// leave the trainer stuck in Running.
func (s *TrainerSuite) TestPanicInStepResetsState() {
	tr := s.newTrainer(constCalc(10, 0.5, 1))
	step := func(*som.Map) error { panic("abort") }

	require.PanicsWithValue(s.T(), "abort", func() {
		_ = tr.Start(s.input, 3, nil, step)
	})
	require.Equal(s.T(), som.Idle, tr.State())

	require.NoError(s.T(), tr.Start(s.input, 1, nil, nil))
	require.Equal(s.T(), som.Complete, tr.State())
}

// TestPanicInCalculatorResetsState: the same holds for a Calculator panic.
func (s *TrainerSuite) TestPanicInCalculatorResetsState() {
	calc := constCalc(10, 1, 1)
	calc.dist = func(*vector.Vector, *vector.Vector) (float64, error) { panic("bad metric") }
	tr := s.newTrainer(calc)

	require.Panics(s.T(), func() { _ = tr.Start(s.input, 1, nil, nil) })
	require.Equal(s.T(), som.Idle, tr.State())
}

// TestObserverEvents: one event per iteration, after the update.
func (s *TrainerSuite) TestObserverEvents() {
	var events []som.Event
	tr := s.newTrainer(constCalc(10, 1, 0.25), som.WithObserver(func(e som.Event) {
		events = append(events, e)
	}))
	require.NoError(s.T(), tr.Start(s.input, 3, nil, nil))

	require.Len(s.T(), events, 3)
	for i, e := range events {
		require.Equal(s.T(), i+1, e.Iteration)
		require.Equal(s.T(), 3, e.Total)
		require.Equal(s.T(), 4, e.Updated)
		require.Equal(s.T(), 10.0, e.Radius)
		require.Equal(s.T(), 0.25, e.LearningRate)
	}
}

func TestTrainerSuite(t *testing.T) {
	suite.Run(t, new(TrainerSuite))
}

func TestNewTrainer_Errors(t *testing.T) {
	m := zeroGrid(t, 1, 1, 2)

	_, err := som.NewTrainer(nil, constCalc(1, 1, 1))
	require.ErrorIs(t, err, som.ErrNilMap)
	_, err = som.NewTrainer(m, nil)
	require.ErrorIs(t, err, som.ErrNilCalculator)
	_, err = som.NewTrainer(m, constCalc(1, 1, 1), som.WithRand(nil))
	require.ErrorIs(t, err, som.ErrOptionViolation)
}

// TestSeedReproducible: equal seeds give equal trained maps.
func TestSeedReproducible(t *testing.T) {
	inputs := []*vector.Vector{
		mustVec(t, 1, 0, 0),
		mustVec(t, 0, 1, 0),
		mustVec(t, 0, 0, 1),
		mustVec(t, 1, 1, 0),
	}
	calc := constCalc(1.5, 0.8, 0.3)

	run := func(opt som.Option) *som.Map {
		m, err := som.NewGridMap(4, 4, 3, rand.New(rand.NewSource(11)))
		require.NoError(t, err)
		tr, err := som.NewTrainer(m, calc, opt)
		require.NoError(t, err)
		require.NoError(t, tr.Start(inputs, 200, nil, nil))
		return m
	}

	a := run(som.WithSeed(42))
	b := run(som.WithRand(rand.New(rand.NewSource(42))))
	require.Equal(t, weights(a), weights(b))
}

func TestDeriveRand(t *testing.T) {
	a := som.DeriveRand(7, 1).Int63()
	b := som.DeriveRand(7, 1).Int63()
	c := som.DeriveRand(7, 2).Int63()
	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, som.DeriveRand(0, 3).Int63(), som.DeriveRand(1, 3).Int63())
}
