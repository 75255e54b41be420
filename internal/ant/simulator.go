package ant

import (
	"langton/internal/core"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Simulator owns the grid and the ant for the duration of a run and drives
// Step over them. It is not safe for concurrent use.
type Simulator struct {
	cfg   Config
	start Ant
	grid  *core.Grid
	ant   Ant
	steps int
	err   error
}

// NewSimulator validates cfg and builds an all-White grid with the ant at its
// starting position. cfg.Steps is only used by RunConfigured.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	facing, _ := ParseDirection(cfg.Facing)
	grid := core.NewGrid(cfg.Rows, cfg.Cols)
	start, err := NewAnt(grid, cfg.Row, cfg.Col, facing)
	if err != nil {
		return nil, err
	}
	return &Simulator{cfg: cfg, start: start, grid: grid, ant: start}, nil
}

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() Config { return s.cfg }

// Ant returns a snapshot of the ant.
func (s *Simulator) Ant() Ant { return s.ant }

// Steps returns the number of steps committed so far.
func (s *Simulator) Steps() int { return s.steps }

// Err returns the error that halted the run, if any.
func (s *Simulator) Err() error { return s.err }

// Step advances one step. Once a step has failed the simulator is halted and
// every later call returns the same *StepError without touching the state.
func (s *Simulator) Step() error {
	if s.err != nil {
		return s.err
	}
	if err := Step(s.grid, &s.ant); err != nil {
		s.err = &StepError{Step: s.steps + 1, Err: err}
		klog.V(1).Infof("run halted: %v", s.err)
		return s.err
	}
	s.steps++
	if klog.V(3).Enabled() {
		klog.Infof("step %d: ant at (%d, %d) facing %s", s.steps, s.ant.row, s.ant.col, s.ant.facing)
	}
	return nil
}

// Run applies exactly n steps, stopping at the first failure.
func (s *Simulator) Run(n int) error {
	if n < 0 {
		return errors.WithMessagef(ErrInvalidArgument, "steps must be >= 0, got %d", n)
	}
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunConfigured runs the number of steps given in the configuration.
func (s *Simulator) RunConfigured() error { return s.Run(s.cfg.Steps) }

// Reset restores the all-White grid and the starting ant, clearing any error.
func (s *Simulator) Reset() {
	s.grid.Clear()
	s.ant = s.start
	s.steps = 0
	s.err = nil
}

// Frame renders the current state.
func (s *Simulator) Frame() Frame { return Render(s.grid, s.ant) }

// ComputeFinalGrid runs a simulation on a rows x cols all-White grid and
// returns the final frame, using '.' for White, '#' for Black and the ant's
// glyph at its final position. No frame is returned when the run fails.
func ComputeFinalGrid(rows, cols, antRow, antCol int, glyph byte, steps int) (Frame, error) {
	sim, err := NewSimulator(Config{Rows: rows, Cols: cols, Row: antRow, Col: antCol, Facing: glyph, Steps: steps})
	if err != nil {
		return nil, err
	}
	if err := sim.RunConfigured(); err != nil {
		return nil, err
	}
	return sim.Frame(), nil
}
