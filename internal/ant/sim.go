package ant

import "langton/internal/core"

// DisplayAnt is the first display value used for the ant's cell; the ant is
// encoded as DisplayAnt+facing so viewers can draw its heading.
const DisplayAnt uint8 = 2

// Sim adapts a Simulator to core.Sim for the interactive viewers.
type Sim struct {
	sim     *Simulator
	display []uint8
}

// NewSim builds a Sim from cfg.
func NewSim(cfg Config) (*Sim, error) {
	sim, err := NewSimulator(cfg)
	if err != nil {
		return nil, err
	}
	return &Sim{sim: sim, display: make([]uint8, cfg.Rows*cfg.Cols)}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "langton" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size {
	return core.Size{W: s.sim.grid.Cols, H: s.sim.grid.Rows}
}

// Reset restarts the run from the configured starting state.
func (s *Sim) Reset() { s.sim.Reset() }

// Step advances the run by one step.
func (s *Sim) Step() error { return s.sim.Step() }

// Simulator exposes the underlying simulator.
func (s *Sim) Simulator() *Simulator { return s.sim }

// Cells returns a display buffer: the grid colors with the ant's cell set to
// DisplayAnt+facing. The buffer is rebuilt on every call and owned by s.
func (s *Sim) Cells() []uint8 {
	copy(s.display, s.sim.grid.Cells())
	a := s.sim.ant
	s.display[s.sim.grid.Index(a.row, a.col)] = DisplayAnt + uint8(a.facing)
	return s.display
}

// Parameters reports the configuration and run progress.
func (s *Sim) Parameters() core.ParameterSnapshot {
	cfg := s.sim.cfg
	a := s.sim.ant
	status := "running"
	if err := s.sim.Err(); err != nil {
		status = err.Error()
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("rows", "Rows", cfg.Rows),
				core.IntParam("cols", "Cols", cfg.Cols),
			},
		},
		{
			Name: "Ant",
			Params: []core.Parameter{
				core.IntParam("row", "Row", a.row),
				core.IntParam("col", "Col", a.col),
				core.StringParam("dir", "Facing", string(a.facing.Glyph())),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("step", "Step", s.sim.Steps()),
				core.StringParam("status", "Status", status),
			},
		},
	}}
}

// AntPosition returns the ant's current cell.
func (s *Sim) AntPosition() (row, col int) { return s.sim.ant.row, s.sim.ant.col }
