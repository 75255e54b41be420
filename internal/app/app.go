//go:build ebiten

package app

import (
	"fmt"

	"langton/internal/ant"
	"langton/internal/core"
	"langton/internal/render"
	"langton/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"k8s.io/klog/v2"
)

// maxStepsPerTick bounds the catch-up work done in a single Update.
const maxStepsPerTick = 4096

// Game adapts an ant simulation to the ebiten.Game interface.
type Game struct {
	sim     *ant.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep

	scale    int
	limit    int
	paused   bool
	tickOnce bool
	halted   bool
}

// New constructs a Game for the provided simulation.
func New(sim *ant.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		clock:   core.NewFixedStep(cfg.SPS),
		scale:   cfg.Scale,
		limit:   cfg.Limit,
	}
}

// Reset restarts the run from its initial state.
func (g *Game) Reset() {
	g.sim.Reset()
	g.tickOnce = false
	g.halted = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.clock.SetRate(g.clock.Rate() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.clock.Rate() > 1 {
		g.clock.SetRate(g.clock.Rate() / 2)
	}

	g.overlay.Update()

	due := g.clock.Due(maxStepsPerTick)
	if g.paused {
		due = 0
	}
	if g.tickOnce {
		due = 1
		g.tickOnce = false
	}
	g.advance(due)

	g.hud.Update(g.hints())
	return nil
}

func (g *Game) advance(n int) {
	for i := 0; i < n && !g.halted; i++ {
		if g.limit > 0 && g.sim.Simulator().Steps() >= g.limit {
			g.paused = true
			return
		}
		if err := g.sim.Step(); err != nil {
			g.halted = true
			klog.Warningf("Run halted: %v", err)
		}
	}
}

func (g *Game) hints() []string {
	state := "running"
	switch {
	case g.halted:
		state = "halted"
	case g.paused:
		state = "paused"
	}
	return []string{
		fmt.Sprintf("%s at %d steps/s", state, g.clock.Rate()),
		"space pause  n step",
		"up/down speed  r reset",
		"g grid  m marker  q quit",
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// ScreenSize returns the pixel size of the grid view plus the HUD panel.
func (g *Game) ScreenSize() (int, int) {
	s := g.sim.Size()
	h := s.H * g.scale
	if g.hud.Width() > 0 && h < ui.MinPanelHeight {
		h = ui.MinPanelHeight
	}
	return s.W*g.scale + g.hud.Width(), h
}
