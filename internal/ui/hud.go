//go:build ebiten

package ui

import (
	"image/color"

	"langton/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	lines      []hudLine
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Update refreshes the lines shown by the panel. hints are appended after the
// simulation's parameters.
func (h *HUD) Update(hints []string) {
	if h == nil {
		return
	}
	var snapshot core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snapshot = provider.Parameters()
	}
	h.lines = buildLines(h.title, snapshot, hints)
}

// Draw paints the HUD panel at offsetX, next to the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height < MinPanelHeight {
		height = MinPanelHeight
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	maxChars := (h.width - 2*panelPadding) / glyphWidth
	y := panelPadding + lineHeight
	for _, line := range h.lines {
		switch line.kind {
		case lineTitle:
			text.Draw(h.panel, line.label, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		case lineHeader:
			text.Draw(h.panel, line.label, face, panelPadding, y, color.RGBA{R: 120, G: 170, B: 220, A: 255})
		case lineParam:
			text.Draw(h.panel, line.label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			valueX := panelPadding + valueColumn
			for i, chunk := range wrapValue(line.value, maxChars-valueColumn/glyphWidth) {
				if i > 0 {
					y += lineHeight
				}
				text.Draw(h.panel, chunk, face, valueX, y, color.RGBA{R: 240, G: 200, B: 120, A: 255})
			}
		case lineHint:
			text.Draw(h.panel, line.label, face, panelPadding, y, color.RGBA{R: 140, G: 140, B: 150, A: 255})
		}
		y += lineHeight
	}
}

// Width returns the width of the panel in pixels.
func (h *HUD) Width() int { return h.width }

const (
	panelPadding = 12
	lineHeight   = 16
	glyphWidth   = 7
	valueColumn  = 56
)
