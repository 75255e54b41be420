//go:build ebiten

package ui

import (
	"image/color"

	"langton/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type antLocator interface {
	AntPosition() (row, col int)
}

// Overlay draws optional visual aids on top of the grid.
type Overlay struct {
	sim       core.Sim
	scale     int
	showGrid  bool
	markAnt   bool
	pixel     *ebiten.Image
	lineColor color.RGBA
	markColor color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{
		sim:       sim,
		scale:     scale,
		markAnt:   true,
		lineColor: color.RGBA{R: 128, G: 128, B: 128, A: 96},
		markColor: color.RGBA{R: 255, G: 200, B: 0, A: 255},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the aids: G for grid lines, M for the ant marker.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.markAnt = !o.markAnt
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showGrid && scale >= 4 {
		for x := 0; x <= size.W; x++ {
			o.fillRect(screen, x*scale, 0, 1, size.H*scale, o.lineColor)
		}
		for y := 0; y <= size.H; y++ {
			o.fillRect(screen, 0, y*scale, size.W*scale, 1, o.lineColor)
		}
	}
	if o.markAnt {
		if locator, ok := o.sim.(antLocator); ok {
			row, col := locator.AntPosition()
			x0, y0, x1, y1 := cellRect(row, col, scale)
			o.fillRect(screen, x0-1, y0-1, x1-x0+2, 1, o.markColor)
			o.fillRect(screen, x0-1, y1, x1-x0+2, 1, o.markColor)
			o.fillRect(screen, x0-1, y0, 1, y1-y0, o.markColor)
			o.fillRect(screen, x1, y0, 1, y1-y0, o.markColor)
		}
	}
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h int, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
