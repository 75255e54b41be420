package ant

import "image/color"

var antPalette = []color.RGBA{
	White:                     {R: 236, G: 236, B: 228, A: 255},
	Black:                     {R: 24, G: 24, B: 28, A: 255},
	DisplayAnt + uint8(Up):    {R: 220, G: 50, B: 47, A: 255},
	DisplayAnt + uint8(Right): {R: 220, G: 50, B: 47, A: 255},
	DisplayAnt + uint8(Down):  {R: 220, G: 50, B: 47, A: 255},
	DisplayAnt + uint8(Left):  {R: 220, G: 50, B: 47, A: 255},
}

// Palette maps display values from Cells to colors.
func (s *Sim) Palette() []color.RGBA {
	return antPalette
}
