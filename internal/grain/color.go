package grain

import (
	"image/color"

	"grain-ca/internal/core"
)

// FadeStep scales how quickly grain colors darken as ids grow.
const FadeStep = 5

var (
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack     = color.RGBA{A: 255}
	colorGrey      = color.RGBA{R: 125, G: 124, B: 125, A: 255}
	colorHighlight = color.RGBA{R: 255, G: 182, B: 193, A: 255}
)

// fade keeps 70 levels of headroom so no band collapses to black or white.
func fade(state int) uint8 {
	v := state / 3 * FadeStep
	return uint8(min(max(v, 0), 255-70))
}

// StateColor maps a grain id onto one of five hue bands.
func StateColor(state int) color.RGBA {
	if state == Inclusion {
		return colorBlack
	}
	if state <= 0 {
		return colorWhite
	}
	f := fade(state)
	switch state % 5 {
	case 0:
		return color.RGBA{B: 255 - f, A: 255}
	case 1:
		return color.RGBA{G: 255 - f, A: 255}
	case 2:
		return color.RGBA{R: 255 - f, A: 255}
	case 3:
		return color.RGBA{G: 255 - f, B: 255 - f, A: 255}
	default:
		return color.RGBA{R: 255 - f, G: 255 - f, A: 255}
	}
}

// Color returns the display color of the cell.
func (c *Cell) Color() color.RGBA {
	switch {
	case c.state == Inclusion:
		return colorBlack
	case c.lock == Selected:
		return colorHighlight
	case c.lock == DualPhase:
		return colorGrey
	}
	return StateColor(c.state)
}

// EnergyColor shades stored energy from blue (none) to red (maxEnergy).
func EnergyColor(energy, maxEnergy int) color.RGBA {
	if maxEnergy <= 0 || energy <= 0 {
		return color.RGBA{B: 160, A: 255}
	}
	t := float64(min(energy, maxEnergy)) / float64(maxEnergy)
	return color.RGBA{R: uint8(255 * t), G: uint8(60 * (1 - t)), B: uint8(160 * (1 - t)), A: 255}
}

// Colors writes one color per cell into dst in row-major order.
func (f *Field) Colors(dst []color.RGBA, view core.View) {
	if len(dst) < f.Len() {
		return
	}
	maxEnergy := 0
	if view == core.ViewEnergy {
		maxEnergy = f.MaxEnergy()
	}
	for i := range f.cells {
		c := &f.cells[i]
		switch {
		case view == core.ViewEnergy && c.state != Inclusion:
			dst[i] = EnergyColor(c.energy, maxEnergy)
		default:
			dst[i] = c.Color()
		}
	}
}
