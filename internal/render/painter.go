//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image per grid and refreshes it from cell colors.
type GridPainter struct {
	w, h   int
	img    *ebiten.Image
	buf    []byte
	colors []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), colors: make([]color.RGBA, w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Colors returns the scratch slice callers fill before Blit.
func (gp *GridPainter) Colors() []color.RGBA { return gp.colors }

// Blit uploads the scratch colors and draws them scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, scale int) {
	FillRGBA(gp.buf, gp.colors)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
