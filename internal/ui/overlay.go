//go:build ebiten

package ui

import (
	"image/color"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
	"grain-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type fieldProvider interface {
	Field() *grain.Field
}

// Overlay shows the cell under the cursor and handles grain selection:
// left click selects the grain under the cursor, right click releases it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	info  string

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update polls the cursor. It is a no-op for engines without a field.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		o.show = !o.show
	}
	provider, ok := o.sim.(fieldProvider)
	if !ok {
		o.info = ""
		return
	}
	f := provider.Field()
	mx, my := ebiten.CursorPosition()
	x, y, in := render.CellAt(mx, my, o.scale, f.W, f.H)
	if !in {
		o.info = ""
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.SelectState(f.Cell(x, y).State())
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		f.DeselectState(f.Cell(x, y).State())
	}
	o.info = CellInfo(f, x, y)
}

// Draw paints the readout along the bottom edge of the field view.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.info == "" {
		return
	}
	face := basicfont.Face7x13
	size := o.sim.Size()
	h := size.H * o.scale
	bounds := text.BoundString(face, o.info)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+8), 18)
	op.GeoM.Translate(0, float64(h-18))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0, G: 0, B: 0, A: 180})
	screen.DrawImage(o.pixel, op)
	text.Draw(screen, o.info, face, 4, h-5, color.White)
}
