//go:build ebiten

package app

import (
	"time"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
	"grain-ca/internal/render"
	"grain-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type fieldEngine interface {
	Field() *grain.Field
}

type nucleator interface {
	AddGrains(n int) int
}

// grainsPerPress is how many nuclei the G key adds.
const grainsPerPress = 10

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	pacer   *core.FixedStep

	view     core.View
	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	hudWidth := max(cfg.HUDWidth, 0)
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, cfg.Scale),
		hud:      ui.NewHUD(sim, hudWidth),
		pacer:    core.NewFixedStep(cfg.SPS),
		scale:    cfg.Scale,
		hudWidth: hudWidth,
		seed:     cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	size := g.sim.Size()
	if w, h := g.painter.Size(); w != size.W || h != size.H {
		g.painter = render.NewGridPainter(size.W, size.H)
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.view = g.view.Next()
	}
	g.handleFieldKeys()

	g.overlay.Update()

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		for n := g.pacer.Due(); n > 0 && !g.sim.Done(); n-- {
			g.sim.Step()
		}
	}
	g.hud.Update(ui.Status{Paused: g.paused, View: g.view, Seed: g.seed})
	return nil
}

// handleFieldKeys applies the microstructure editing shortcuts: C clears
// unselected grains, D clears them leaving the selection as a dual phase,
// B turns every boundary into inclusions and G adds nuclei.
func (g *Game) handleFieldKeys() {
	fe, ok := g.sim.(fieldEngine)
	if !ok {
		return
	}
	f := fe.Field()
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		f.ClearField(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		f.ClearField(true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		f.AddBoundaryInclusions()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		if n, ok := g.sim.(nucleator); ok {
			n.AddGrains(grainsPerPress)
		}
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.Colors(g.painter.Colors(), g.view)
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
