// Package ca grows grains into empty cells with a synchronous four-rule
// cellular automaton.
package ca

import (
	"image/color"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
)

// Engine advances a field by CA growth. Every pass reads only the snapshot
// taken at the end of the previous pass.
type Engine struct {
	cfg   Config
	field *grain.Field
	rng   core.Source
	last  core.StepStats
}

// New returns an engine growing an existing field.
func New(f *grain.Field, probability int, rng core.Source) *Engine {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = f.W, f.H
	cfg.Probability = probability
	return &Engine{cfg: cfg, field: f, rng: rng}
}

// NewWithConfig returns an engine with its own field, seeded per cfg.
func NewWithConfig(cfg Config) *Engine {
	e := &Engine{cfg: cfg}
	e.Reset(0)
	return e
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "ca" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return e.field.Size() }

// Mode reports that CA passes are two-phase.
func (e *Engine) Mode() core.UpdateMode { return core.Synchronous }

// Field exposes the lattice being grown.
func (e *Engine) Field() *grain.Field { return e.field }

// Iteration returns the number of completed passes.
func (e *Engine) Iteration() int { return e.field.Iteration() }

// Done reports whether growth has saturated the field.
func (e *Engine) Done() bool { return e.field.Full() }

// LastStep reports what the most recent pass changed.
func (e *Engine) LastStep() core.StepStats { return e.last }

// Colors writes the field colors in row-major order.
func (e *Engine) Colors(dst []color.RGBA, view core.View) { e.field.Colors(dst, view) }

// Reset rebuilds the field: inclusions first, then the configured nuclei.
// A zero seed reuses the configured one.
func (e *Engine) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	e.rng = core.NewRNG(effective)
	e.field = grain.New(e.cfg.Width, e.cfg.Height)
	e.field.RandomInclusions(e.rng, e.cfg.Inclusions, e.cfg.InclusionSize, e.cfg.InclusionShape)
	e.field.RandomGrains(e.rng, e.cfg.Grains)
	e.last = core.StepStats{}
}

// AddGrains places n new nuclei on free cells, for example after ClearField.
func (e *Engine) AddGrains(n int) int {
	return e.field.RandomGrains(e.rng, n)
}

// Step runs one synchronous pass: every empty unlocked cell decides its next
// state from the snapshot, then the snapshot is refreshed.
func (e *Engine) Step() {
	f := e.field
	changed := 0
	for p, c := range f.All() {
		if !c.CanBeModified() {
			continue
		}
		if next, ok := Decide(f.Moore(p.X, p.Y), e.cfg.Probability, e.rng); ok {
			c.SetState(next)
			changed++
		}
	}
	f.Commit()
	f.Tick()
	e.last = core.StepStats{Iteration: f.Iteration(), Changed: changed}
}

func init() {
	core.Register("ca", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
