// Package mc relaxes grain boundaries with a zero-temperature Potts Monte
// Carlo sweep.
package mc

import (
	"image/color"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
)

// Engine migrates grain boundaries by greedy energy minimisation. Cells are
// visited in a fresh random order every sweep and see earlier flips of the
// same sweep.
//
// A flip is accepted whenever it does not raise the boundary energy. There is
// no temperature term.
type Engine struct {
	cfg   Config
	field *grain.Field
	rng   core.Source
	last  core.StepStats
}

// New returns an engine relaxing an existing field.
func New(f *grain.Field, rng core.Source) *Engine {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = f.W, f.H
	return &Engine{cfg: cfg, field: f, rng: rng}
}

// NewWithConfig returns an engine with its own randomly filled field.
func NewWithConfig(cfg Config) *Engine {
	e := &Engine{cfg: cfg}
	e.Reset(0)
	return e
}

func (e *Engine) Name() string                         { return "mc" }
func (e *Engine) Size() core.Size                      { return e.field.Size() }
func (e *Engine) Mode() core.UpdateMode                { return core.Asynchronous }
func (e *Engine) Field() *grain.Field                  { return e.field }
func (e *Engine) Iteration() int                       { return e.field.Iteration() }
func (e *Engine) LastStep() core.StepStats             { return e.last }
func (e *Engine) Colors(dst []color.RGBA, v core.View) { e.field.Colors(dst, v) }

// Done reports whether the last sweep left every cell unchanged.
func (e *Engine) Done() bool { return e.field.Iteration() > 0 && e.last.Changed == 0 }

// Reset places inclusions and scatters random ids over the remaining cells.
func (e *Engine) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	e.rng = core.NewRNG(effective)
	e.field = grain.New(e.cfg.Width, e.cfg.Height)
	e.field.RandomInclusions(e.rng, e.cfg.Inclusions, e.cfg.InclusionSize, e.cfg.InclusionShape)
	e.field.FillRandom(e.rng, e.cfg.States)
	e.last = core.StepStats{}
}

// Step performs one sweep over every cell.
func (e *Engine) Step() {
	f := e.field
	changed := 0
	var pool [8]int
	for _, p := range f.Shuffled(e.rng) {
		c := f.Cell(p.X, p.Y)
		if c.IsLocked() {
			continue
		}
		n := 0
		for _, s := range f.Moore(p.X, p.Y) {
			nc := s.Cell()
			if nc == nil || nc.IsLocked() || nc.State() == c.State() {
				continue
			}
			pool[n] = nc.State()
			n++
		}
		if n == 0 {
			continue
		}
		candidate := pool[e.rng.IntN(n)]
		before := f.BoundaryEnergy(p.X, p.Y)
		after := f.BoundaryEnergyAs(p.X, p.Y, candidate, false)
		if after-before <= 0 {
			c.SetState(candidate)
			changed++
		}
	}
	f.Tick()
	e.last = core.StepStats{Iteration: f.Iteration(), Changed: changed}
}

func init() {
	core.Register("mc", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
