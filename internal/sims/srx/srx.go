// Package srx simulates static recrystallization: nuclei of strain-free
// grains grow into stored-energy material and new nuclei appear on a
// schedule.
package srx

import (
	"image/color"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
	"grain-ca/internal/sims/mc"
)

// Engine advances recrystallization fronts with asynchronous Monte Carlo
// sweeps.
type Engine struct {
	cfg    Config
	field  *grain.Field
	rng    core.Source
	last   core.StepStats
	sweeps int
}

// New returns an engine recrystallizing an existing field. The field should
// already carry stored energy and recrystallized nuclei.
func New(f *grain.Field, sched Schedule, onBoundary bool, rng core.Source) *Engine {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = f.W, f.H
	cfg.Schedule = sched
	cfg.OnBoundary = onBoundary
	return &Engine{cfg: cfg, field: f, rng: rng}
}

// NewWithConfig returns an engine with its own prepared field.
func NewWithConfig(cfg Config) *Engine {
	e := &Engine{cfg: cfg}
	e.Reset(0)
	return e
}

func (e *Engine) Name() string                         { return "srxmc" }
func (e *Engine) Size() core.Size                      { return e.field.Size() }
func (e *Engine) Mode() core.UpdateMode                { return core.Asynchronous }
func (e *Engine) Field() *grain.Field                  { return e.field }
func (e *Engine) Iteration() int                       { return e.field.Iteration() }
func (e *Engine) LastStep() core.StepStats             { return e.last }
func (e *Engine) Colors(dst []color.RGBA, v core.View) { e.field.Colors(dst, v) }

// Sweeps returns the number of sweeps since Reset. Unlike Iteration it is not
// cleared when nuclei are added.
func (e *Engine) Sweeps() int { return e.sweeps }

// Done reports whether all stored energy has been consumed.
func (e *Engine) Done() bool { return e.field.EnergyDepleted() }

// Reset builds a relaxed MC microstructure, distributes stored energy and
// places the initial nuclei.
func (e *Engine) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = e.cfg.Seed
	}
	rng := core.NewRNG(effective)
	e.rng = rng
	f := grain.New(e.cfg.Width, e.cfg.Height)
	f.RandomInclusions(rng, e.cfg.Inclusions, e.cfg.InclusionSize, e.cfg.InclusionShape)
	f.FillRandom(rng, e.cfg.States)
	relax := mc.New(f, rng)
	for i := 0; i < e.cfg.Sweeps; i++ {
		relax.Step()
	}
	f.ResetIteration()
	// FillRandom leaves no empty cell, so the field is full here.
	_ = f.DistributeEnergy(e.cfg.Distribution, e.cfg.Inside, e.cfg.OnEdges)
	f.AddRecrystallizedGrains(rng, e.cfg.InitialNuclei, e.cfg.OnBoundary)
	e.field = f
	e.sweeps = 0
	e.last = core.StepStats{}
}

// Step performs one sweep and then runs the nucleation schedule.
func (e *Engine) Step() {
	f := e.field
	changed := 0
	var fronts [8]int
	for _, p := range f.Shuffled(e.rng) {
		c := f.Cell(p.X, p.Y)
		if c.IsLocked() || c.Lock() == grain.Recrystallized {
			continue
		}
		n := 0
		for _, s := range f.Moore(p.X, p.Y) {
			if nc := s.Cell(); nc != nil && nc.Lock() == grain.Recrystallized {
				fronts[n] = nc.State()
				n++
			}
		}
		if n == 0 {
			continue
		}
		candidate := fronts[e.rng.IntN(n)]
		before := f.BoundaryEnergyAs(p.X, p.Y, c.State(), true)
		after := f.BoundaryEnergyAs(p.X, p.Y, candidate, false)
		if after <= before {
			c.SetState(candidate)
			c.SetLock(grain.Recrystallized)
			changed++
		}
	}
	f.Tick()
	e.sweeps++

	nucleated := 0
	if k := e.cfg.Schedule.Due(e.sweeps); k > 0 {
		nucleated = f.AddRecrystallizedGrains(e.rng, k, e.cfg.OnBoundary)
	}
	e.last = core.StepStats{Iteration: f.Iteration(), Changed: changed, Nucleated: nucleated}
}

func init() {
	core.Register("srxmc", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
