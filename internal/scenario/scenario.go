// Package scenario drives a configured pipeline of engines over one field:
// nucleation, growth, optional coarsening and recrystallization.
package scenario

import (
	"context"
	"fmt"

	"grain-ca/internal/config"
	"grain-ca/internal/core"
	"grain-ca/internal/grain"
	"grain-ca/internal/sims/ca"
	"grain-ca/internal/sims/mc"
	"grain-ca/internal/sims/srx"
	"grain-ca/internal/telemetry"
)

// Result describes a finished run.
type Result struct {
	Field *grain.Field
	// Steps counts every engine step across all stages.
	Steps int
	// Done reports whether the final stage reached its natural end before
	// the iteration limit.
	Done  bool
	Stats grain.Stats
}

// Runner executes scenarios. Recorder and Metrics may be nil.
type Runner struct {
	Config   *config.Config
	Recorder *telemetry.Recorder
	Metrics  *telemetry.Metrics

	steps int
}

// Run executes the scenario with the given seed. Cancelling ctx stops it
// between steps.
func (r *Runner) Run(ctx context.Context, seed int64) (Result, error) {
	cfg := r.Config
	r.steps = 0
	rng := core.NewRNG(seed)
	f := grain.New(cfg.Field.Width, cfg.Field.Height)

	if !cfg.Derived.AfterGrowth {
		f.RandomInclusions(rng, cfg.Inclusions.Count, cfg.Inclusions.Size, cfg.Derived.Shape)
	}
	if cfg.Derived.Bulk {
		f.FillRandom(rng, cfg.Nucleation.Grains)
	} else {
		f.RandomGrains(rng, cfg.Nucleation.Grains)
	}

	growth := cfg.CA.MaxIterations
	if cfg.Method == config.MethodCA {
		growth = min(growth, cfg.Run.MaxIterations)
	}
	done, err := r.drive(ctx, ca.New(f, cfg.CA.Probability, rng), growth, true)
	if err != nil {
		return Result{}, err
	}

	switch cfg.Method {
	case config.MethodMC:
		done, err = r.drive(ctx, mc.New(f, rng), cfg.Run.MaxIterations, false)
	case config.MethodSRX:
		if _, err = r.drive(ctx, mc.New(f, rng), cfg.MC.Sweeps, false); err != nil {
			break
		}
		r.finishGrowth(f, rng)
		f.ResetIteration()
		if err = f.DistributeEnergy(cfg.Derived.Distribution, cfg.Energy.Inside, cfg.Energy.OnEdges); err != nil {
			return Result{}, fmt.Errorf("distributing energy: %w", err)
		}
		f.AddRecrystallizedGrains(rng, cfg.SRX.InitialNuclei, cfg.SRX.OnBoundary)
		done, err = r.drive(ctx, srx.New(f, cfg.Derived.Schedule, cfg.SRX.OnBoundary, rng), cfg.Run.MaxIterations, false)
	}
	if err != nil {
		return Result{}, err
	}
	if cfg.Method != config.MethodSRX {
		r.finishGrowth(f, rng)
	}

	return Result{Field: f, Steps: r.steps, Done: done, Stats: f.Stats()}, nil
}

// finishGrowth applies the post-growth inclusion options.
func (r *Runner) finishGrowth(f *grain.Field, rng core.Source) {
	cfg := r.Config
	if cfg.Derived.AfterGrowth {
		f.RandomInclusions(rng, cfg.Inclusions.Count, cfg.Inclusions.Size, cfg.Derived.Shape)
	}
	if cfg.Boundaries.Inclusions {
		f.AddBoundaryInclusions()
	}
}

type engine interface {
	core.Sim
	Field() *grain.Field
}

// drive steps sim until it is done or limit steps have run. With stall set
// it also stops after a step that changed no cell.
func (r *Runner) drive(ctx context.Context, sim engine, limit int, stall bool) (bool, error) {
	for i := 0; i < limit; i++ {
		if sim.Done() {
			return true, nil
		}
		if err := ctx.Err(); err != nil {
			return false, err
		}
		sim.Step()
		r.steps++
		if err := r.observe(sim); err != nil {
			return false, err
		}
		if stall && sim.LastStep().Changed == 0 {
			break
		}
	}
	return sim.Done(), nil
}

func (r *Runner) observe(sim engine) error {
	if r.Recorder == nil && r.Metrics == nil {
		return nil
	}
	stats := sim.Field().Stats()
	r.Metrics.Observe(sim.Name(), sim.LastStep(), stats)
	return r.Recorder.Write(telemetry.NewStepRecord(sim.Name(), r.steps, sim.LastStep(), stats))
}
