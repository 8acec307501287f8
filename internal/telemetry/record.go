// Package telemetry records per-step engine output as CSV rows and
// prometheus counters.
package telemetry

import (
	"grain-ca/internal/core"
	"grain-ca/internal/grain"
)

// StepRecord is one CSV row describing a completed step.
type StepRecord struct {
	Engine    string `csv:"engine"`
	Step      int    `csv:"step"`
	Iteration int    `csv:"iteration"`
	Changed   int    `csv:"changed"`
	Nucleated int    `csv:"nucleated"`

	Grains             int     `csv:"grains"`
	MeanGrainSize      float64 `csv:"mean_grain_size"`
	StdGrainSize       float64 `csv:"std_grain_size"`
	BoundaryPercentage float64 `csv:"boundary_pct"`
	MeanEnergy         float64 `csv:"mean_energy"`
	Recrystallized     float64 `csv:"recrystallized_pct"`
	Inclusions         int     `csv:"inclusions"`
	Empty              int     `csv:"empty"`
}

// NewStepRecord flattens step counters and field statistics into a row.
// step counts every step of the run, unlike the field iteration which
// nucleation may reset.
func NewStepRecord(engine string, step int, st core.StepStats, s grain.Stats) StepRecord {
	return StepRecord{
		Engine:             engine,
		Step:               step,
		Iteration:          st.Iteration,
		Changed:            st.Changed,
		Nucleated:          st.Nucleated,
		Grains:             s.Grains,
		MeanGrainSize:      s.MeanGrainSize,
		StdGrainSize:       s.StdGrainSize,
		BoundaryPercentage: s.BoundaryPercentage,
		MeanEnergy:         s.MeanEnergy,
		Recrystallized:     s.Recrystallized,
		Inclusions:         s.Inclusions,
		Empty:              s.Empty,
	}
}

// SweepRecord is the final summary of one seed in a parameter sweep.
type SweepRecord struct {
	Seed      int64  `csv:"seed"`
	Method    string `csv:"method"`
	Steps     int    `csv:"steps"`
	Done      bool   `csv:"done"`
	ElapsedMS int64  `csv:"elapsed_ms"`

	Grains         int     `csv:"grains"`
	MeanSize       float64 `csv:"mean_grain_size"`
	StdSize        float64 `csv:"std_grain_size"`
	Boundary       float64 `csv:"boundary_pct"`
	MeanEnergy     float64 `csv:"mean_energy"`
	Recrystallized float64 `csv:"recrystallized_pct"`
}
