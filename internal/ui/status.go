package ui

import (
	"fmt"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
)

// Status is the viewer state shown next to the engine counters.
type Status struct {
	Paused bool
	View   core.View
	Seed   int64
}

// Lines renders the status panel text for sim.
func (s Status) Lines(sim core.Sim) []string {
	last := sim.LastStep()
	state := "running"
	switch {
	case sim.Done():
		state = "done"
	case s.Paused:
		state = "paused"
	}
	view := "nucleation"
	if s.View == core.ViewEnergy {
		view = "energy"
	}
	return []string{
		fmt.Sprintf("%s (%s) %s", sim.Name(), sim.Mode(), state),
		fmt.Sprintf("iteration %d", sim.Iteration()),
		fmt.Sprintf("changed %d  nucleated %d", last.Changed, last.Nucleated),
		fmt.Sprintf("view %s  seed %d", view, s.Seed),
	}
}

// CellInfo describes the cell at (x, y) for the cursor readout.
func CellInfo(f *grain.Field, x, y int) string {
	c := f.Cell(x, y)
	if c == nil {
		return ""
	}
	return fmt.Sprintf("(%d,%d) state %d %s energy %d", x, y, c.State(), c.Lock(), c.Energy())
}
