package core

import (
	"image/color"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// UpdateMode tells whether an engine reads a snapshot of the previous pass
// (Synchronous) or sees its own writes immediately (Asynchronous).
type UpdateMode uint8

const (
	Synchronous UpdateMode = iota
	Asynchronous
)

func (m UpdateMode) String() string {
	if m == Asynchronous {
		return "asynchronous"
	}
	return "synchronous"
}

// View selects which per-cell quantity is mapped to colors.
type View uint8

const (
	ViewNucleation View = iota
	ViewEnergy
)

// Next cycles through the available views.
func (v View) Next() View {
	if v == ViewEnergy {
		return ViewNucleation
	}
	return ViewEnergy
}

// StepStats summarises the most recent step of an engine.
type StepStats struct {
	Iteration int
	Changed   int
	Nucleated int
}

// Sim defines the contract every lattice engine implements so a driver can
// advance it and decide when to stop.
type Sim interface {
	Name() string
	Size() Size
	Mode() UpdateMode
	Reset(seed int64)
	Step()
	Iteration() int
	Done() bool
	LastStep() StepStats
	// Colors writes one color per cell in row-major order into dst.
	Colors(dst []color.RGBA, view View)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names lists the registered simulations in lexical order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
