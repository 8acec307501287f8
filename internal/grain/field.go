package grain

import (
	"image"
	"iter"

	"grain-ca/internal/core"
)

// Field is the 2D lattice of cells. It exclusively owns its cells and is not
// safe for concurrent use.
type Field struct {
	core.Grid

	cells     []Cell
	iteration int
}

// New allocates an empty, unlocked field of w*h cells.
func New(w, h int) *Field {
	g := core.NewGrid(w, h)
	return &Field{Grid: g, cells: make([]Cell, g.Len())}
}

// Size reports the field dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.W, H: f.H} }

// Cell returns the cell at (x, y) or nil when the coordinates fall outside.
func (f *Field) Cell(x, y int) *Cell {
	if !f.InBounds(x, y) {
		return nil
	}
	return &f.cells[f.Index(x, y)]
}

// At returns the site at (x, y), which is OutOfRange outside the field.
func (f *Field) At(x, y int) Site {
	c := f.Cell(x, y)
	if c == nil {
		return OutOfRange
	}
	return Site{X: x, Y: y, cell: c}
}

// Iteration returns the number of completed update passes.
func (f *Field) Iteration() int { return f.iteration }

// Tick records one completed update pass.
func (f *Field) Tick() { f.iteration++ }

// ResetIteration sets the pass counter back to zero.
func (f *Field) ResetIteration() { f.iteration = 0 }

// Commit copies every state into its snapshot, closing a synchronous pass.
func (f *Field) Commit() {
	for i := range f.cells {
		f.cells[i].commit()
	}
}

// All yields every cell with its coordinates in raster order (x outer).
func (f *Field) All() iter.Seq2[image.Point, *Cell] {
	return func(yield func(image.Point, *Cell) bool) {
		for x := 0; x < f.W; x++ {
			for y := 0; y < f.H; y++ {
				if !yield(image.Point{X: x, Y: y}, &f.cells[f.Index(x, y)]) {
					return
				}
			}
		}
	}
}

// Full reports whether no cell is Empty.
func (f *Field) Full() bool {
	for i := range f.cells {
		if f.cells[i].state == Empty {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no cell belongs to a grain.
func (f *Field) IsEmpty() bool {
	for i := range f.cells {
		if f.cells[i].state > 0 {
			return false
		}
	}
	return true
}

// AllLocked reports whether every cell is frozen.
func (f *Field) AllLocked() bool {
	for i := range f.cells {
		if !f.cells[i].IsLocked() {
			return false
		}
	}
	return true
}

// MaxState returns the highest grain id present, or 0.
func (f *Field) MaxState() int {
	m := 0
	for i := range f.cells {
		m = max(m, f.cells[i].state)
	}
	return m
}

// MaxEnergy returns the highest stored energy present, or 0.
func (f *Field) MaxEnergy() int {
	m := 0
	for i := range f.cells {
		m = max(m, f.cells[i].energy)
	}
	return m
}

// EnergyDepleted reports whether no cell stores energy any more.
func (f *Field) EnergyDepleted() bool {
	for i := range f.cells {
		if f.cells[i].energy != 0 {
			return false
		}
	}
	return true
}

// CellsOfState returns the coordinates of every cell with the given state.
func (f *Field) CellsOfState(state int) []image.Point {
	var pts []image.Point
	for p, c := range f.All() {
		if c.state == state {
			pts = append(pts, p)
		}
	}
	return pts
}

// SelectState marks every unlocked cell of a grain as Selected and returns
// how many cells changed.
func (f *Field) SelectState(state int) int {
	if state <= 0 {
		return 0
	}
	n := 0
	for _, c := range f.All() {
		if c.state == state && !c.IsLocked() && c.lock != Recrystallized {
			c.SetLock(Selected)
			n++
		}
	}
	return n
}

// DeselectState returns Selected cells of a grain to Alive.
func (f *Field) DeselectState(state int) int {
	n := 0
	for _, c := range f.All() {
		if c.state == state && c.lock == Selected {
			c.SetLock(Alive)
			n++
		}
	}
	return n
}

// ClearField empties every Alive, non-inclusion cell and resets the pass
// counter. Selected grains are kept and frozen, as DualPhase when dualPhase is
// set and Locked otherwise.
func (f *Field) ClearField(dualPhase bool) {
	frozen := Locked
	if dualPhase {
		frozen = DualPhase
	}
	for i := range f.cells {
		c := &f.cells[i]
		switch {
		case c.state == Inclusion:
		case c.lock == Selected:
			c.SetLock(frozen)
		case c.lock == Alive:
			c.state = Empty
			c.energy = 0
		}
		c.commit()
	}
	f.iteration = 0
}
