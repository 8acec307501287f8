package grain

import (
	"fmt"
	"image"
	"strings"
)

// Distribution selects how stored energy is spread over a grown field.
type Distribution uint8

const (
	Homogeneous Distribution = iota
	Heterogeneous
)

func (d Distribution) String() string {
	if d == Heterogeneous {
		return "heterogeneous"
	}
	return "homogeneous"
}

// ParseDistribution accepts "homogeneous" or "heterogeneous".
func ParseDistribution(s string) (Distribution, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "homogeneous", "homo":
		return Homogeneous, nil
	case "heterogeneous", "hetero":
		return Heterogeneous, nil
	}
	return Homogeneous, fmt.Errorf("grain: unknown energy distribution %q", s)
}

// isBoundary reports whether any in-range Moore neighbour of (x, y) holds a
// different state.
func (f *Field) isBoundary(x, y int) bool {
	own := f.cells[f.Index(x, y)].state
	for _, n := range f.Moore(x, y) {
		if n.InRange() && n.cell.state != own {
			return true
		}
	}
	return false
}

// BoundaryPoints returns every unlocked cell that touches a different state.
func (f *Field) BoundaryPoints() []image.Point {
	var pts []image.Point
	for p, c := range f.All() {
		if c.IsLocked() {
			continue
		}
		if f.isBoundary(p.X, p.Y) {
			pts = append(pts, p)
		}
	}
	return pts
}

// CellsOfStateBoundaryPoints returns the boundary points belonging to one grain.
func (f *Field) CellsOfStateBoundaryPoints(state int) []image.Point {
	var pts []image.Point
	for p, c := range f.All() {
		if c.state != state || c.IsLocked() {
			continue
		}
		if f.isBoundary(p.X, p.Y) {
			pts = append(pts, p)
		}
	}
	return pts
}

// BoundaryPercentage returns the share of cells lying on a grain boundary, in percent.
func (f *Field) BoundaryPercentage() float64 {
	return 100 * float64(len(f.BoundaryPoints())) / float64(f.Len())
}

// BoundaryEnergy counts the Moore neighbours of (x, y) whose state differs
// from the cell's own state.
func (f *Field) BoundaryEnergy(x, y int) int {
	c := f.Cell(x, y)
	if c == nil {
		return 0
	}
	return f.BoundaryEnergyAs(x, y, c.state, false)
}

// BoundaryEnergyAs counts the Moore neighbours of (x, y) whose state differs
// from candidate, adding the cell's stored energy when withStored is set.
func (f *Field) BoundaryEnergyAs(x, y, candidate int, withStored bool) int {
	c := f.Cell(x, y)
	if c == nil {
		return 0
	}
	e := 0
	for _, n := range f.Moore(x, y) {
		if n.InRange() && n.cell.state != candidate {
			e++
		}
	}
	if withStored {
		e += c.energy
	}
	return e
}

// TotalBoundaryEnergy sums BoundaryEnergy over the whole field.
func (f *Field) TotalBoundaryEnergy() int {
	total := 0
	for p := range f.All() {
		total += f.BoundaryEnergy(p.X, p.Y)
	}
	return total
}

// DistributeEnergy assigns stored energy to every cell of a full field.
// Heterogeneous mode gives boundary points onEdges instead of inside. It
// returns ErrFieldNotFilled, leaving energies untouched, when cells are empty.
func (f *Field) DistributeEnergy(mode Distribution, inside, onEdges int) error {
	if !f.Full() {
		return ErrFieldNotFilled
	}
	for i := range f.cells {
		f.cells[i].SetEnergy(inside)
	}
	if mode == Heterogeneous {
		for _, p := range f.BoundaryPoints() {
			f.cells[f.Index(p.X, p.Y)].SetEnergy(onEdges)
		}
	}
	return nil
}
