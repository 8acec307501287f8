// Package grain holds the lattice model shared by the growth and
// recrystallization engines: cells, the field that owns them, neighbourhood
// queries, stored energy and boundary bookkeeping.
package grain

import "fmt"

const (
	// Empty marks a cell that does not belong to any grain yet.
	Empty = 0
	// Inclusion marks a permanent second-phase obstacle.
	Inclusion = -1
)

// Lock classifies how a cell may take part in an update, independently of
// its grain id. The values are ordered: everything below Alive is frozen and
// everything above Locked may propagate its id.
type Lock int8

const (
	Locked         Lock = -2
	DualPhase      Lock = -1
	Alive          Lock = 0
	Selected       Lock = 1
	Recrystallized Lock = 2
)

func (l Lock) String() string {
	switch l {
	case Locked:
		return "locked"
	case DualPhase:
		return "dual-phase"
	case Alive:
		return "alive"
	case Selected:
		return "selected"
	case Recrystallized:
		return "recrystallized"
	}
	return fmt.Sprintf("lock(%d)", int8(l))
}

// Cell is the per-site state. Cells only exist inside a Field.
type Cell struct {
	state  int
	prev   int
	lock   Lock
	energy int
}

// State returns the grain id, Empty or Inclusion.
func (c *Cell) State() int { return c.state }

// PrevState returns the snapshot taken at the end of the last synchronous pass.
func (c *Cell) PrevState() int { return c.prev }

// SetState assigns a grain id. Setting Inclusion also locks the cell; an
// existing inclusion never changes. Values below Inclusion are ignored.
func (c *Cell) SetState(state int) {
	if c.state == Inclusion || state < Inclusion {
		return
	}
	c.state = state
	if state == Inclusion {
		c.lock = Locked
		c.energy = 0
	}
}

// Seed assigns a grain id to both the current state and the snapshot.
func (c *Cell) Seed(state int) {
	c.SetState(state)
	c.prev = c.state
}

func (c *Cell) commit() { c.prev = c.state }

// Lock returns the lock classification.
func (c *Cell) Lock() Lock { return c.lock }

// SetLock changes the lock classification. Becoming Recrystallized drops the
// stored energy. Inclusions stay Locked.
func (c *Cell) SetLock(l Lock) {
	if c.state == Inclusion {
		return
	}
	c.lock = l
	if l == Recrystallized {
		c.energy = 0
	}
}

// Energy returns the stored energy.
func (c *Cell) Energy() int { return c.energy }

// SetEnergy stores a non-negative energy value. Inclusions carry none.
func (c *Cell) SetEnergy(e int) {
	if e < 0 || c.state == Inclusion {
		e = 0
	}
	c.energy = e
}

// IsInclusion reports whether the cell is a permanent obstacle.
func (c *Cell) IsInclusion() bool { return c.state == Inclusion }

// CanBeModified reports whether growth may claim the cell.
func (c *Cell) CanBeModified() bool { return c.state == Empty && c.lock == Alive }

// CanInfluenceNeighbours reports whether the cell may propagate its grain id.
func (c *Cell) CanInfluenceNeighbours() bool { return c.state > 0 && c.lock > Locked }

// IsLocked reports whether the cell is frozen for every engine.
func (c *Cell) IsLocked() bool { return c.lock < Alive }

func (c *Cell) String() string {
	return fmt.Sprintf("%d[%s e=%d]", c.state, c.lock, c.energy)
}
