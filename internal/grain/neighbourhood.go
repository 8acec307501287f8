package grain

import "math"

// OutOfRangeState is what a Site outside the field reports as its state. It
// differs from every state a real cell can hold.
const OutOfRangeState = math.MinInt

// Site is the result of a lattice lookup: a cell with its coordinates, or
// OutOfRange. Sites are compared structurally.
type Site struct {
	X, Y int
	cell *Cell
}

// OutOfRange is returned by every lookup that falls outside the field.
var OutOfRange = Site{}

// InRange reports whether the site refers to a real cell.
func (s Site) InRange() bool { return s.cell != nil }

// Cell returns the referenced cell, or nil for OutOfRange.
func (s Site) Cell() *Cell { return s.cell }

// State returns the cell state, or OutOfRangeState.
func (s Site) State() int {
	if s.cell == nil {
		return OutOfRangeState
	}
	return s.cell.state
}

// PrevState returns the cell snapshot, or OutOfRangeState.
func (s Site) PrevState() int {
	if s.cell == nil {
		return OutOfRangeState
	}
	return s.cell.prev
}

// Indices into a VonNeumann neighbourhood.
const (
	VNLeft = iota
	VNTop
	VNRight
	VNBottom
)

// VonNeumann holds the four orthogonal neighbours: left, top, right, bottom.
type VonNeumann [4]Site

// Indices into a Moore neighbourhood. The order doubles as the tie-break
// order of the growth rules.
const (
	MooreLeft = iota
	MooreTopLeft
	MooreTop
	MooreTopRight
	MooreRight
	MooreBotRight
	MooreBot
	MooreBotLeft
)

// Moore holds the eight surrounding neighbours in the order left, topleft,
// top, topright, right, botright, bot, botleft.
type Moore [8]Site

var mooreOffsets = [8][2]int{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1},
}

// Near returns the orthogonal neighbours: left, top, right, bot.
func (m Moore) Near() [4]Site {
	return [4]Site{m[MooreLeft], m[MooreTop], m[MooreRight], m[MooreBot]}
}

// Far returns the diagonal neighbours: topleft, topright, botright, botleft.
func (m Moore) Far() [4]Site {
	return [4]Site{m[MooreTopLeft], m[MooreTopRight], m[MooreBotRight], m[MooreBotLeft]}
}

// VonNeumann returns the orthogonal neighbours of (x, y).
func (f *Field) VonNeumann(x, y int) VonNeumann {
	return VonNeumann{
		f.At(x-1, y),
		f.At(x, y-1),
		f.At(x+1, y),
		f.At(x, y+1),
	}
}

// Moore returns the eight neighbours of (x, y).
func (f *Field) Moore(x, y int) Moore {
	var m Moore
	for i, d := range mooreOffsets {
		m[i] = f.At(x+d[0], y+d[1])
	}
	return m
}
