package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
	"grain-ca/internal/sims/ca"
)

func TestStatusLines(t *testing.T) {
	f := grain.New(3, 1)
	f.Cell(0, 0).Seed(1)
	e := ca.New(f, 100, core.NewRNG(1))
	e.Step()

	lines := Status{Paused: true, View: core.ViewEnergy, Seed: 9}.Lines(e)
	require.Len(t, lines, 4)
	assert.Regexp(t, `^ca \(synchronous\) paused`, lines[0])
	assert.Equal(t, "iteration 1", lines[1])
	assert.Equal(t, "changed 1  nucleated 0", lines[2])
	assert.Equal(t, "view energy  seed 9", lines[3])

	e.Step()
	assert.Regexp(t, `done$`, (Status{}).Lines(e)[0], "full field reads done")
}

func TestCellInfo(t *testing.T) {
	f := grain.New(2, 2)
	f.Cell(1, 0).Seed(4)
	f.Cell(1, 0).SetEnergy(3)
	assert.Equal(t, "(1,0) state 4 alive energy 3", CellInfo(f, 1, 0))
	assert.Empty(t, CellInfo(f, 5, 5), "out of range cell")
}
