package grain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInclusionLocksForever(t *testing.T) {
	var c Cell
	c.SetEnergy(7)
	c.SetState(Inclusion)
	assert.Equal(t, Locked, c.Lock())
	assert.Zero(t, c.Energy())

	c.SetState(3)
	c.SetLock(Alive)
	assert.Equal(t, Inclusion, c.State())
	assert.Equal(t, Locked, c.Lock())
	assert.True(t, c.IsLocked())
	assert.False(t, c.CanInfluenceNeighbours())
}

func TestSetStateIgnoresOutOfDomain(t *testing.T) {
	var c Cell
	c.Seed(4)
	c.SetEnergy(5)
	c.SetState(-7)
	assert.Equal(t, 4, c.State())
	assert.Equal(t, Alive, c.Lock())
	assert.False(t, c.IsLocked())
	assert.Equal(t, 5, c.Energy())
}

func TestRecrystallizedDropsEnergy(t *testing.T) {
	var c Cell
	c.Seed(4)
	c.SetEnergy(9)
	c.SetLock(Recrystallized)
	assert.Zero(t, c.Energy())
	assert.False(t, c.IsLocked())
}

func TestCellPredicates(t *testing.T) {
	tests := []struct {
		name      string
		state     int
		lock      Lock
		modify    bool
		influence bool
		locked    bool
	}{
		{"empty alive", Empty, Alive, true, false, false},
		{"empty selected", Empty, Selected, false, false, false},
		{"grain alive", 2, Alive, false, true, false},
		{"grain locked", 2, Locked, false, false, true},
		{"grain dual phase", 2, DualPhase, false, true, true},
		{"grain selected", 2, Selected, false, true, false},
		{"grain recrystallized", 2, Recrystallized, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cell{state: tt.state, lock: tt.lock}
			assert.Equal(t, tt.modify, c.CanBeModified())
			assert.Equal(t, tt.influence, c.CanInfluenceNeighbours())
			assert.Equal(t, tt.locked, c.IsLocked())
		})
	}
}

func TestStateColor(t *testing.T) {
	assert.Equal(t, colorWhite, StateColor(Empty))
	assert.Equal(t, colorBlack, StateColor(Inclusion))
	assert.Equal(t, uint8(255), StateColor(1).G)
	assert.Equal(t, uint8(255), StateColor(2).R)
	// fade is capped so late ids stay visible
	assert.Equal(t, uint8(70), StateColor(5000).B)

	c := Cell{state: 3, lock: Selected}
	assert.Equal(t, colorHighlight, c.Color())
	c.lock = DualPhase
	assert.Equal(t, colorGrey, c.Color())
}
