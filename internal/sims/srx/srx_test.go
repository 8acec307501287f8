package srx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grain-ca/internal/core"
	"grain-ca/internal/grain"
)

// uniform returns a w x h single-grain field with homogeneous stored energy.
func uniform(t *testing.T, w, h, energy int) *grain.Field {
	t.Helper()
	f := grain.New(w, h)
	for _, c := range f.All() {
		c.Seed(1)
	}
	require.NoError(t, f.DistributeEnergy(grain.Homogeneous, energy, energy))
	return f
}

func nucleus(f *grain.Field, x, y, state int) {
	c := f.Cell(x, y)
	c.Seed(state)
	c.SetLock(grain.Recrystallized)
}

func TestFrontConsumesStoredEnergy(t *testing.T) {
	f := uniform(t, 6, 6, 7)
	nucleus(f, 0, 0, 2)
	e := New(f, Schedule{Module: SiteSaturated}, true, core.NewRNG(9))
	for i := 0; i < 50 && !e.Done(); i++ {
		e.Step()
	}
	require.True(t, e.Done(), "stored energy was not consumed")
	for p, c := range f.All() {
		require.Equal(t, 2, c.State(), "cell %v", p)
		require.Equal(t, grain.Recrystallized, c.Lock(), "cell %v", p)
		require.Zero(t, c.Energy(), "cell %v", p)
	}
}

func TestFrontStallsWithoutStoredEnergy(t *testing.T) {
	f := uniform(t, 5, 5, 0)
	nucleus(f, 2, 2, 2)
	e := New(f, Schedule{Module: SiteSaturated}, true, core.NewRNG(3))
	e.Step()
	assert.Zero(t, e.LastStep().Changed, "no growth into energy-free bulk")
}

func TestNoFrontNoGrowth(t *testing.T) {
	f := uniform(t, 4, 4, 5)
	e := New(f, Schedule{Module: SiteSaturated}, true, core.NewRNG(1))
	e.Step()
	for p, c := range f.All() {
		require.Equal(t, 1, c.State(), "cell %v changed without a recrystallized neighbour", p)
		require.Equal(t, 5, c.Energy(), "cell %v", p)
	}
	assert.Equal(t, 1, e.Iteration())
	assert.Equal(t, 1, e.Sweeps())
}

func TestScheduleDue(t *testing.T) {
	cases := []struct {
		name  string
		s     Schedule
		sweep int
		want  int
	}{
		{"site saturated", Schedule{Module: SiteSaturated, Cycle: 5, Increment: 3}, 5, 0},
		{"constant on cycle", Schedule{Module: Constant, Cycle: 5, Increment: 3}, 5, 3},
		{"constant off cycle", Schedule{Module: Constant, Cycle: 5, Increment: 3}, 4, 0},
		{"constant later cycle", Schedule{Module: Constant, Cycle: 5, Increment: 3}, 10, 3},
		{"increasing first", Schedule{Module: Increasing, Cycle: 5, Increment: 3}, 5, 3},
		{"increasing second", Schedule{Module: Increasing, Cycle: 5, Increment: 3}, 10, 6},
		{"increasing off cycle", Schedule{Module: Increasing, Cycle: 5, Increment: 3}, 7, 0},
		{"zero cycle", Schedule{Module: Constant, Cycle: 0, Increment: 3}, 5, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.s.Due(tc.sweep), tc.name)
	}
}

func TestNucleationResetsIteration(t *testing.T) {
	f := uniform(t, 10, 10, 3)
	e := New(f, Schedule{Module: Constant, Cycle: 1, Increment: 2}, true, core.NewRNG(5))
	e.Step()
	assert.Equal(t, 2, e.LastStep().Nucleated)
	assert.Zero(t, e.Iteration())
	assert.Equal(t, 1, e.Sweeps())
	assert.Len(t, f.CellsOfState(2), 1, "fresh id 2")
	assert.Len(t, f.CellsOfState(3), 1, "fresh id 3")
}

func TestIncreasingScheduleGrows(t *testing.T) {
	f := uniform(t, 12, 12, 0)
	e := New(f, Schedule{Module: Increasing, Cycle: 2, Increment: 1}, false, core.NewRNG(8))
	var added []int
	for i := 0; i < 6; i++ {
		e.Step()
		added = append(added, e.LastStep().Nucleated)
	}
	assert.Equal(t, []int{0, 1, 0, 2, 0, 3}, added)
}

func TestRecrystallizedCellsHoldNoEnergy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 30, 30
	cfg.Inclusions = 3
	e := NewWithConfig(cfg)
	f := e.Field()
	inclusions := f.CellsOfState(grain.Inclusion)
	for i := 0; i < 15; i++ {
		e.Step()
	}
	for p, c := range f.All() {
		if c.Lock() == grain.Recrystallized {
			require.Zero(t, c.Energy(), "recrystallized cell %v", p)
		}
	}
	for _, p := range inclusions {
		c := f.Cell(p.X, p.Y)
		assert.True(t, c.IsInclusion(), "inclusion at %v", p)
		assert.Equal(t, grain.Locked, c.Lock(), "inclusion at %v", p)
	}
}

func TestResetPreparesField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.Distribution = grain.Homogeneous
	cfg.Inside = 4
	cfg.InitialNuclei = 5
	cfg.OnBoundary = false
	e := NewWithConfig(cfg)
	f := e.Field()
	require.True(t, f.Full())
	assert.Zero(t, e.Iteration())
	recrystallized := 0
	for _, c := range f.All() {
		if c.Lock() == grain.Recrystallized {
			recrystallized++
			continue
		}
		require.Equal(t, 4, c.Energy())
	}
	assert.Equal(t, 5, recrystallized, "initial nuclei")
}

func TestFromMapAndRegistry(t *testing.T) {
	c := FromMap(map[string]string{"module": "increasing", "cycle": "3", "on_boundary": "false", "distribution": "homogeneous"})
	assert.Equal(t, Increasing, c.Schedule.Module)
	assert.Equal(t, 3, c.Schedule.Cycle)
	assert.False(t, c.OnBoundary)
	assert.Equal(t, grain.Homogeneous, c.Distribution)
	assert.Contains(t, core.Sims(), "srxmc")

	c.Width, c.Height = 10, 10
	got := NewWithConfig(c).Parameters().Map()
	assert.Equal(t, "increasing", got["module"])
	assert.Equal(t, "false", got["on_boundary"])
}
