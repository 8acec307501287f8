package mc

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grain-ca/internal/core"
	"grain-ca/internal/geometry"
	"grain-ca/internal/grain"
)

func states(f *grain.Field) []int {
	var out []int
	for _, c := range f.All() {
		out = append(out, c.State())
	}
	return out
}

func TestMinorityCellFlips(t *testing.T) {
	f := grain.New(3, 3)
	for _, c := range f.All() {
		c.Seed(1)
	}
	f.Cell(1, 1).Seed(2)
	e := New(f, core.NewRNG(4))
	e.Step()
	for p, c := range f.All() {
		require.Equal(t, 1, c.State(), "cell %v", p)
	}
	assert.Equal(t, 1, e.LastStep().Changed)
	assert.Equal(t, 1, e.Iteration())
}

func TestUniformFieldIsStable(t *testing.T) {
	f := grain.New(6, 6)
	for _, c := range f.All() {
		c.Seed(3)
	}
	e := New(f, core.NewRNG(2))
	e.Step()
	assert.Zero(t, e.LastStep().Changed)
	assert.True(t, e.Done())
}

func TestBoundaryEnergyNeverRises(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 24, 24
		cfg.States = 6
		cfg.Seed = seed
		e := NewWithConfig(cfg)
		prev := e.Field().TotalBoundaryEnergy()
		start := prev
		for i := 0; i < 20; i++ {
			e.Step()
			cur := e.Field().TotalBoundaryEnergy()
			require.LessOrEqual(t, cur, prev, "seed %d sweep %d: energy rose", seed, i)
			prev = cur
		}
		assert.Less(t, prev, start, "seed %d: coarsening lowers energy", seed)
	}
}

func TestLockedCellsUntouched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.States = 4
	cfg.Inclusions = 4
	e := NewWithConfig(cfg)
	f := e.Field()
	f.AddInclusion(image.Point{X: 8, Y: 8}, 2, geometry.Circle)
	frozen := f.Cell(0, 0)
	frozen.SetLock(grain.DualPhase)
	frozenState := frozen.State()
	inclusions := f.CellsOfState(grain.Inclusion)

	for i := 0; i < 10; i++ {
		e.Step()
	}
	assert.Equal(t, frozenState, frozen.State(), "dual phase cell changed")
	for _, p := range inclusions {
		c := f.Cell(p.X, p.Y)
		assert.True(t, c.IsInclusion(), "inclusion at %v", p)
		assert.Equal(t, grain.Locked, c.Lock(), "inclusion at %v", p)
	}
}

func TestSweepDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 12
	a := NewWithConfig(cfg)
	b := NewWithConfig(cfg)
	for i := 0; i < 5; i++ {
		a.Step()
		b.Step()
	}
	assert.Equal(t, states(a.Field()), states(b.Field()), "same seed produced different sweeps")
	assert.Equal(t, core.Asynchronous, a.Mode())
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.States = 7
	cfg.InclusionShape = geometry.Circle
	e := NewWithConfig(cfg)
	assert.Equal(t, cfg, FromMap(e.Parameters().Map()))
}
