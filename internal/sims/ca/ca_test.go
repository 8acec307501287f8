package ca

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grain-ca/internal/core"
	"grain-ca/internal/geometry"
	"grain-ca/internal/grain"
)

func snapshot(f *grain.Field) []int {
	var out []int
	for _, c := range f.All() {
		out = append(out, c.State())
	}
	return out
}

// seedAround seeds the listed Moore positions of (1,1) on a 3x3 field.
func seedAround(positions map[int]int) *grain.Field {
	f := grain.New(3, 3)
	offsets := map[int]image.Point{
		grain.MooreLeft: {X: 0, Y: 1}, grain.MooreTopLeft: {X: 0, Y: 0}, grain.MooreTop: {X: 1, Y: 0},
		grain.MooreTopRight: {X: 2, Y: 0}, grain.MooreRight: {X: 2, Y: 1}, grain.MooreBotRight: {X: 2, Y: 2},
		grain.MooreBot: {X: 1, Y: 2}, grain.MooreBotLeft: {X: 0, Y: 2},
	}
	for idx, state := range positions {
		p := offsets[idx]
		f.Cell(p.X, p.Y).Seed(state)
	}
	return f
}

func TestMostFrequentTieBreak(t *testing.T) {
	v, n := mostFrequent([]int{2, 1, 1, 2})
	assert.Equal(t, [2]int{2, 2}, [2]int{v, n}, "first tied value wins")
	v, n = mostFrequent([]int{3, 1, 1})
	assert.Equal(t, [2]int{1, 2}, [2]int{v, n})
	_, n = mostFrequent(nil)
	assert.Zero(t, n)
}

func TestDecideRules(t *testing.T) {
	rng := core.NewRNG(1)
	tests := []struct {
		name  string
		seeds map[int]int
		want  int
		ok    bool
	}{
		{
			name: "moore majority",
			seeds: map[int]int{
				grain.MooreLeft: 4, grain.MooreTopLeft: 4, grain.MooreTop: 4, grain.MooreTopRight: 4,
				grain.MooreRight: 4, grain.MooreBotRight: 7, grain.MooreBot: 7, grain.MooreBotLeft: 7,
			},
			want: 4, ok: true,
		},
		{
			name:  "near rule",
			seeds: map[int]int{grain.MooreLeft: 2, grain.MooreTop: 2, grain.MooreRight: 2, grain.MooreTopLeft: 9},
			want:  2, ok: true,
		},
		{
			name:  "far rule",
			seeds: map[int]int{grain.MooreTopLeft: 6, grain.MooreTopRight: 6, grain.MooreBotLeft: 6, grain.MooreLeft: 1},
			want:  6, ok: true,
		},
		{
			name:  "no rule fires",
			seeds: map[int]int{grain.MooreLeft: 2, grain.MooreTop: 2, grain.MooreRight: 3},
			ok:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := seedAround(tt.seeds)
			got, ok := Decide(f.Moore(1, 1), 0, rng)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecideIgnoresLockedNeighbours(t *testing.T) {
	f := seedAround(map[int]int{grain.MooreLeft: 5, grain.MooreTop: 5, grain.MooreRight: 5})
	f.Cell(1, 0).SetLock(grain.Locked)
	_, ok := Decide(f.Moore(1, 1), 0, core.NewRNG(1))
	assert.False(t, ok, "locked neighbour must not count")
	// inclusions never influence
	g := grain.New(3, 3)
	g.AddInclusion(image.Point{X: 1, Y: 1}, 3, geometry.Square)
	_, ok = Decide(g.Moore(1, 1), 100, core.NewRNG(1))
	assert.False(t, ok, "inclusions must not propagate")
}

func TestDecideProbabilityBounds(t *testing.T) {
	f := seedAround(map[int]int{grain.MooreLeft: 3, grain.MooreBot: 8})
	rng := core.NewRNG(5)
	for i := 0; i < 50; i++ {
		_, ok := Decide(f.Moore(1, 1), 0, rng)
		require.False(t, ok, "probability 0 must never fire the fallback rule")
		got, ok := Decide(f.Moore(1, 1), 100, rng)
		require.True(t, ok)
		require.Contains(t, []int{3, 8}, got)
	}
}

func TestSingleSeedWithoutFallback(t *testing.T) {
	f := grain.New(3, 3)
	f.Cell(1, 1).Seed(1)
	e := New(f, 0, core.NewRNG(1))
	before := snapshot(f)
	e.Step()
	assert.Equal(t, before, snapshot(f), "lattice unchanged")
	assert.Equal(t, 1, e.Iteration())
	for _, c := range f.All() {
		require.Equal(t, c.State(), c.PrevState(), "snapshot not synced after pass")
	}
}

func TestSingleSeedWithFallbackFillsNeighbours(t *testing.T) {
	f := grain.New(3, 3)
	f.Cell(1, 1).Seed(1)
	e := New(f, 100, core.NewRNG(1))
	e.Step()
	assert.True(t, e.Done(), "every neighbour adopts the only candidate, got %v", snapshot(f))
}

func TestStepReadsSnapshotOnly(t *testing.T) {
	f := grain.New(5, 1)
	f.Cell(0, 0).Seed(1)
	e := New(f, 100, core.NewRNG(1))
	e.Step()
	assert.Equal(t, []int{1, 1, 0, 0, 0}, snapshot(f), "growth advances one cell per pass")
	e.Step()
	assert.Equal(t, []int{1, 1, 1, 0, 0}, snapshot(f))
}

func TestDeterministicWithSeed(t *testing.T) {
	for _, p := range []int{0, 100} {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 30, 20
		cfg.Grains = 12
		cfg.Probability = p
		a := NewWithConfig(cfg)
		b := NewWithConfig(cfg)
		for i := 0; i < 15; i++ {
			a.Step()
			b.Step()
		}
		assert.Equal(t, snapshot(a.Field()), snapshot(b.Field()), "p=%d: runs with the same seed diverged", p)
	}
}

func TestRandomGrainsGrowUntilFull(t *testing.T) {
	f := grain.New(5, 5)
	f.RandomGrains(core.NewRNG(9), 5)
	e := New(f, 100, core.NewRNG(9))
	for i := 0; i < 50 && !e.Done(); i++ {
		e.Step()
	}
	require.True(t, f.Full(), "field not full after growth: %v", snapshot(f))
	assert.NotContains(t, snapshot(f), grain.Empty)
}

func TestFullFieldIsStable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.Grains = 6
	e := NewWithConfig(cfg)
	for i := 0; i < 200 && !e.Done(); i++ {
		e.Step()
	}
	require.True(t, e.Done(), "growth saturates")
	before := snapshot(e.Field())
	for i := 0; i < 3; i++ {
		e.Step()
		assert.Zero(t, e.LastStep().Changed, "pass on full field")
	}
	assert.Equal(t, before, snapshot(e.Field()))
}

func TestInclusionsSurviveGrowth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.Grains = 4
	cfg.Inclusions = 3
	cfg.InclusionShape = geometry.Circle
	e := NewWithConfig(cfg)
	inclusions := e.Field().CellsOfState(grain.Inclusion)
	require.NotEmpty(t, inclusions)
	for i := 0; i < 40; i++ {
		e.Step()
	}
	for _, p := range inclusions {
		c := e.Field().Cell(p.X, p.Y)
		assert.True(t, c.IsInclusion(), "inclusion at %v", p)
		assert.Equal(t, grain.Locked, c.Lock(), "inclusion at %v", p)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "12", "probability": "140", "inclusion_shape": "circle", "grains": "x"})
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, 100, c.Probability, "clamped")
	assert.Equal(t, geometry.Circle, c.InclusionShape)
	assert.Equal(t, DefaultConfig().Grains, c.Grains, "bad value keeps the default")

	sim := core.Sims()["ca"](map[string]string{"w": "8", "h": "4"})
	assert.Equal(t, core.Size{W: 8, H: 4}, sim.Size())
	assert.Equal(t, core.Synchronous, sim.Mode())

	got := NewWithConfig(c).Parameters().Map()
	assert.Equal(t, "12", got["w"])
	assert.Equal(t, "circle", got["inclusion_shape"])
}

func TestAddGrainsAfterClear(t *testing.T) {
	c := DefaultConfig()
	c.Width, c.Height, c.Grains = 10, 10, 3
	e := NewWithConfig(c)
	for !e.Done() {
		e.Step()
	}
	f := e.Field()
	kept := f.Cell(0, 0).State()
	f.SelectState(kept)
	f.ClearField(true)
	require.Equal(t, 4, e.AddGrains(4))
	for !e.Done() {
		e.Step()
	}
	assert.Equal(t, kept, f.Cell(0, 0).State())
	assert.Equal(t, grain.DualPhase, f.Cell(0, 0).Lock())
}
