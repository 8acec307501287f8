package grain

import (
	"image"

	"grain-ca/internal/core"
)

// RandomGrains seeds count new grains on random empty unlocked cells, using
// consecutive ids after the current maximum. It returns how many were placed,
// which is less than count only when the field runs out of free cells.
func (f *Field) RandomGrains(src core.Source, count int) int {
	free := 0
	for i := range f.cells {
		if f.cells[i].CanBeModified() {
			free++
		}
	}
	next := f.MaxState() + 1
	placed := 0
	for placed < count && free > 0 {
		c := &f.cells[f.Index(src.IntN(f.W), src.IntN(f.H))]
		if !c.CanBeModified() {
			continue
		}
		c.Seed(next)
		next++
		placed++
		free--
	}
	return placed
}

// FillRandom gives every unlocked cell an independent random id in [1, count].
func (f *Field) FillRandom(src core.Source, count int) {
	if count <= 0 {
		return
	}
	for i := range f.cells {
		c := &f.cells[i]
		if c.IsLocked() || c.state == Inclusion {
			continue
		}
		c.Seed(1 + src.IntN(count))
	}
}

// AddRecrystallizedGrains nucleates k recrystallized grains. With onBoundary
// the candidates are the cells holding the maximum stored energy, otherwise
// any cell. Locked and already recrystallized cells are never picked. When k
// exceeds the candidates nothing happens. Any addition resets the pass counter.
// It returns the number of nuclei placed.
func (f *Field) AddRecrystallizedGrains(src core.Source, k int, onBoundary bool) int {
	if k <= 0 || f.AllLocked() {
		return 0
	}
	maxEnergy := f.MaxEnergy()
	var candidates []image.Point
	for p, c := range f.All() {
		if c.IsLocked() || c.lock == Recrystallized {
			continue
		}
		if onBoundary && c.energy != maxEnergy {
			continue
		}
		candidates = append(candidates, p)
	}
	picks := core.Sample(src, len(candidates), k)
	if picks == nil {
		return 0
	}
	next := f.MaxState() + 1
	for _, i := range picks {
		p := candidates[i]
		c := &f.cells[f.Index(p.X, p.Y)]
		c.Seed(next)
		c.SetLock(Recrystallized)
		next++
	}
	f.iteration = 0
	return len(picks)
}
