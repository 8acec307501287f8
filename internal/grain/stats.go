package grain

import "gonum.org/v1/gonum/stat"

// Stats summarises the microstructure of a field.
type Stats struct {
	Grains             int     `csv:"grains"`
	MeanGrainSize      float64 `csv:"mean_grain_size"`
	StdGrainSize       float64 `csv:"std_grain_size"`
	BoundaryPercentage float64 `csv:"boundary_pct"`
	MeanEnergy         float64 `csv:"mean_energy"`
	Recrystallized     float64 `csv:"recrystallized_pct"`
	Inclusions         int     `csv:"inclusions"`
	Empty              int     `csv:"empty"`
}

// GrainSizes returns the cell count of every grain, where a grain is a
// 4-connected region of one positive state.
func (f *Field) GrainSizes() []float64 {
	seen := make([]bool, len(f.cells))
	var sizes []float64
	var queue []int
	for start := range f.cells {
		state := f.cells[start].state
		if state <= 0 || seen[start] {
			continue
		}
		queue = append(queue[:0], start)
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			x, y := f.Coord(queue[qi])
			for _, n := range f.VonNeumann(x, y) {
				if !n.InRange() || n.cell.state != state {
					continue
				}
				ni := f.Index(n.X, n.Y)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
		sizes = append(sizes, float64(len(queue)))
	}
	return sizes
}

// Stats computes grain statistics over the current field.
func (f *Field) Stats() Stats {
	var s Stats
	energies := make([]float64, len(f.cells))
	rx := 0
	for i := range f.cells {
		c := &f.cells[i]
		energies[i] = float64(c.energy)
		switch {
		case c.state == Inclusion:
			s.Inclusions++
		case c.state == Empty:
			s.Empty++
		}
		if c.lock == Recrystallized {
			rx++
		}
	}
	sizes := f.GrainSizes()
	s.Grains = len(sizes)
	if len(sizes) > 0 {
		s.MeanGrainSize, s.StdGrainSize = stat.MeanStdDev(sizes, nil)
		if len(sizes) == 1 {
			s.StdGrainSize = 0
		}
	}
	s.MeanEnergy = stat.Mean(energies, nil)
	s.BoundaryPercentage = f.BoundaryPercentage()
	s.Recrystallized = 100 * float64(rx) / float64(f.Len())
	return s
}
