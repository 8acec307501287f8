package ca

import (
	"grain-ca/internal/core"
	"grain-ca/internal/grain"
)

// Minimum agreeing neighbours for each deterministic rule.
const (
	MooreThreshold = 5
	NearThreshold  = 3
	FarThreshold   = 3
)

// influence returns the snapshot state a neighbour contributes, if any.
func influence(s grain.Site) (int, bool) {
	c := s.Cell()
	if c == nil || !c.CanInfluenceNeighbours() || c.PrevState() <= 0 {
		return 0, false
	}
	return c.PrevState(), true
}

func states(sites []grain.Site) []int {
	out := make([]int, 0, len(sites))
	for _, s := range sites {
		if v, ok := influence(s); ok {
			out = append(out, v)
		}
	}
	return out
}

// mostFrequent returns the most common value and its count. Ties go to the
// value that appears first.
func mostFrequent(values []int) (int, int) {
	if len(values) == 0 {
		return 0, 0
	}
	counts := make(map[int]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
		best = max(best, counts[v])
	}
	for _, v := range values {
		if counts[v] == best {
			return v, best
		}
	}
	return 0, 0
}

// Decide evaluates the four growth rules against a Moore neighbourhood and
// returns the state an empty cell should take, if any:
//
//  1. at least 5 of the 8 neighbours share a state
//  2. at least 3 of the 4 orthogonal neighbours share a state
//  3. at least 3 of the 4 diagonal neighbours share a state
//  4. otherwise, with probability percent, a random neighbour's state
func Decide(m grain.Moore, probability int, src core.Source) (int, bool) {
	all := states(m[:])
	if len(all) == 0 {
		return 0, false
	}
	if v, n := mostFrequent(all); n >= MooreThreshold {
		return v, true
	}
	near := m.Near()
	if v, n := mostFrequent(states(near[:])); n >= NearThreshold {
		return v, true
	}
	far := m.Far()
	if v, n := mostFrequent(states(far[:])); n >= FarThreshold {
		return v, true
	}
	if probability > 0 && core.Percent(src, probability) {
		return all[src.IntN(len(all))], true
	}
	return 0, false
}
