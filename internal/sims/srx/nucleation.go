package srx

import (
	"fmt"
	"strings"
)

// Module selects how new recrystallized nuclei appear during a run.
type Module int

const (
	// SiteSaturated places every nucleus at start-up only.
	SiteSaturated Module = iota
	// Constant adds Increment nuclei every Cycle sweeps.
	Constant
	// Increasing adds Increment*sweeps/Cycle nuclei every Cycle sweeps.
	Increasing
)

func (m Module) String() string {
	switch m {
	case Constant:
		return "constant"
	case Increasing:
		return "increasing"
	default:
		return "site_saturated"
	}
}

// ParseModule accepts the names produced by String.
func ParseModule(s string) (Module, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "site_saturated", "site-saturated", "sitesaturated":
		return SiteSaturated, nil
	case "constant":
		return Constant, nil
	case "increasing":
		return Increasing, nil
	}
	return SiteSaturated, fmt.Errorf("srx: unknown nucleation module %q", s)
}

// Schedule decides how many nuclei to add after a sweep.
type Schedule struct {
	Module    Module
	Cycle     int
	Increment int
}

// Due returns the number of nuclei to add once sweep sweeps have completed.
// The count is keyed on the engine's own sweep counter, which is never reset
// by nucleation.
func (s Schedule) Due(sweep int) int {
	if s.Module == SiteSaturated || s.Cycle <= 0 || sweep <= 0 || sweep%s.Cycle != 0 {
		return 0
	}
	switch s.Module {
	case Constant:
		return s.Increment
	case Increasing:
		return s.Increment * sweep / s.Cycle
	}
	return 0
}
