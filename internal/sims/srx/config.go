package srx

import (
	"strconv"

	"grain-ca/internal/geometry"
	"grain-ca/internal/grain"
)

// Config controls static recrystallization. The field is prepared by MC
// relaxation before energy is distributed and the first nuclei appear.
type Config struct {
	Width  int
	Height int

	Seed int64

	States int
	Sweeps int

	Inclusions     int
	InclusionSize  int
	InclusionShape geometry.Shape

	Distribution grain.Distribution
	Inside       int
	OnEdges      int

	Schedule      Schedule
	InitialNuclei int
	OnBoundary    bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          100,
		Height:         100,
		Seed:           1337,
		States:         20,
		Sweeps:         10,
		InclusionSize:  3,
		InclusionShape: geometry.Square,
		Distribution:   grain.Heterogeneous,
		Inside:         2,
		OnEdges:        7,
		Schedule:       Schedule{Module: Constant, Cycle: 5, Increment: 10},
		InitialNuclei:  10,
		OnBoundary:     true,
	}
}

func atoi(cfg map[string]string, key string, floor int, dst *int) {
	v, ok := cfg[key]
	if !ok {
		return
	}
	if parsed, err := strconv.Atoi(v); err == nil && parsed >= floor {
		*dst = parsed
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	atoi(cfg, "w", 1, &c.Width)
	atoi(cfg, "h", 1, &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	atoi(cfg, "states", 1, &c.States)
	atoi(cfg, "sweeps", 0, &c.Sweeps)
	atoi(cfg, "inclusions", 0, &c.Inclusions)
	atoi(cfg, "inclusion_size", 1, &c.InclusionSize)
	if v, ok := cfg["inclusion_shape"]; ok {
		if parsed, err := geometry.ParseShape(v); err == nil {
			c.InclusionShape = parsed
		}
	}
	if v, ok := cfg["distribution"]; ok {
		if parsed, err := grain.ParseDistribution(v); err == nil {
			c.Distribution = parsed
		}
	}
	atoi(cfg, "inside", 0, &c.Inside)
	atoi(cfg, "on_edges", 0, &c.OnEdges)
	if v, ok := cfg["module"]; ok {
		if parsed, err := ParseModule(v); err == nil {
			c.Schedule.Module = parsed
		}
	}
	atoi(cfg, "cycle", 0, &c.Schedule.Cycle)
	atoi(cfg, "increment", 0, &c.Schedule.Increment)
	atoi(cfg, "initial_nuclei", 0, &c.InitialNuclei)
	if v, ok := cfg["on_boundary"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.OnBoundary = parsed
		}
	}
	return c
}
