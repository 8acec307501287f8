package mc

import (
	"strconv"

	"grain-ca/internal/geometry"
)

// Config controls the Monte Carlo boundary migration simulation.
type Config struct {
	Width  int
	Height int

	Seed int64

	// States is the number of distinct ids scattered over the field on Reset.
	States int

	Inclusions     int
	InclusionSize  int
	InclusionShape geometry.Shape
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:          200,
		Height:         200,
		Seed:           1337,
		States:         20,
		InclusionSize:  3,
		InclusionShape: geometry.Square,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["states"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.States = parsed
		}
	}
	if v, ok := cfg["inclusions"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Inclusions = parsed
		}
	}
	if v, ok := cfg["inclusion_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.InclusionSize = parsed
		}
	}
	if v, ok := cfg["inclusion_shape"]; ok {
		if parsed, err := geometry.ParseShape(v); err == nil {
			c.InclusionShape = parsed
		}
	}
	return c
}
