package ca

import (
	"strconv"

	"grain-ca/internal/geometry"
)

// Config controls the CA grain growth simulation.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Grains is the number of nuclei placed on Reset.
	Grains int
	// Probability is the percentage chance of the fallback rule firing.
	Probability int

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
		Grains:         50,
		Probability:    100,
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
	if v, ok := cfg["grains"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Grains = parsed
		}
	}
	if v, ok := cfg["probability"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.Probability = parsed
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
