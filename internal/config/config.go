// Package config loads scenario files for the headless runner.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"grain-ca/internal/geometry"
	"grain-ca/internal/grain"
	"grain-ca/internal/sims/srx"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Methods accepted in the method key.
const (
	MethodCA  = "ca"
	MethodMC  = "mc"
	MethodSRX = "srxmc"
)

// Config is a complete scenario description.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Seed       int64            `yaml:"seed"`
	Method     string           `yaml:"method"`
	Nucleation NucleationConfig `yaml:"nucleation"`
	Inclusions InclusionConfig  `yaml:"inclusions"`
	CA         CAConfig         `yaml:"ca"`
	MC         MCConfig         `yaml:"mc"`
	Energy     EnergyConfig     `yaml:"energy"`
	SRX        SRXConfig        `yaml:"srx"`
	Run        RunConfig        `yaml:"run"`
	Boundaries BoundaryConfig   `yaml:"boundaries"`
	Output     OutputConfig     `yaml:"output"`

	// Derived values filled by Validate
	Derived DerivedConfig `yaml:"-"`
}

type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NucleationConfig seeds the initial microstructure. Random places Grains
// CA nuclei, bulk assigns every cell one of Grains ids.
type NucleationConfig struct {
	Grains int    `yaml:"grains"`
	Mode   string `yaml:"mode"`
}

// InclusionConfig places pinning particles before or after growth.
type InclusionConfig struct {
	Count int    `yaml:"count"`
	Size  int    `yaml:"size"`
	Shape string `yaml:"shape"`
	Phase string `yaml:"phase"`
}

// CAConfig tunes the growth stage. MaxIterations bounds growth on its own,
// independently of the final stage.
type CAConfig struct {
	Probability   int `yaml:"probability"`
	MaxIterations int `yaml:"max_iterations"`
}

// MCConfig sets the number of coarsening sweeps.
type MCConfig struct {
	Sweeps int `yaml:"sweeps"`
}

type EnergyConfig struct {
	Distribution string `yaml:"distribution"`
	Inside       int    `yaml:"inside"`
	OnEdges      int    `yaml:"on_edges"`
}

type SRXConfig struct {
	Module        string `yaml:"module"`
	Cycle         int    `yaml:"cycle"`
	Increment     int    `yaml:"increment"`
	InitialNuclei int    `yaml:"initial_nuclei"`
	OnBoundary    bool   `yaml:"on_boundary"`
}

// RunConfig bounds the number of steps of the final stage. For the ca
// method growth is the final stage, so both limits apply.
type RunConfig struct {
	MaxIterations int `yaml:"max_iterations"`
}

// BoundaryConfig converts every grain boundary into inclusions once growth
// has finished.
type BoundaryConfig struct {
	Inclusions bool `yaml:"inclusions"`
}

// OutputConfig names the files written after a run. Empty paths are skipped.
type OutputConfig struct {
	Text    string `yaml:"text"`
	CSV     string `yaml:"csv"`
	Metrics string `yaml:"metrics"`
}

// DerivedConfig holds the parsed enum values.
type DerivedConfig struct {
	Shape        geometry.Shape
	Distribution grain.Distribution
	Schedule     srx.Schedule
	Bulk         bool
	AfterGrowth  bool
}

// Load reads the embedded defaults and overlays the file at path, if any.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only keys present in the file overwrite defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and enum names and fills Derived.
func (c *Config) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field: size %dx%d must be positive", c.Field.Width, c.Field.Height))
	}
	switch c.Method {
	case MethodCA, MethodMC, MethodSRX:
	default:
		errs = append(errs, fmt.Errorf("method: unknown %q", c.Method))
	}
	switch c.Nucleation.Mode {
	case "random":
		c.Derived.Bulk = false
	case "bulk":
		c.Derived.Bulk = true
	default:
		errs = append(errs, fmt.Errorf("nucleation.mode: unknown %q", c.Nucleation.Mode))
	}
	if c.Nucleation.Grains <= 0 {
		errs = append(errs, fmt.Errorf("nucleation.grains: %d must be positive", c.Nucleation.Grains))
	}
	if c.Inclusions.Count < 0 || c.Inclusions.Size <= 0 {
		errs = append(errs, fmt.Errorf("inclusions: count %d size %d out of range", c.Inclusions.Count, c.Inclusions.Size))
	}
	if shape, err := geometry.ParseShape(c.Inclusions.Shape); err != nil {
		errs = append(errs, fmt.Errorf("inclusions.shape: %w", err))
	} else {
		c.Derived.Shape = shape
	}
	switch c.Inclusions.Phase {
	case "before":
		c.Derived.AfterGrowth = false
	case "after":
		c.Derived.AfterGrowth = true
	default:
		errs = append(errs, fmt.Errorf("inclusions.phase: unknown %q", c.Inclusions.Phase))
	}
	if c.CA.Probability < 0 || c.CA.Probability > 100 {
		errs = append(errs, fmt.Errorf("ca.probability: %d not in [0, 100]", c.CA.Probability))
	}
	if c.CA.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("ca.max_iterations: %d must be positive", c.CA.MaxIterations))
	}
	if c.MC.Sweeps < 0 {
		errs = append(errs, fmt.Errorf("mc.sweeps: %d must not be negative", c.MC.Sweeps))
	}
	if d, err := grain.ParseDistribution(c.Energy.Distribution); err != nil {
		errs = append(errs, fmt.Errorf("energy.distribution: %w", err))
	} else {
		c.Derived.Distribution = d
	}
	if c.Energy.Inside < 0 || c.Energy.OnEdges < 0 {
		errs = append(errs, fmt.Errorf("energy: inside %d on_edges %d must not be negative", c.Energy.Inside, c.Energy.OnEdges))
	}
	if m, err := srx.ParseModule(c.SRX.Module); err != nil {
		errs = append(errs, fmt.Errorf("srx.module: %w", err))
	} else {
		c.Derived.Schedule = srx.Schedule{Module: m, Cycle: c.SRX.Cycle, Increment: c.SRX.Increment}
	}
	if c.SRX.Cycle < 0 || c.SRX.Increment < 0 || c.SRX.InitialNuclei < 0 {
		errs = append(errs, fmt.Errorf("srx: cycle %d increment %d initial_nuclei %d must not be negative",
			c.SRX.Cycle, c.SRX.Increment, c.SRX.InitialNuclei))
	}
	if c.Run.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("run.max_iterations: %d must be positive", c.Run.MaxIterations))
	}
	return errors.Join(errs...)
}

// WriteYAML saves the config to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
