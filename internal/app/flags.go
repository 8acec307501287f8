package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	SPS      int
	HUDWidth int
	Seed     int64
	Params   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "ca", Scale: 3, TPS: 60, SPS: 20, HUDWidth: 260, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (ca, mc, srxmc)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.SPS, "sps", c.SPS, "engine steps per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the status panel, 0 hides it")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.Params, "params", c.Params, "engine parameters as key=value pairs separated by commas")
}

// ParamMap splits Params into the map accepted by a core.Factory. Entries
// without '=' are ignored.
func (c *Config) ParamMap() map[string]string {
	out := make(map[string]string)
	for _, kv := range strings.Split(c.Params, ",") {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		out[k] = strings.TrimSpace(v)
	}
	return out
}
