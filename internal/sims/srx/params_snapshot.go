package srx

import "grain-ca/internal/core"

func (e *Engine) Parameters() core.ParameterSnapshot {
	c := e.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.Int64Param("seed", "Seed", c.Seed),
				core.IntParam("states", "Initial ids", c.States),
				core.IntParam("sweeps", "MC relaxation sweeps", c.Sweeps),
			},
		},
		{
			Name: "Inclusions",
			Params: []core.Parameter{
				core.IntParam("inclusions", "Count", c.Inclusions),
				core.IntParam("inclusion_size", "Size", c.InclusionSize),
				core.StringParam("inclusion_shape", "Shape", c.InclusionShape.String()),
			},
		},
		{
			Name: "Energy",
			Params: []core.Parameter{
				core.StringParam("distribution", "Distribution", c.Distribution.String()),
				core.IntParam("inside", "Inside grains", c.Inside),
				core.IntParam("on_edges", "On boundaries", c.OnEdges),
			},
		},
		{
			Name: "Nucleation",
			Params: []core.Parameter{
				core.StringParam("module", "Module", c.Schedule.Module.String()),
				core.IntParam("cycle", "Cycle (sweeps)", c.Schedule.Cycle),
				core.IntParam("increment", "Increment", c.Schedule.Increment),
				core.IntParam("initial_nuclei", "Initial nuclei", c.InitialNuclei),
				core.BoolParam("on_boundary", "Nucleate on boundaries", c.OnBoundary),
			},
		},
	}}
}
