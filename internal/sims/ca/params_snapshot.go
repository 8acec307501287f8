package ca

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
			},
		},
		{
			Name: "Nucleation",
			Params: []core.Parameter{
				core.IntParam("grains", "Initial grains", c.Grains),
				core.IntParam("inclusions", "Inclusions", c.Inclusions),
				core.IntParam("inclusion_size", "Inclusion size", c.InclusionSize),
				core.StringParam("inclusion_shape", "Inclusion shape", c.InclusionShape.String()),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				core.IntParam("probability", "Fallback rule chance (%)", c.Probability),
			},
		},
	}}
}
