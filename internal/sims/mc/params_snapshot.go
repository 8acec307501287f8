package mc

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
	}}
}
