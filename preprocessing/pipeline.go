package preprocessing

// Pipeline is an ordered, type-checked chain of Stages (spec §4.1).
// Then always returns a fresh Pipeline; no Pipeline value is ever
// mutated after construction (spec §9 "Mutation of builder
// intermediates" is explicitly re-expressed away).
type Pipeline struct {
	stages []Stage
	plug   Plug
}

// NewPipeline starts a Pipeline with a single stage.
func NewPipeline(first Stage) *Pipeline {
	return &Pipeline{stages: []Stage{first}, plug: first.Plug()}
}

// Then composes next after the pipeline's current tail, returning a
// new Pipeline value, or a LinkError if the composition is invalid
// (spec §4.1 "Composition rule").
func (p *Pipeline) Then(next Stage) (*Pipeline, error) {
	composed, err := p.plug.Compose(next.Plug())
	if err != nil {
		return nil, err
	}
	stages := make([]Stage, len(p.stages)+1)
	copy(stages, p.stages)
	stages[len(p.stages)] = next
	return &Pipeline{stages: stages, plug: composed}, nil
}

// Plug returns the pipeline's overall input/output contract, as if it
// were a single Stage.
func (p *Pipeline) Plug() Plug { return p.plug }

// Stages returns the pipeline's stages in execution order.
func (p *Pipeline) Stages() []Stage {
	out := make([]Stage, len(p.stages))
	copy(out, p.stages)
	return out
}

// Compute normalizes table, verifies the head stage's required inputs
// are present, then runs every stage in order, copying the table
// between stages (spec §4.1 "Execution").
func (p *Pipeline) Compute(table ScenarioTable) (ScenarioTable, error) {
	t := normalize(table)
	if !p.stages[0].Plug().Free() {
		for _, scn := range t.Scenarios() {
			if missing := hasAll(t.Signals(scn), p.stages[0].Plug().inputs); len(missing) > 0 {
				return ScenarioTable{}, LinkError{Missing: missing}
			}
		}
	}
	for _, stage := range p.stages {
		next, err := stage.Apply(t.Clone())
		if err != nil {
			return ScenarioTable{}, err
		}
		t = next
	}
	return t, nil
}
