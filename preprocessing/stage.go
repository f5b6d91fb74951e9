package preprocessing

// Stage is a unit transformation on a ScenarioTable (spec §4.1). Apply
// must not mutate its input table.
type Stage interface {
	Plug() Plug
	Apply(table ScenarioTable) (ScenarioTable, error)
}

// stageFunc adapts a plain function plus its Plug into a Stage,
// mirroring how most of the stage catalog below is defined: a fixed
// Plug and a pure ScenarioTable -> ScenarioTable transform.
type stageFunc struct {
	plug Plug
	fn   func(ScenarioTable) (ScenarioTable, error)
}

func (s stageFunc) Plug() Plug { return s.plug }
func (s stageFunc) Apply(t ScenarioTable) (ScenarioTable, error) {
	return s.fn(t)
}

func newStage(plug Plug, fn func(ScenarioTable) (ScenarioTable, error)) Stage {
	return stageFunc{plug: plug, fn: fn}
}
