package lp

import "fmt"

// InfeasibleError reports that the bundled solver found no feasible
// basis for one batch's linear program, with the (scenario, time, node)
// triple identified if the backend could attribute it (spec §7).
type InfeasibleError struct {
	Scenario int
	Time     int
	Node     string
}

func (e InfeasibleError) Error() string {
	return fmt.Sprintf("lp: infeasible at scenario %d, time %d, node %q", e.Scenario, e.Time, e.Node)
}
