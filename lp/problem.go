package lp

import "github.com/hadar-solver/hadar-go/internal/simplex"

// BuildProblem assembles sys's objective, bounds, and adequacy rows
// into a simplex.Problem ready to solve. Each worker in the batch
// driver calls this once per batch (spec §4.7: "each batch
// independently constructs its own solver instance, objective, and
// adequacy").
func BuildProblem(sys *System) (*simplex.Problem, error) {
	rows, err := BuildRows(sys)
	if err != nil {
		return nil, err
	}
	lower, upper := sys.Bounds()
	return &simplex.Problem{
		NumVars: sys.NumVars,
		Cost:    BuildObjective(sys),
		Lower:   lower,
		Upper:   upper,
		Rows:    rows,
	}, nil
}
