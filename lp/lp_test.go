package lp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hadar-solver/hadar-go/builder"
	"github.com/hadar-solver/hadar-go/domain"
	"github.com/hadar-solver/hadar-go/lp"
)

func solveAll(t *testing.T, study *domain.Study) (*domain.Result, float64) {
	t.Helper()
	scenarios := make([]int, study.NbScn)
	for i := range scenarios {
		scenarios[i] = i
	}
	sys, err := lp.BuildSystem(study, scenarios)
	require.NoError(t, err)
	problem, err := lp.BuildProblem(sys)
	require.NoError(t, err)
	sol, err := problem.Solve(context.Background())
	require.NoError(t, err)
	result := lp.NewResultFromStudy(study)
	lp.FillResult(result, sys, sol)
	return result, sol.Objective
}

// S1 — single node, sufficient production.
func TestLP_S1SufficientProduction(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(3, 1).
		Network("default").
		Node("a").
		Consumption("load", 1e6, []float64{100, 100, 100}).
		Production("prod", 10.0, []float64{200, 200, 200}).
		Build()
	require.NoError(err)

	result, objective := solveAll(t, study)
	require.InDelta(3000.0, objective, 1e-6)

	node, _ := result.Network("default").Node("a")
	for t := 0; t < 3; t++ {
		require.InDelta(100.0, node.Productions[0].Used.At(0, t), 1e-6)
		require.InDelta(100.0, node.Consumptions[0].Given.At(0, t), 1e-6)
		require.InDelta(0.0, node.Consumptions[0].Lost.At(0, t), 1e-6)
	}
}

// S2 — two nodes with a link, cheapest dispatch.
func TestLP_S2CheapestDispatchAcrossLink(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(1, 1).
		Network("default").
		Node("a").
		Consumption("load", 1e6, 100.0).
		Production("prod", 50.0, 100.0).
		Node("b").
		Production("prod", 10.0, 100.0).
		Link("b", "a", 100.0, 1.0).
		Build()
	require.NoError(err)

	result, objective := solveAll(t, study)
	require.InDelta(1100.0, objective, 1e-6)

	a, _ := result.Network("default").Node("a")
	b, _ := result.Network("default").Node("b")
	require.InDelta(0.0, a.Productions[0].Used.At(0, 0), 1e-6)
	require.InDelta(100.0, b.Productions[0].Used.At(0, 0), 1e-6)
	require.InDelta(100.0, b.Links[0].Used.At(0, 0), 1e-6)
}

// S3 — lost load.
func TestLP_S3LostLoad(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(1, 1).
		Network("default").
		Node("a").
		Consumption("load", 1e6, 100.0).
		Production("prod", 10.0, 60.0).
		Build()
	require.NoError(err)

	result, objective := solveAll(t, study)
	require.InDelta(40_000_600.0, objective, 1e-3)

	node, _ := result.Network("default").Node("a")
	require.InDelta(60.0, node.Productions[0].Used.At(0, 0), 1e-6)
	require.InDelta(60.0, node.Consumptions[0].Given.At(0, 0), 1e-6)
	require.InDelta(40.0, node.Consumptions[0].Lost.At(0, 0), 1e-6)
}

// S4 — scenario independence: objective scales linearly with
// identical, independent scenarios.
func TestLP_S4ScenarioIndependence(t *testing.T) {
	require := require.New(t)

	one, err := builder.Study(1, 1).
		Network("default").Node("a").
		Consumption("load", 1e6, 100.0).
		Production("prod", 10.0, 60.0).
		Build()
	require.NoError(err)
	_, singleObjective := solveAll(t, one)

	two, err := builder.Study(1, 2).
		Network("default").Node("a").
		Consumption("load", 1e6, 100.0).
		Production("prod", 10.0, 60.0).
		Build()
	require.NoError(err)
	_, doubleObjective := solveAll(t, two)

	require.InDelta(2*singleObjective, doubleObjective, 1e-3)
}

// S5 — storage smoothing.
func TestLP_S5StorageSmoothing(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(3, 1).
		Network("default").
		Node("a").
		Consumption("load", 1e6, []float64{0, 100, 0}).
		Production("prod", 10.0, []float64{50, 50, 50}).
		Storage("batt", 100.0, 50.0, 50.0, 0.0, 0.0, builder.WithEfficiency(1.0)).
		Build()
	require.NoError(err)

	result, _ := solveAll(t, study)
	node, _ := result.Network("default").Node("a")
	require.InDelta(50.0, node.Storages[0].FlowIn.At(0, 0), 1e-6, "t=0 should store the surplus production")
	require.InDelta(50.0, node.Storages[0].FlowOut.At(0, 1), 1e-6, "t=1 should drain to cover the demand spike")
}

// P1 — flow balance holds at every solved (scn, t, node).
func TestLP_P1FlowBalance(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(2, 1).
		Network("default").
		Node("a").
		Consumption("load", 1e6, []float64{80, 40}).
		Production("prod", 10.0, []float64{100, 100}).
		Build()
	require.NoError(err)

	result, _ := solveAll(t, study)
	node, _ := result.Network("default").Node("a")
	for tm := 0; tm < 2; tm++ {
		lhs := node.Productions[0].Used.At(0, tm) + node.Consumptions[0].Lost.At(0, tm)
		rhs := node.Consumptions[0].Asked.At(0, tm)
		require.InDelta(rhs, lhs, 1e-6)
	}
}

// P4 — determinism: repeated solves of the same Study produce
// bit-identical objective values.
func TestLP_P4Determinism(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(4, 2).
		Network("default").
		Node("a").
		Consumption("load", 1e6, []float64{80, 40, 90, 10}).
		Production("prod", 10.0, []float64{100, 100, 100, 100}).
		Node("b").
		Production("prod", 25.0, []float64{50, 50, 50, 50}).
		Link("b", "a", 40.0, 2.0).
		Build()
	require.NoError(err)

	_, first := solveAll(t, study)
	_, second := solveAll(t, study)
	require.Equal(first, second, "repeated solves of the same Study must produce bit-identical objectives")
}

// P2 — bound compliance.
func TestLP_P2BoundCompliance(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(1, 1).
		Network("default").
		Node("a").
		Consumption("load", 1e6, 100.0).
		Production("prod", 10.0, 60.0).
		Build()
	require.NoError(err)

	result, _ := solveAll(t, study)
	node, _ := result.Network("default").Node("a")
	require.GreaterOrEqual(node.Productions[0].Used.At(0, 0), -1e-9)
	require.LessOrEqual(node.Productions[0].Used.At(0, 0), 60.0+1e-9)
}
