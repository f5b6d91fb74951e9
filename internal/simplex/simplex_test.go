package simplex_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hadar-solver/hadar-go/internal/simplex"
)

// minimize 10x0 + 1e6*x1 s.t. x0 + x1 = 60, 0<=x0<=60, 0<=x1<=100.
func TestProblem_SolveBasicMinimization(t *testing.T) {
	require := require.New(t)

	p := &simplex.Problem{
		NumVars: 2,
		Cost:    []float64{10, 1e6},
		Lower:   []float64{0, 0},
		Upper:   []float64{60, 100},
		Rows: []simplex.Row{
			{Coeffs: map[int]float64{0: 1, 1: 1}, RHS: 60},
		},
	}
	sol, err := p.Solve(context.Background())
	require.NoError(err)
	require.InDelta(60.0, sol.Values[0], 1e-6)
	require.InDelta(0.0, sol.Values[1], 1e-6)
	require.InDelta(600.0, sol.Objective, 1e-6)
}

func TestProblem_SolveInfeasible(t *testing.T) {
	p := &simplex.Problem{
		NumVars: 1,
		Cost:    []float64{1},
		Lower:   []float64{0},
		Upper:   []float64{10},
		Rows: []simplex.Row{
			{Coeffs: map[int]float64{0: 1}, RHS: 50},
		},
	}
	_, err := p.Solve(context.Background())
	require.True(t, errors.Is(err, simplex.ErrInfeasible), "RHS 50 exceeds the only variable's upper bound of 10")
}

func TestProblem_SolveRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &simplex.Problem{
		NumVars: 1,
		Cost:    []float64{1},
		Lower:   []float64{0},
		Upper:   []float64{10},
		Rows: []simplex.Row{
			{Coeffs: map[int]float64{0: 1}, RHS: 5},
		},
	}
	_, err := p.Solve(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestProblem_NoRowsReturnsLowerBounds(t *testing.T) {
	p := &simplex.Problem{
		NumVars: 2,
		Cost:    []float64{1, 1},
		Lower:   []float64{0, 0},
		Upper:   []float64{10, 10},
	}
	sol, err := p.Solve(context.Background())
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, sol.Values)
}
