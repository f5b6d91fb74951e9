package solver_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hadar-solver/hadar-go/builder"
	"github.com/hadar-solver/hadar-go/solver"
)

func TestSolve_LPBackendS3LostLoad(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(1, 1).
		Network("default").
		Node("a").
		Consumption("load", 1e6, 100.0).
		Production("prod", 10.0, 60.0).
		Build()
	require.NoError(err)

	result, err := solver.Solve(context.Background(), study, "lp", solver.WithWorkers(2))
	require.NoError(err)

	node, ok := result.Network("default").Node("a")
	require.True(ok)
	require.InDelta(40.0, node.Consumptions[0].Lost.At(0, 0), 1e-6)
}

func TestSolve_UnsupportedBackend(t *testing.T) {
	study, err := builder.Study(1, 1).Network("default").Node("a").Build()
	require.NoError(t, err)

	_, err = solver.Solve(context.Background(), study, "actor")
	var unsupported solver.UnsupportedBackendError
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, "actor", unsupported.Kind)
}

func TestSolve_BatchDriverMoreWorkersThanScenarios(t *testing.T) {
	require := require.New(t)

	study, err := builder.Study(1, 3).
		Network("default").
		Node("a").
		Consumption("load", 1e6, 50.0).
		Production("prod", 10.0, 50.0).
		Build()
	require.NoError(err)

	result, err := solver.Solve(context.Background(), study, "lp", solver.WithWorkers(8))
	require.NoError(err)
	node, _ := result.Network("default").Node("a")
	for scn := 0; scn < 3; scn++ {
		require.InDelta(50.0, node.Productions[0].Used.At(scn, 0), 1e-6)
	}
}

func TestSolve_RemoteBackendRoundTrip(t *testing.T) {
	require := require.New(t)

	srv := &solver.Server{Workers: 1}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	study, err := builder.Study(1, 1).
		Network("default").
		Node("a").
		Consumption("load", 1e6, 100.0).
		Production("prod", 10.0, 60.0).
		Build()
	require.NoError(err)

	result, err := solver.Solve(context.Background(), study, "remote", solver.WithURL(ts.URL), solver.WithToken(""))
	require.NoError(err)

	node, ok := result.Network("default").Node("a")
	require.True(ok)
	require.InDelta(60.0, node.Productions[0].Used.At(0, 0), 1e-6)
}

func TestSolve_RemoteBackendAuthError(t *testing.T) {
	require := require.New(t)

	srv := &solver.Server{Workers: 1, Token: "secret"}
	ts := httptest.NewServer(srv)
	defer ts.Close()

	study, err := builder.Study(1, 1).Network("default").Node("a").Build()
	require.NoError(err)

	_, err = solver.Solve(context.Background(), study, "remote", solver.WithURL(ts.URL), solver.WithToken("wrong"))
	var authErr solver.AuthError
	require.True(errors.As(err, &authErr))
}
