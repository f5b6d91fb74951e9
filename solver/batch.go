package solver

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/hadar-solver/hadar-go/domain"
	"github.com/hadar-solver/hadar-go/hadarlog"
	"github.com/hadar-solver/hadar-go/internal/simplex"
	"github.com/hadar-solver/hadar-go/lp"
)

// SolveLP runs the in-process LP backend: it partitions
// {0,...,study.NbScn-1} into at most workers contiguous batches (spec
// §4.7), builds and solves one independent LP per batch, and merges
// the results. Scenarios are independent — per-batch LPs are exact, no
// coupling is lost by batching.
//
// If ctx carries a deadline and it expires before every worker
// returns, SolveLP discards whatever batches did complete and returns
// TimeoutError (spec §5): no partial results.
func SolveLP(ctx context.Context, study *domain.Study, workers int) (*domain.Result, error) {
	ctx = hadarlog.EnsureFromEnv(ctx)
	if workers < 1 {
		workers = 1
	}
	batches := partition(study.NbScn, workers)
	result := lp.NewResultFromStudy(study)
	logger := hadarlog.FromContext(ctx)

	eg, gctx := errgroup.WithContext(ctx)
	for _, batch := range batches {
		batch := batch
		eg.Go(func() error {
			logger.Debug().Ints("scenarios", batch).Msg("solving batch")
			sys, err := lp.BuildSystem(study, batch)
			if err != nil {
				return OptimizerError{Scenario: batch[0], Err: err}
			}
			problem, err := lp.BuildProblem(sys)
			if err != nil {
				return OptimizerError{Scenario: batch[0], Err: err}
			}
			sol, err := problem.Solve(gctx)
			if err != nil {
				if errors.Is(err, simplex.ErrInfeasible) {
					err = lp.InfeasibleError{Scenario: batch[0]}
				}
				logger.Warn().Err(err).Ints("scenarios", batch).Msg("batch solve failed")
				return OptimizerError{Scenario: batch[0], Err: err}
			}
			lp.FillResult(result, sys, sol)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		if ctx.Err() != nil {
			logger.Warn().Int("nb_scn", study.NbScn).Msg("solve cancelled before every batch finished")
			return nil, TimeoutError{}
		}
		return nil, err
	}
	return result, nil
}

// partition splits {0,...,nbScn-1} into at most workers contiguous,
// ascending batches of nearly-equal size (spec §4.7/§5 "ordering").
func partition(nbScn, workers int) [][]int {
	if workers > nbScn {
		workers = nbScn
	}
	base, rem := nbScn/workers, nbScn%workers
	batches := make([][]int, workers)
	scn := 0
	for i := 0; i < workers; i++ {
		size := base
		if i < rem {
			size++
		}
		b := make([]int, size)
		for j := range b {
			b[j] = scn
			scn++
		}
		batches[i] = b
	}
	return batches
}
