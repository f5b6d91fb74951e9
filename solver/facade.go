package solver

import (
	"context"
	"runtime"

	"github.com/hadar-solver/hadar-go/domain"
	"github.com/hadar-solver/hadar-go/hadarlog"
)

// config holds the functional options for Solve, the same
// function-option shape as builder.StorageOption (spec §4.9/§6.1).
type config struct {
	workers int
	url     string
	token   string
}

// Option configures a Solve call.
type Option func(*config)

// WithWorkers overrides the default runtime.NumCPU() worker count used
// by the "lp" backend.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithURL sets the remote backend's endpoint, required for "remote".
func WithURL(url string) Option {
	return func(c *config) { c.url = url }
}

// WithToken sets the remote backend's auth token.
func WithToken(token string) Option {
	return func(c *config) { c.token = token }
}

// Solve is hadar's single entry point (spec §6.1): kind "lp" solves
// in-process, "remote" delegates to a remote backend over HTTP, any
// other kind is UnsupportedBackendError.
func Solve(ctx context.Context, study *domain.Study, kind string, opts ...Option) (*domain.Result, error) {
	cfg := &config{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx = hadarlog.EnsureFromEnv(ctx)

	switch kind {
	case "lp":
		return SolveLP(ctx, study, cfg.workers)
	case "remote":
		return SolveRemote(ctx, study, cfg.url, cfg.token)
	default:
		return nil, UnsupportedBackendError{Kind: kind}
	}
}
