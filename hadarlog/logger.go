package hadarlog

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

// ctxKey is unexported so no other package can collide on it.
type ctxKey struct{}

// FromEnv builds a Logger from HADAR_LOG (spec §6.4), defaulting to
// WARNING when unset or unrecognized.
func FromEnv() zerolog.Logger {
	level := zerolog.WarnLevel
	switch os.Getenv("HADAR_LOG") {
	case "DEBUG":
		level = zerolog.DebugLevel
	case "INFO":
		level = zerolog.InfoLevel
	case "WARNING":
		level = zerolog.WarnLevel
	case "ERROR":
		level = zerolog.ErrorLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// WithLogger returns a child context carrying logger.
func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext recovers the logger stored in ctx, falling back to a
// disabled logger (zerolog.Nop) if none was attached — callers never
// need a nil check.
func FromContext(ctx context.Context) zerolog.Logger {
	if logger, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return logger
	}
	return zerolog.Nop()
}

// EnsureFromEnv attaches a HADAR_LOG-configured logger (FromEnv) to ctx
// if one isn't already present, so the first entry point a request
// passes through — solver.Solve for in-process callers, Server.ServeHTTP
// for remote requests — fixes the logger for the rest of that call's
// descendants instead of leaving FromContext to fall back to Nop.
func EnsureFromEnv(ctx context.Context) context.Context {
	if _, ok := ctx.Value(ctxKey{}).(zerolog.Logger); ok {
		return ctx
	}
	return WithLogger(ctx, FromEnv())
}
