package hadarlog_test

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/hadar-solver/hadar-go/hadarlog"
)

func TestFromEnv_DefaultsToWarning(t *testing.T) {
	require := require.New(t)
	require.NoError(os.Unsetenv("HADAR_LOG"))
	logger := hadarlog.FromEnv()
	require.Equal(zerolog.WarnLevel, logger.GetLevel())
}

func TestFromEnv_ReadsLevel(t *testing.T) {
	require := require.New(t)
	t.Setenv("HADAR_LOG", "DEBUG")
	logger := hadarlog.FromEnv()
	require.Equal(zerolog.DebugLevel, logger.GetLevel())
}

func TestContext_RoundTrip(t *testing.T) {
	require := require.New(t)
	logger := zerolog.New(os.Stderr).Level(zerolog.ErrorLevel)
	ctx := hadarlog.WithLogger(context.Background(), logger)
	require.Equal(zerolog.ErrorLevel, hadarlog.FromContext(ctx).GetLevel())
}

func TestContext_FallsBackToNop(t *testing.T) {
	require.Equal(t, zerolog.Disabled, hadarlog.FromContext(context.Background()).GetLevel())
}

func TestEnsureFromEnv_AttachesWhenAbsent(t *testing.T) {
	require := require.New(t)
	t.Setenv("HADAR_LOG", "DEBUG")

	ctx := hadarlog.EnsureFromEnv(context.Background())
	require.Equal(zerolog.DebugLevel, hadarlog.FromContext(ctx).GetLevel())
}

func TestEnsureFromEnv_DoesNotOverrideCallerLogger(t *testing.T) {
	require := require.New(t)
	t.Setenv("HADAR_LOG", "DEBUG")

	logger := zerolog.New(os.Stderr).Level(zerolog.ErrorLevel)
	ctx := hadarlog.WithLogger(context.Background(), logger)

	ctx = hadarlog.EnsureFromEnv(ctx)
	require.Equal(zerolog.ErrorLevel, hadarlog.FromContext(ctx).GetLevel(), "a caller-attached logger must win over HADAR_LOG")
}
