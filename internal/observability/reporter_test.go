package observability_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/chatcost/internal/observability"
)

func TestUnknownModelReporter_UnknownModel(t *testing.T) {
	t.Run("should warn with model and request fields", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		reporter := observability.NewUnknownModelReporter(zap.New(core), nil)

		ctx := observability.WithCurrency(context.Background(), "HUF")
		ctx = observability.WithCountMode(ctx, "total")

		reporter.UnknownModel(ctx, "gpt-5")

		entries := logs.All()
		require.Len(t, entries, 1)
		require.Equal(t, zapcore.WarnLevel, entries[0].Level)
		require.Equal(t, "unknown model", entries[0].Message)
		require.Equal(t, map[string]interface{}{
			"model":    "gpt-5",
			"currency": "HUF",
			"count":    "total",
		}, entries[0].ContextMap())
	})

	t.Run("should count unknown models per model", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		metrics, err := observability.NewMetrics(prometheus.NewRegistry())
		require.NoError(t, err)

		reporter := observability.NewUnknownModelReporter(zap.New(core), metrics)
		ctx := context.Background()

		reporter.UnknownModel(ctx, "gpt-5")
		reporter.UnknownModel(ctx, "gpt-5")
		reporter.UnknownModel(ctx, "claude")

		require.Equal(t, 3, logs.Len())
		require.InDelta(t, 2, testutil.ToFloat64(metrics.UnknownModels.WithLabelValues("gpt-5")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(metrics.UnknownModels.WithLabelValues("claude")), 0)
		require.Equal(t, 2, testutil.CollectAndCount(metrics.UnknownModels))
	})
}

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	// Registering twice against the same registry is rejected.
	_, err = observability.NewMetrics(reg)
	require.Error(t, err)
}
