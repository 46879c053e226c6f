package observability_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/chatcost/internal/observability"
)

func TestFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	logger.Error("failed to resolve cost calculator",
		observability.String("model", "gpt-4-1"),
		observability.Int("models", 3),
		observability.Error(errors.New("boom")),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, map[string]interface{}{
		"model":  "gpt-4-1",
		"models": int64(3),
		"error":  "boom",
	}, entries[0].ContextMap())
}
