package observability

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/davidbz/chatcost/internal/config"
)

const (
	maxLoggerFieldCapacity int = 2 // Maximum number of context fields to add to logger
)

// Global logger instance - shared across the application.
// This is intentional: loggers should not be stored in context.
//
//nolint:gochecknoglobals // Singleton logger is a standard pattern
var (
	globalLogger *zap.Logger
	loggerMu     sync.RWMutex
)

// InitLogger initializes the base logger (called once at startup).
func InitLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()

	if cfg != nil && cfg.Level != "" {
		level, err := zap.ParseAtomicLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zapConfig.Level = level
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerMu.Lock()
	globalLogger = logger
	loggerMu.Unlock()

	return logger, nil
}

// getBaseLogger returns the global logger instance.
func getBaseLogger() *zap.Logger {
	loggerMu.RLock()
	logger := globalLogger
	loggerMu.RUnlock()

	if logger == nil {
		// Fallback to production logger if not initialized
		logger, _ = zap.NewProduction()
	}

	return logger
}

// FromContext creates a logger with fields extracted from context.
func FromContext(ctx context.Context) *zap.Logger {
	return getBaseLogger().With(ContextFields(ctx)...)
}

// ContextFields returns the log fields carried by the context.
func ContextFields(ctx context.Context) []zap.Field {
	fields := make([]zap.Field, 0, maxLoggerFieldCapacity)

	if currency := GetCurrency(ctx); currency != "" {
		fields = append(fields, zap.String("currency", currency))
	}

	if count := GetCountMode(ctx); count != "" {
		fields = append(fields, zap.String("count", count))
	}

	return fields
}
