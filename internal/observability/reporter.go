package observability

import (
	"context"

	"go.uber.org/zap"
)

// UnknownModelReporter logs and counts conversation records whose model has no pricing.
type UnknownModelReporter struct {
	logger  *zap.Logger
	metrics *Metrics
}

// NewUnknownModelReporter creates a reporter (DI constructor).
// A nil logger falls back to the process logger; nil metrics disables counting.
func NewUnknownModelReporter(logger *zap.Logger, metrics *Metrics) *UnknownModelReporter {
	return &UnknownModelReporter{
		logger:  logger,
		metrics: metrics,
	}
}

// UnknownModel warns about a record priced at zero.
func (r *UnknownModelReporter) UnknownModel(ctx context.Context, model string) {
	logger := r.logger
	if logger == nil {
		logger = getBaseLogger()
	}

	logger.With(ContextFields(ctx)...).Warn("unknown model", String("model", model))

	if r.metrics != nil {
		r.metrics.UnknownModels.WithLabelValues(model).Inc()
	}
}
