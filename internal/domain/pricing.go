package domain

import "context"

// PricingConfig contains model pricing information.
type PricingConfig struct {
	InputCostPer1M  float64 // base currency per 1M input tokens
	OutputCostPer1M float64 // base currency per 1M output tokens
}

// PricingRegistry maintains pricing information for models.
type PricingRegistry interface {
	// GetPricing returns pricing config for a model.
	GetPricing(ctx context.Context, model string) (PricingConfig, error)

	// RegisterPricing adds pricing for a model.
	RegisterPricing(ctx context.Context, model string, config PricingConfig) error
}

// DiagnosticReporter receives non-fatal findings made while pricing a conversation.
type DiagnosticReporter interface {
	// UnknownModel is called once per record whose model has no pricing.
	UnknownModel(ctx context.Context, model string)
}

// NopReporter discards all diagnostics.
type NopReporter struct{}

// UnknownModel implements DiagnosticReporter.
func (NopReporter) UnknownModel(context.Context, string) {}
