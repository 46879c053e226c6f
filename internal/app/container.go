// Package app wires configuration, observability and pricing into a ready cost calculator.
package app

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/chatcost/internal/config"
	"github.com/davidbz/chatcost/internal/domain"
	"github.com/davidbz/chatcost/internal/observability"
	"github.com/davidbz/chatcost/internal/provider/openai"
)

// NewCalculator builds the container and resolves the cost calculator from it.
func NewCalculator() (*domain.StandardCostCalculator, error) {
	container, err := BuildContainer()
	if err != nil {
		return nil, err
	}

	var calculator *domain.StandardCostCalculator
	if err := container.Invoke(func(c *domain.StandardCostCalculator) {
		calculator = c
	}); err != nil {
		observability.FromContext(context.Background()).Error("failed to resolve cost calculator",
			observability.Error(err),
		)
		return nil, fmt.Errorf("failed to resolve cost calculator: %w", err)
	}

	return calculator, nil
}

// BuildContainer registers every constructor the cost calculator depends on.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		name        string
		constructor interface{}
	}{
		// Configuration
		{name: "config", constructor: config.Load},
		{name: "config dependencies", constructor: config.ParseDependenciesConfig},

		// Observability
		{name: "logger", constructor: observability.InitLogger},
		{name: "metrics registry", constructor: prometheus.NewRegistry},
		{name: "metrics", constructor: func(reg *prometheus.Registry) (*observability.Metrics, error) {
			return observability.NewMetrics(reg)
		}},
		{name: "diagnostic reporter", constructor: func(
			logger *zap.Logger,
			metrics *observability.Metrics,
		) domain.DiagnosticReporter {
			return observability.NewUnknownModelReporter(logger, metrics)
		}},

		// Pricing
		{name: "pricing registry", constructor: newPricingRegistry},
		{name: "exchange rate", constructor: newExchangeRate},

		// Domain Services
		{name: "cost calculator", constructor: domain.NewStandardCostCalculator},
	}

	for _, p := range providers {
		if err := container.Provide(p.constructor); err != nil {
			return nil, fmt.Errorf("failed to provide %s: %w", p.name, err)
		}
	}

	return container, nil
}

func newPricingRegistry(logger *zap.Logger) (domain.PricingRegistry, error) {
	ctx := context.Background()
	registry := domain.NewInMemoryPricingRegistry()

	if err := openai.RegisterPricing(ctx, registry); err != nil {
		return nil, fmt.Errorf("failed to register OpenAI pricing: %w", err)
	}

	logger.Debug("pricing registered",
		observability.Int("models", len(registry.Models(ctx))),
	)

	return registry, nil
}

func newExchangeRate(cfg *config.CurrencyConfig) (domain.ExchangeRate, error) {
	rate, err := domain.NewExchangeRate(
		domain.Currency(cfg.Base),
		domain.Currency(cfg.Quote),
		cfg.ExchangeRate,
	)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("invalid currency config: %w", err)
	}

	return rate, nil
}
