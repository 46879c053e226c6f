package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// InMemoryPricingRegistry stores pricing configs in memory.
type InMemoryPricingRegistry struct {
	mu      sync.RWMutex
	pricing map[string]PricingConfig
}

// NewInMemoryPricingRegistry creates a new in-memory pricing registry.
func NewInMemoryPricingRegistry() *InMemoryPricingRegistry {
	return &InMemoryPricingRegistry{
		mu:      sync.RWMutex{},
		pricing: make(map[string]PricingConfig),
	}
}

// GetPricing retrieves pricing for a model.
func (r *InMemoryPricingRegistry) GetPricing(
	_ context.Context,
	model string,
) (PricingConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	config, exists := r.pricing[model]
	if !exists {
		return PricingConfig{}, fmt.Errorf("%w for model: %s", ErrPricingNotFound, model)
	}

	return config, nil
}

// RegisterPricing adds pricing for a model, replacing any previous entry.
func (r *InMemoryPricingRegistry) RegisterPricing(
	_ context.Context,
	model string,
	config PricingConfig,
) error {
	if model == "" {
		return errors.New("model cannot be empty")
	}

	if config.InputCostPer1M < 0 || config.OutputCostPer1M < 0 {
		return fmt.Errorf("pricing for model %s cannot be negative", model)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pricing[model] = config
	return nil
}

// Models returns the registered model names in sorted order.
func (r *InMemoryPricingRegistry) Models(_ context.Context) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := make([]string, 0, len(r.pricing))
	for model := range r.pricing {
		models = append(models, model)
	}
	sort.Strings(models)

	return models
}
