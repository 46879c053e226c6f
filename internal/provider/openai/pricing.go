package openai

import (
	"context"
	"fmt"

	"github.com/davidbz/chatcost/internal/domain"
)

const (
	// GPT-4.1 pricing in USD per 1M tokens
	gpt41InputCostPer1M  = 2.0
	gpt41OutputCostPer1M = 8.0

	// GPT-4.1 mini pricing in USD per 1M tokens
	gpt41MiniInputCostPer1M  = 0.4
	gpt41MiniOutputCostPer1M = 1.6

	// o3 pricing in USD per 1M tokens
	o3InputCostPer1M  = 10.0
	o3OutputCostPer1M = 40.0
)

// RegisterPricing registers OpenAI model pricing with the registry.
func RegisterPricing(ctx context.Context, registry domain.PricingRegistry) error {
	models := map[string]domain.PricingConfig{
		ModelGPT41: {
			InputCostPer1M:  gpt41InputCostPer1M,
			OutputCostPer1M: gpt41OutputCostPer1M,
		},
		ModelGPT41Mini: {
			InputCostPer1M:  gpt41MiniInputCostPer1M,
			OutputCostPer1M: gpt41MiniOutputCostPer1M,
		},
		ModelO3: {
			InputCostPer1M:  o3InputCostPer1M,
			OutputCostPer1M: o3OutputCostPer1M,
		},
	}

	for model, config := range models {
		if err := registry.RegisterPricing(ctx, model, config); err != nil {
			return fmt.Errorf("failed to register pricing for model %s: %w", model, err)
		}
	}

	return nil
}
