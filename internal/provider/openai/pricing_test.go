package openai_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/chatcost/internal/domain"
	"github.com/davidbz/chatcost/internal/provider/openai"
)

func TestRegisterPricing(t *testing.T) {
	ctx := context.Background()
	registry := domain.NewInMemoryPricingRegistry()

	require.NoError(t, openai.RegisterPricing(ctx, registry))

	tests := []struct {
		model  string
		input  float64
		output float64
	}{
		{model: openai.ModelGPT41, input: 2, output: 8},
		{model: openai.ModelGPT41Mini, input: 0.4, output: 1.6},
		{model: openai.ModelO3, input: 10, output: 40},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			pricing, err := registry.GetPricing(ctx, tt.model)
			require.NoError(t, err)
			require.InDelta(t, tt.input, pricing.InputCostPer1M, 1e-9)
			require.InDelta(t, tt.output, pricing.OutputCostPer1M, 1e-9)
		})
	}

	require.ElementsMatch(t, openai.SupportedModels(), registry.Models(ctx))
}
