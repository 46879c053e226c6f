package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/davidbz/chatcost/internal/observability"
)

const (
	// NotAvailable is returned by CalculateChatCost for an invalid request.
	NotAvailable = "N/A"

	maxFractionDigits = 6
)

//nolint:gochecknoglobals // Immutable conversion factor
var tokensPerMillion = decimal.NewFromInt(1_000_000)

// StandardCostCalculator implements token-based cost calculation over a conversation.
type StandardCostCalculator struct {
	pricingRegistry PricingRegistry
	exchangeRate    ExchangeRate
	reporter        DiagnosticReporter
}

// NewStandardCostCalculator creates a new cost calculator (DI constructor).
// A nil reporter discards diagnostics.
func NewStandardCostCalculator(
	registry PricingRegistry,
	rate ExchangeRate,
	reporter DiagnosticReporter,
) *StandardCostCalculator {
	if reporter == nil {
		reporter = NopReporter{}
	}

	return &StandardCostCalculator{
		pricingRegistry: registry,
		exchangeRate:    rate,
		reporter:        reporter,
	}
}

// CalculateChatCost returns the cost of the conversation formatted as "<amount> <currency>",
// or NotAvailable when the request is invalid.
func (c *StandardCostCalculator) CalculateChatCost(
	ctx context.Context,
	conversation []ConversationRecord,
	req *CostRequest,
) string {
	total, err := c.Total(ctx, conversation, req)
	if err != nil {
		return NotAvailable
	}

	return FormatCost(total, req.Currency)
}

// Total returns the unformatted cost of the conversation in the requested currency.
func (c *StandardCostCalculator) Total(
	ctx context.Context,
	conversation []ConversationRecord,
	req *CostRequest,
) (decimal.Decimal, error) {
	if err := c.validate(req); err != nil {
		return decimal.Zero, err
	}

	// Inject request settings into context for downstream diagnostics.
	ctx = observability.WithCurrency(ctx, string(req.Currency))
	ctx = observability.WithCountMode(ctx, string(req.Count))

	total := decimal.Zero
	for _, record := range conversation {
		if !record.Usage.Valid() {
			continue
		}

		cost, err := c.Calculate(ctx, record.Model, *record.Usage, req.Count)
		if err != nil {
			if errors.Is(err, ErrPricingNotFound) {
				c.reporter.UnknownModel(ctx, record.Model)
			}
			continue
		}

		total = total.Add(cost)
	}

	return c.exchangeRate.Convert(total, req.Currency)
}

// Calculate computes the cost of a single record in the base currency.
func (c *StandardCostCalculator) Calculate(
	ctx context.Context,
	model string,
	usage Usage,
	count CountMode,
) (decimal.Decimal, error) {
	if !count.Valid() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCountMode, count)
	}

	pricing, err := c.pricingRegistry.GetPricing(ctx, model)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get pricing: %w", err)
	}

	inputCost := tokenCost(usage.PromptTokens, pricing.InputCostPer1M)
	outputCost := tokenCost(usage.CompletionTokens, pricing.OutputCostPer1M)

	switch count {
	case CountPrompt:
		return inputCost, nil
	case CountCompletion:
		return outputCost, nil
	default:
		return inputCost.Add(outputCost), nil
	}
}

func (c *StandardCostCalculator) validate(req *CostRequest) error {
	if req == nil {
		return ErrNilRequest
	}

	if !c.exchangeRate.Supports(req.Currency) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, req.Currency)
	}

	if !req.Count.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCountMode, req.Count)
	}

	return nil
}

func tokenCost(tokens int, costPer1M float64) decimal.Decimal {
	return decimal.NewFromInt(int64(tokens)).
		Div(tokensPerMillion).
		Mul(decimal.NewFromFloat(costPer1M))
}

// FormatCost rounds the amount to at most six fractional digits and drops trailing zeros.
func FormatCost(amount decimal.Decimal, currency Currency) string {
	return amount.Round(maxFractionDigits).String() + " " + string(currency)
}
