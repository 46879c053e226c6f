package observability

import "context"

type contextKey string

const (
	// CurrencyKey holds the requested output currency.
	CurrencyKey contextKey = "currency"

	// CountModeKey holds the requested token counting mode.
	CountModeKey contextKey = "count"
)

// WithCurrency injects the output currency into context.
func WithCurrency(ctx context.Context, currency string) context.Context {
	return context.WithValue(ctx, CurrencyKey, currency)
}

// WithCountMode injects the counting mode into context.
func WithCountMode(ctx context.Context, count string) context.Context {
	return context.WithValue(ctx, CountModeKey, count)
}

// GetCurrency extracts the output currency from context.
func GetCurrency(ctx context.Context) string {
	if currency, ok := ctx.Value(CurrencyKey).(string); ok {
		return currency
	}
	return ""
}

// GetCountMode extracts the counting mode from context.
func GetCountMode(ctx context.Context) string {
	if count, ok := ctx.Value(CountModeKey).(string); ok {
		return count
	}
	return ""
}
