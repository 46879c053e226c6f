package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ExchangeRate converts amounts from the base (primary) currency into the quote (secondary) one.
type ExchangeRate struct {
	base  Currency
	quote Currency
	rate  decimal.Decimal // quote units per one base unit
}

// NewExchangeRate creates a fixed exchange rate between two currencies.
func NewExchangeRate(base, quote Currency, rate float64) (ExchangeRate, error) {
	if base == "" || quote == "" {
		return ExchangeRate{}, errors.New("currency codes cannot be empty")
	}

	if base == quote {
		return ExchangeRate{}, fmt.Errorf("base and quote currency must differ, got %s", base)
	}

	if rate <= 0 {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive, got %v", rate)
	}

	return ExchangeRate{
		base:  base,
		quote: quote,
		rate:  decimal.NewFromFloat(rate),
	}, nil
}

// Base returns the primary currency.
func (e ExchangeRate) Base() Currency {
	return e.base
}

// Quote returns the secondary currency.
func (e ExchangeRate) Quote() Currency {
	return e.quote
}

// Supports reports whether amounts can be expressed in the given currency.
func (e ExchangeRate) Supports(currency Currency) bool {
	return currency != "" && (currency == e.base || currency == e.quote)
}

// Convert expresses an amount given in the base currency in the target currency.
func (e ExchangeRate) Convert(amount decimal.Decimal, to Currency) (decimal.Decimal, error) {
	switch {
	case !e.Supports(to):
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidCurrency, to)
	case to == e.quote:
		return amount.Mul(e.rate), nil
	default:
		return amount, nil
	}
}
