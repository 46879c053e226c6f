package domain

import "errors"

var (
	// ErrNilRequest is returned when no cost request is supplied.
	ErrNilRequest = errors.New("cost request cannot be nil")

	// ErrInvalidCurrency is returned for a currency the exchange rate does not cover.
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidCountMode is returned for an unknown counting mode.
	ErrInvalidCountMode = errors.New("invalid count mode")

	// ErrPricingNotFound is returned when a model has no registered pricing.
	ErrPricingNotFound = errors.New("pricing not found")
)
