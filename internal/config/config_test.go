package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/chatcost/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Setenv restores the previous value on cleanup.
		for _, key := range []string{"COST_BASE_CURRENCY", "COST_QUOTE_CURRENCY", "COST_EXCHANGE_RATE", "LOG_LEVEL"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		cfg, err := config.Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, "USD", cfg.Currency.Base)
		require.Equal(t, "HUF", cfg.Currency.Quote)
		require.InDelta(t, 355.63, cfg.Currency.ExchangeRate, 1e-9)
		require.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		t.Setenv("COST_BASE_CURRENCY", "EUR")
		t.Setenv("COST_QUOTE_CURRENCY", "GBP")
		t.Setenv("COST_EXCHANGE_RATE", "0.85")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, "EUR", cfg.Currency.Base)
		require.Equal(t, "GBP", cfg.Currency.Quote)
		require.InDelta(t, 0.85, cfg.Currency.ExchangeRate, 1e-9)
		require.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("should return error on malformed rate", func(t *testing.T) {
		t.Setenv("COST_EXCHANGE_RATE", "lots")

		cfg, err := config.Load()

		require.Error(t, err)
		require.Nil(t, cfg)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	cfg := &config.Config{
		Currency: config.CurrencyConfig{Base: "USD", Quote: "HUF", ExchangeRate: 355.63},
		Log:      config.LogConfig{Level: "warn"},
	}

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Currency, deps.CurrencyConfig)
	require.Same(t, &cfg.Log, deps.LogConfig)
}
