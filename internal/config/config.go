package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"
)

// Config represents the cost calculator configuration.
type Config struct {
	Currency CurrencyConfig
	Log      LogConfig
}

// CurrencyConfig contains the output currencies and the fixed conversion rate between them.
type CurrencyConfig struct {
	Base         string  `env:"COST_BASE_CURRENCY"  envDefault:"USD"`
	Quote        string  `env:"COST_QUOTE_CURRENCY" envDefault:"HUF"`
	ExchangeRate float64 `env:"COST_EXCHANGE_RATE"  envDefault:"355.63"` // Quote units per one Base unit
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*CurrencyConfig
	*LogConfig
}

// Load loads environment files and parses configuration.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Currency,
		&cfg.Log,
	}
}
