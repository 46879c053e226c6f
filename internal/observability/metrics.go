package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the cost calculator counters.
type Metrics struct {
	UnknownModels *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		UnknownModels: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "chatcost",
				Name:      "unknown_model_total",
				Help:      "Total number of conversation records priced at zero because their model has no pricing",
			},
			[]string{"model"},
		),
	}

	if err := reg.Register(metrics.UnknownModels); err != nil {
		return nil, fmt.Errorf("failed to register unknown model counter: %w", err)
	}

	return metrics, nil
}
