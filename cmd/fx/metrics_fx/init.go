package metrics_fx

import (
	"go.uber.org/fx"

	"civix/pkg/metrics"
)

var Module = fx.Provide(provideMetrics)

func provideMetrics() *metrics.Metrics {
	return metrics.New()
}
