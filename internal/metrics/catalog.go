package metrics

import "github.com/prometheus/client_golang/prometheus"

// CatalogSearchesTotal counts catalog queries by surface (products,
// stylist) and outcome (ok, error).
var CatalogSearchesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "catalog",
		Name:      "searches_total",
		Help:      "Total catalog search queries",
	},
	[]string{"surface", "outcome"},
)

var catalogMetricsRegistered bool

// RegisterCatalogMetrics registers catalog query metrics. Must be called
// once from main.
func RegisterCatalogMetrics() {
	if catalogMetricsRegistered {
		return
	}
	prometheus.MustRegister(CatalogSearchesTotal)
	catalogMetricsRegistered = true
}
