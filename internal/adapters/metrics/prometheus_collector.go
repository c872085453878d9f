package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// namespace and subsystem prefix every metric name: craftchain_planner_* by default
	namespace = "craftchain"
	subsystem = "planner"
)

// InitRegistry initializes the Prometheus registry with the Go runtime and process collectors.
// A non-empty namespace or subsystem replaces the default prefix of collectors created afterwards.
// Should be called once at application startup if metrics are enabled
func InitRegistry(metricNamespace, metricSubsystem string) {
	if metricNamespace != "" {
		namespace = metricNamespace
	}
	if metricSubsystem != "" {
		subsystem = metricSubsystem
	}

	Registry = prometheus.NewRegistry()
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

func register(metrics ...prometheus.Collector) error {
	if Registry == nil {
		return nil // Metrics not enabled
	}

	for _, metric := range metrics {
		if err := Registry.Register(metric); err != nil {
			return err
		}
	}

	return nil
}
