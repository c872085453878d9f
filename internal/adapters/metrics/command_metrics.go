package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// CommandMetricsCollector records every command and query sent through the mediator.
// Requests are labelled by type name, kind (command or query) and outcome.
type CommandMetricsCollector struct {
	commandDuration *prometheus.HistogramVec
	commandsTotal   *prometheus.CounterVec
	inFlight        *prometheus.GaugeVec
}

// NewCommandMetricsCollector creates a new command metrics collector
func NewCommandMetricsCollector() *CommandMetricsCollector {
	return &CommandMetricsCollector{
		commandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_duration_seconds",
				Help:      "Time spent handling planner commands and queries",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 5.0},
			},
			[]string{"command", "kind", "status"},
		),
		commandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commands_total",
				Help:      "Planner commands and queries handled, by outcome",
			},
			[]string{"command", "kind", "status"},
		),
		inFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commands_in_flight",
				Help:      "Planner commands and queries currently being handled",
			},
			[]string{"kind"},
		),
	}
}

// Register registers all command metrics with the Prometheus registry
func (c *CommandMetricsCollector) Register() error {
	return register(c.commandDuration, c.commandsTotal, c.inFlight)
}

// Started marks a request of kind as in flight; the returned func marks it done
func (c *CommandMetricsCollector) Started(kind string) func() {
	gauge := c.inFlight.WithLabelValues(kind)
	gauge.Inc()
	return gauge.Dec
}

// RecordCommandExecution records the duration and outcome of one request
func (c *CommandMetricsCollector) RecordCommandExecution(commandName string, duration float64, err error) {
	kind := requestKind(commandName)
	status := commandStatus(err)

	c.commandDuration.WithLabelValues(commandName, kind, status).Observe(duration)
	c.commandsTotal.WithLabelValues(commandName, kind, status).Inc()
}

// commandStatus maps a handler error onto a bounded label value
func commandStatus(err error) string {
	var invalid *bookmark.ErrInvalidDocument
	switch {
	case err == nil:
		return "success"
	case bookmark.IsNotFound(err):
		return "not_found"
	case errors.As(err, &invalid):
		return "invalid"
	default:
		return "error"
	}
}
