package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/craftchain-go/internal/domain/crafting"
)

// ResolutionMetricsCollector records resolution outcomes.
// It implements planning.ResolutionRecorder.
type ResolutionMetricsCollector struct {
	resolutionDuration *prometheus.HistogramVec
	resolutionsTotal   *prometheus.CounterVec
	failuresTotal      *prometheus.CounterVec
	craftsTotal        *prometheus.CounterVec
	lastCrafts         *prometheus.GaugeVec
	lastInputKinds     *prometheus.GaugeVec
	lastRemainingKinds *prometheus.GaugeVec
	conflictsTotal     *prometheus.CounterVec
}

// NewResolutionMetricsCollector creates a new resolution metrics collector
func NewResolutionMetricsCollector() *ResolutionMetricsCollector {
	return &ResolutionMetricsCollector{
		resolutionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "resolution_duration_seconds",
				Help:      "Time spent resolving a bookmark group",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"group", "skip_calculation"},
		),
		resolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "resolutions_total",
				Help:      "Total number of resolutions by group",
			},
			[]string{"group", "skip_calculation"},
		),
		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "resolution_failures_total",
				Help:      "Total number of rejected resolutions by group and reason",
			},
			[]string{"group", "reason"},
		),
		craftsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "crafts_total",
				Help:      "Total number of crafts planned by recipe",
			},
			[]string{"group", "recipe"},
		),
		lastCrafts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_total_crafts",
				Help:      "Total crafts of the latest resolution of a group",
			},
			[]string{"group"},
		),
		lastInputKinds: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_input_kinds",
				Help:      "Distinct resources the latest resolution of a group must gather",
			},
			[]string{"group"},
		),
		lastRemainingKinds: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "last_remaining_kinds",
				Help:      "Distinct leftover resources of the latest resolution of a group",
			},
			[]string{"group"},
		),
		conflictsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "conflicting_slots_total",
				Help:      "Total number of pinned outputs ignored because another recipe already produces them",
			},
			[]string{"group"},
		),
	}
}

// Register registers all resolution metrics with the Prometheus registry
func (c *ResolutionMetricsCollector) Register() error {
	return register(
		c.resolutionDuration,
		c.resolutionsTotal,
		c.failuresTotal,
		c.craftsTotal,
		c.lastCrafts,
		c.lastInputKinds,
		c.lastRemainingKinds,
		c.conflictsTotal,
	)
}

// RecordResolution records a finished resolution
func (c *ResolutionMetricsCollector) RecordResolution(group string, duration time.Duration, resolution *crafting.Resolution, skipCalculation bool) {
	skip := strconv.FormatBool(skipCalculation)
	c.resolutionDuration.WithLabelValues(group, skip).Observe(duration.Seconds())
	c.resolutionsTotal.WithLabelValues(group, skip).Inc()

	for _, step := range resolution.Steps {
		if step.Crafts > 0 {
			c.craftsTotal.WithLabelValues(group, string(step.RecipeID)).Add(float64(step.Crafts))
		}
	}

	c.lastCrafts.WithLabelValues(group).Set(float64(resolution.TotalCrafts()))
	c.lastInputKinds.WithLabelValues(group).Set(float64(len(resolution.InputStacks)))
	c.lastRemainingKinds.WithLabelValues(group).Set(float64(len(resolution.RemainingStacks)))

	if n := len(resolution.ConflictingSlots); n > 0 {
		c.conflictsTotal.WithLabelValues(group).Add(float64(n))
	}
}

// RecordFailure records a rejected resolution
func (c *ResolutionMetricsCollector) RecordFailure(group string, reason string) {
	c.failuresTotal.WithLabelValues(group, reason).Inc()
}
