package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Skip reasons recorded by the audit pipeline
const (
	SkipUnknownType  = "unknown_content_type"
	SkipDisabled     = "disabled"
	SkipNoAction     = "no_action"
	SkipNoEntityID   = "no_entity_id"
	SkipNotProcessed = "not_processed"
)

// Pipeline stages that can fail
const (
	StagePrefetch = "prefetch"
	StagePost     = "post"
	StageWrite    = "write"
)

// Prefetch outcomes
const (
	PrefetchFound   = "found"
	PrefetchMissing = "missing"
	PrefetchSkipped = "skipped"
)

// Metrics holds the audit pipeline's Prometheus collectors.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	EntriesWritten  *prometheus.CounterVec
	RequestsSkipped *prometheus.CounterVec
	Failures        *prometheus.CounterVec
	Prefetches      *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors on registry
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		EntriesWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_entries_written_total",
				Help: "Total number of audit log entries written",
			},
			[]string{"content_type", "action"},
		),
		RequestsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_requests_skipped_total",
				Help: "Total number of intercepted requests that produced no audit entry",
			},
			[]string{"reason"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_failures_total",
				Help: "Total number of swallowed audit pipeline failures",
			},
			[]string{"stage"},
		),
		Prefetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "audit_prefetch_total",
				Help: "Total number of previous-state lookups by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(m.EntriesWritten, m.RequestsSkipped, m.Failures, m.Prefetches)
	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// EntryWritten counts a persisted audit entry
func (m *Metrics) EntryWritten(contentType, action string) {
	if m == nil {
		return
	}
	m.EntriesWritten.WithLabelValues(contentType, action).Inc()
}

// Skipped counts a request that was intercepted but not logged
func (m *Metrics) Skipped(reason string) {
	if m == nil {
		return
	}
	m.RequestsSkipped.WithLabelValues(reason).Inc()
}

// Failed counts a swallowed failure in stage
func (m *Metrics) Failed(stage string) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(stage).Inc()
}

// Prefetched counts a previous-state lookup outcome
func (m *Metrics) Prefetched(outcome string) {
	if m == nil {
		return
	}
	m.Prefetches.WithLabelValues(outcome).Inc()
}
