package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "finance_dashboard_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	sourceFetchTotal   *prometheus.CounterVec
	sourceFetchLatency *prometheus.HistogramVec
	snapshotDegraded   *prometheus.CounterVec

	aggregateLatency prometheus.Histogram

	cacheLookups       *prometheus.CounterVec
	cacheInvalidations prometheus.Counter
	refreshSuperseded  prometheus.Counter

	exportTotal *prometheus.CounterVec
)

// Init registers the dashboard metrics with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		sourceFetchTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "source_fetch_total",
				Help: "Total record source fetches by source and result",
			},
			[]string{"source", "result"},
		)
		sourceFetchLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "source_fetch_latency_seconds",
				Help:    "Record source fetch latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		)
		snapshotDegraded = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "snapshot_degraded_total",
				Help: "Snapshots assembled with a source substituted by an empty list",
			},
			[]string{"source"},
		)
		aggregateLatency = prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "aggregate_latency_seconds",
				Help:    "Fetch plus aggregation latency of one dashboard cycle",
				Buckets: prometheus.DefBuckets,
			},
		)
		cacheLookups = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "cache_lookups_total",
				Help: "Dashboard cache lookups by outcome",
			},
			[]string{"outcome"},
		)
		cacheInvalidations = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "cache_invalidations_total",
				Help: "Dashboard cache scope invalidations",
			},
		)
		refreshSuperseded = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "refresh_superseded_total",
				Help: "Refreshes cancelled because a newer refresh of the same scope started",
			},
		)
		exportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "export_total",
				Help: "Dashboard exports by format and result",
			},
			[]string{"format", "result"},
		)

		prometheus.MustRegister(
			sourceFetchTotal,
			sourceFetchLatency,
			snapshotDegraded,
			aggregateLatency,
			cacheLookups,
			cacheInvalidations,
			refreshSuperseded,
			exportTotal,
		)
	})
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// ObserveSourceFetch records one source read.
func ObserveSourceFetch(source string, err error, duration time.Duration) {
	if sourceFetchTotal != nil {
		sourceFetchTotal.WithLabelValues(source, resultOf(err)).Inc()
	}
	if sourceFetchLatency != nil {
		sourceFetchLatency.WithLabelValues(source).Observe(duration.Seconds())
	}
}

// IncSnapshotDegraded counts a source that was replaced by an empty list.
func IncSnapshotDegraded(source string) {
	if snapshotDegraded != nil {
		snapshotDegraded.WithLabelValues(source).Inc()
	}
}

// ObserveAggregate records the latency of one full dashboard computation.
func ObserveAggregate(duration time.Duration) {
	if aggregateLatency != nil {
		aggregateLatency.Observe(duration.Seconds())
	}
}

// IncCacheLookup counts a cache lookup; outcome is "hit", "miss" or "shared".
func IncCacheLookup(outcome string) {
	if cacheLookups != nil {
		cacheLookups.WithLabelValues(outcome).Inc()
	}
}

func IncCacheInvalidation() {
	if cacheInvalidations != nil {
		cacheInvalidations.Inc()
	}
}

func IncRefreshSuperseded() {
	if refreshSuperseded != nil {
		refreshSuperseded.Inc()
	}
}

// ObserveExport counts an export by format ("xlsx", "csv").
func ObserveExport(format string, err error) {
	if exportTotal != nil {
		exportTotal.WithLabelValues(format, resultOf(err)).Inc()
	}
}
