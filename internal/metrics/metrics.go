// Package metrics exposes Prometheus collectors for the HTTP surface and the
// portfolio aggregation path.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the API.
type Metrics struct {
	HTTPRequestsTotal *prometheus.CounterVec // labels: method, route, status
	HTTPRequestDur    *prometheus.HistogramVec

	// Aggregation
	AggregationsTotal   prometheus.Counter
	AggregationDur      prometheus.Histogram
	SkippedTransactions prometheus.Counter
	AnomalousPositions  prometheus.Counter

	// Quotes
	QuotesUpserted   prometheus.Counter
	RegistryCacheHit *prometheus.CounterVec // labels: result=hit|miss

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg. A nil registry
// uses a fresh private registry, which keeps tests independent.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "birikim_http_requests_total",
			Help: "HTTP requests served, by route and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDur: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "birikim_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		AggregationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "birikim_portfolio_aggregations_total",
			Help: "Portfolio aggregations computed",
		}),
		AggregationDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "birikim_portfolio_aggregation_duration_seconds",
			Help:    "Aggregation engine latency per portfolio",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		SkippedTransactions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "birikim_portfolio_skipped_transactions_total",
			Help: "Transactions skipped for malformed amount, price or direction",
		}),
		AnomalousPositions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "birikim_portfolio_anomalous_positions_total",
			Help: "Positions that ended with a negative remaining quantity",
		}),

		QuotesUpserted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "birikim_quotes_upserted_total",
			Help: "Currency quotes written by the pipeline",
		}),
		RegistryCacheHit: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "birikim_registry_cache_lookups_total",
			Help: "Quote registry cache lookups",
		}, []string{"result"}),

		gatherer: reg,
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDur,
		m.AggregationsTotal,
		m.AggregationDur,
		m.SkippedTransactions,
		m.AnomalousPositions,
		m.QuotesUpserted,
		m.RegistryCacheHit,
	)
	return m
}

// Handler serves the registered collectors in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDur.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveAggregation records one engine run and what it had to drop.
func (m *Metrics) ObserveAggregation(elapsed time.Duration, skipped, anomalous int) {
	if m == nil {
		return
	}
	m.AggregationsTotal.Inc()
	m.AggregationDur.Observe(elapsed.Seconds())
	m.SkippedTransactions.Add(float64(skipped))
	m.AnomalousPositions.Add(float64(anomalous))
}

// ObserveQuotes records quotes written by the pipeline.
func (m *Metrics) ObserveQuotes(n int) {
	if m == nil {
		return
	}
	m.QuotesUpserted.Add(float64(n))
}

// ObserveRegistryCache records a registry cache hit or miss.
func (m *Metrics) ObserveRegistryCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.RegistryCacheHit.WithLabelValues(result).Inc()
}
