package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domainErrors "github.com/polkiloo/ecopoints/internal/domain/errors"
)

const namespace = "ecopoints"

// Redeem outcomes.
const (
	ResultSuccess             = "success"
	ResultNotFound            = "not_found"
	ResultOutOfStock          = "out_of_stock"
	ResultInsufficientBalance = "insufficient_balance"
	ResultStoreError          = "store_error"
)

// Grant outcomes.
const (
	GrantCredited = "credited"
	GrantRejected = "rejected"
	GrantFailed   = "failed"
)

// Metrics owns a private registry with the ledger and HTTP collectors.
type Metrics struct {
	registry *prometheus.Registry

	redemptions    *prometheus.CounterVec
	grants         *prometheus.CounterVec
	redeemDuration prometheus.Histogram

	httpRequests *prometheus.CounterVec
	httpErrors   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		redemptions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "redemptions_total",
				Help:      "Voucher redemption attempts by result",
			},
			[]string{"result"},
		),
		grants: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "grants_total",
				Help:      "Processed point grants by result",
			},
			[]string{"result"},
		),
		redeemDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "redeem_duration_seconds",
				Help:      "Duration of the redeem transaction",
				Buckets:   prometheus.DefBuckets,
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests",
			},
			[]string{"path", "code"},
		),
		httpErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_errors_total",
				Help:      "HTTP requests answered with a 5xx status",
			},
			[]string{"path", "code"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path", "code"},
		),
	}
}

// RedeemResult maps a redeem error onto its metric label.
func RedeemResult(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, domainErrors.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domainErrors.ErrOutOfStock):
		return ResultOutOfStock
	case errors.Is(err, domainErrors.ErrInsufficientBalance):
		return ResultInsufficientBalance
	default:
		return ResultStoreError
	}
}

// ObserveRedeem counts one redeem attempt and its duration.
func (m *Metrics) ObserveRedeem(err error, elapsed time.Duration) {
	m.redemptions.WithLabelValues(RedeemResult(err)).Inc()
	m.redeemDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveGrant(result string) {
	m.grants.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveHTTP(path string, code int, elapsed time.Duration) {
	labels := prometheus.Labels{
		"path": path,
		"code": strconv.Itoa(code),
	}
	m.httpRequests.With(labels).Inc()
	m.httpDuration.With(labels).Observe(elapsed.Seconds())
	if code >= http.StatusInternalServerError {
		m.httpErrors.With(labels).Inc()
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
