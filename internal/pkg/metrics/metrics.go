package metrics

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foody"

// Reservation outcomes
const (
	OutcomeCreated     = "created"
	OutcomeReplayed    = "replayed"
	OutcomeNotFound    = "not_found"
	OutcomeUnavailable = "unavailable"
	OutcomeSoldOut     = "sold_out"
	OutcomeError       = "error"
)

// Redemption outcomes
const (
	OutcomeRedeemed        = "redeemed"
	OutcomeAlreadyRedeemed = "already_redeemed"
	OutcomeExpired         = "expired"
	OutcomeCodeMismatch    = "code_mismatch"
)

var (
	// HTTPRequestsTotal tracks total HTTP requests
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTPRequestDuration tracks HTTP request duration
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ReservationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_total",
			Help:      "Reservation attempts by outcome",
		},
		[]string{"outcome"},
	)

	RedemptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemptions_total",
			Help:      "Redemption attempts by outcome",
		},
		[]string{"outcome"},
	)

	// CodeCollisionsTotal counts redemption codes regenerated after a unique violation
	CodeCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservation_code_collisions_total",
			Help:      "Redemption code collisions resolved by regeneration",
		},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit_name"},
	)
)

func ObserveReservation(outcome string) {
	ReservationsTotal.WithLabelValues(outcome).Inc()
}

func ObserveRedemption(outcome string) {
	RedemptionsTotal.WithLabelValues(outcome).Inc()
}

// RegisterPoolStats exposes connection counts of pool on the default registry.
// A second registration keeps the first pool's collectors.
func RegisterPoolStats(pool *pgxpool.Pool) error {
	gauges := []prometheus.Collector{
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_acquired_conns",
			Help:      "Connections currently checked out of the pool",
		}, func() float64 { return float64(pool.Stat().AcquiredConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_idle_conns",
			Help:      "Idle connections in the pool",
		}, func() float64 { return float64(pool.Stat().IdleConns()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_pool_max_conns",
			Help:      "Configured maximum pool size",
		}, func() float64 { return float64(pool.Stat().MaxConns()) }),
	}
	for _, g := range gauges {
		if err := prometheus.Register(g); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			return err
		}
	}
	return nil
}
