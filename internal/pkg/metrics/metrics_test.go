//go:build unit

package metrics_test

import (
	"context"
	"testing"

	"foody/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOutcomes(t *testing.T) {
	before := testutil.ToFloat64(metrics.ReservationsTotal.WithLabelValues(metrics.OutcomeSoldOut))
	metrics.ObserveReservation(metrics.OutcomeSoldOut)
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.ReservationsTotal.WithLabelValues(metrics.OutcomeSoldOut)), 1e-9)

	before = testutil.ToFloat64(metrics.RedemptionsTotal.WithLabelValues(metrics.OutcomeExpired))
	metrics.ObserveRedemption(metrics.OutcomeExpired)
	assert.InDelta(t, before+1, testutil.ToFloat64(metrics.RedemptionsTotal.WithLabelValues(metrics.OutcomeExpired)), 1e-9)
}

func TestRegisterPoolStats(t *testing.T) {
	// pgxpool connects lazily, so no server is needed to read stats
	pool, err := pgxpool.New(context.Background(), "postgres://u:p@127.0.0.1:1/none?sslmode=disable&pool_max_conns=7")
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, metrics.RegisterPoolStats(pool))
	require.NoError(t, metrics.RegisterPoolStats(pool), "second registration is a no-op")
}
