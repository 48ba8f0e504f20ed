//go:build unit

package shared_test

import (
	"testing"
	"time"

	"foody/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
)

func TestOfferSnapshot_ReservableAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	earlier := now.Add(-time.Hour)

	tests := []struct {
		name string
		snap shared.OfferSnapshot
		want bool
	}{
		{name: "open offer", snap: shared.OfferSnapshot{ExpiresAt: now.Add(time.Hour)}, want: true},
		{name: "archived offer", snap: shared.OfferSnapshot{ExpiresAt: now.Add(time.Hour), ArchivedAt: &earlier}},
		{name: "archived restaurant", snap: shared.OfferSnapshot{ExpiresAt: now.Add(time.Hour), RestaurantArchivedAt: &earlier}},
		{name: "expires exactly now", snap: shared.OfferSnapshot{ExpiresAt: now}},
		{name: "sold out still reservable until the decrement", snap: shared.OfferSnapshot{ExpiresAt: now.Add(time.Hour), QtyLeft: 0}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snap.ReservableAt(now))
		})
	}
}
