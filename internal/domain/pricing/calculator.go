// Package pricing computes the live, time-decaying price of an offer.
//
// The discount grows linearly from Floor, while the offer still has the whole
// window ahead of it, to Ceiling at expiry:
//
//	remaining = clamp(expiresAt - now, 0, Window)
//	discount  = Floor + (1 - remaining/Window) * (Ceiling - Floor)
//	price     = round(list * (1 - discount)), never negative
//
// Rounding is half-to-even on the cent.
package pricing

import (
	"errors"
	"math"
	"time"
)

const (
	DefaultWindow          = 90 * time.Minute
	DefaultDiscountFloor   = 0.20
	DefaultDiscountCeiling = 0.80
)

var (
	ErrInvalidWindow   = errors.New("pricing window must be positive")
	ErrInvalidDiscount = errors.New("pricing discount must be within [0,1] and floor must not exceed ceiling")
)

type Calculator interface {
	PriceNowCents(now, expiresAt time.Time, listPriceCents int64) int64
}

type LinearCalculator struct {
	window  time.Duration
	floor   float64
	ceiling float64
}

func NewLinearCalculator(window time.Duration, floor, ceiling float64) (*LinearCalculator, error) {
	if window <= 0 {
		return nil, ErrInvalidWindow
	}
	if floor < 0 || floor > 1 || ceiling < 0 || ceiling > 1 || floor > ceiling {
		return nil, ErrInvalidDiscount
	}
	return &LinearCalculator{
		window:  window,
		floor:   floor,
		ceiling: ceiling,
	}, nil
}

func NewDefaultCalculator() *LinearCalculator {
	return &LinearCalculator{
		window:  DefaultWindow,
		floor:   DefaultDiscountFloor,
		ceiling: DefaultDiscountCeiling,
	}
}

// Discount returns the fraction taken off the list price at now.
func (c *LinearCalculator) Discount(now, expiresAt time.Time) float64 {
	remaining := expiresAt.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	if remaining > c.window {
		remaining = c.window
	}

	progress := 1 - float64(remaining)/float64(c.window)
	d := c.floor + progress*(c.ceiling-c.floor)
	return math.Min(math.Max(d, c.floor), c.ceiling)
}

func (c *LinearCalculator) PriceNowCents(now, expiresAt time.Time, listPriceCents int64) int64 {
	if listPriceCents <= 0 {
		return 0
	}
	price := math.RoundToEven(float64(listPriceCents) * (1 - c.Discount(now, expiresAt)))
	if price < 0 {
		return 0
	}
	return int64(price)
}

func (c *LinearCalculator) Window() time.Duration { return c.window }
func (c *LinearCalculator) Floor() float64        { return c.floor }
func (c *LinearCalculator) Ceiling() float64      { return c.ceiling }
