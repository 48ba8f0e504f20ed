package middleware

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"foody/internal/handler/httperr"
	"foody/internal/pkg/config"
	"foody/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const visitorIdleTTL = 10 * time.Minute

var errRateLimited = errors.New("rate limit exceeded")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	perSecond := float64(cfg.ReservePerMinute) / 60.0
	if perSecond <= 0 {
		perSecond = 1
	}
	burst := cfg.ReserveBurst
	if burst <= 0 {
		burst = 1
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
	}
}

func (r *RateLimiter) Middleware(endpoint string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(c.ClientIP()) {
			metrics.RateLimitedTotal.WithLabelValues(endpoint).Inc()
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

func (r *RateLimiter) allow(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	v, ok := r.visitors[id]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.visitors[id] = v
		r.evictIdle(now)
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// evictIdle runs under mu when a new visitor arrives.
func (r *RateLimiter) evictIdle(now time.Time) {
	for id, v := range r.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTTL && !v.lastSeen.IsZero() {
			delete(r.visitors, id)
		}
	}
}
