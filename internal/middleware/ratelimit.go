package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/octobees/food-finder/internal/config"
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// SearchRateLimiter gives every client IP its own token bucket. Buckets idle
// for longer than ten intervals are evicted.
func SearchRateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}
	idleAfter := 10 * cfg.Interval

	var (
		mu        sync.Mutex
		buckets   = make(map[string]*clientBucket)
		lastSweep time.Time
	)

	allow := func(key string, now time.Time) bool {
		mu.Lock()
		defer mu.Unlock()

		if now.Sub(lastSweep) > idleAfter {
			for k, b := range buckets {
				if now.Sub(b.lastSeen) > idleAfter {
					delete(buckets, k)
				}
			}
			lastSweep = now
		}

		b, ok := buckets[key]
		if !ok {
			b = &clientBucket{limiter: rate.NewLimiter(rate.Every(perRequest), cfg.Requests)}
			buckets[key] = b
		}
		b.lastSeen = now
		return b.limiter.AllowN(now, 1)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !allow(c.RealIP(), time.Now()) {
				return c.JSON(http.StatusTooManyRequests, map[string]string{"status": "error", "message": "search rate limit exceeded"})
			}
			return next(c)
		}
	}
}
