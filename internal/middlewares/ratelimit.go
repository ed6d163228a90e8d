package middlewares

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
)

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

// Counter increments a fixed-window counter and returns its new value.
type Counter interface {
	Increment(ctx context.Context, key string) (int64, error)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitMiddleware allows limit requests per client, method and path in each window.
// Counter errors let the request through.
func RateLimitMiddleware(counter Counter, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Method + ":" + r.URL.Path + ":" + clientIP(r)

			count, err := counter.Increment(r.Context(), key)
			if err != nil {
				logger.Log.Errorw("rate limiter unavailable, allowing request", "key", key, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := limit - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > limit {
				logger.Log.Infow("rate limit exceeded", "key", key, "count", count)
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
