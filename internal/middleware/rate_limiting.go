package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

const rateLimitRemainingHeader = "X-RateLimit-Remaining"

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit allows allowedPerMin requests per client within a router (e.g. login).
// Rejected requests get 425 with the wait time in the body.
func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	limit := redis_rate.PerMinute(allowedPerMin)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := limitKey(routerName, r)
			res, err := rateLimiter.Allow(r.Context(), key, limit)
			if err != nil {
				log.WithField("key", key).Errorf("rate limiter: %s", err)
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			w.Header().Set(rateLimitRemainingHeader, strconv.Itoa(res.Remaining))
			if res.Allowed == 0 {
				if metricsManager != nil {
					metricsManager.CounterRateLimitedRequests.Inc()
				}
				log.WithField("key", key).Debugf("rate limited, retry after %s", res.RetryAfter)
				http.Error(w, fmt.Sprintf("retry after %f seconds", res.RetryAfter.Seconds()), http.StatusTooEarly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// limitKey falls back to the bare router name when the client IP is unreadable,
// so such clients share one bucket.
func limitKey(routerName string, r *http.Request) string {
	ip, err := pkg.ReadUserIP(r)
	if err != nil || ip == "" {
		return routerName
	}
	return routerName + ":" + ip
}
