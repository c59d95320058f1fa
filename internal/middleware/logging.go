package middleware

import (
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/auth"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every served request at trace level; server errors are
// raised to warn so they show up with the default production level.
func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{w, http.StatusOK}
			next.ServeHTTP(resp, r)

			entry := log.WithFields(log.Fields{
				"route":    routeName(r),
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   resp.statusCode,
				"took_ms":  time.Since(begin).Milliseconds(),
				"ua":       r.UserAgent(),
				"has_auth": r.Header.Get(auth.TokenHeader) != "",
			})
			if resp.statusCode >= http.StatusInternalServerError {
				entry.Warn("request failed")
				return
			}
			entry.Trace("request served")
		})
	}
}
