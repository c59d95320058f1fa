package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxBodyBytes fits the largest payload the API takes, a diet batch
// created from a list of foods.
const DefaultMaxBodyBytes = 1 << 20

// RequestBody caps the request body at maxBytes and, once the handler is done,
// drains whatever it left unread so the connection can be reused.
func RequestBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := http.MaxBytesReader(w, r.Body, maxBytes)
			r.Body = body
			defer func() {
				_, _ = io.Copy(io.Discard, body)
				_ = body.Close()
			}()

			next.ServeHTTP(w, r)
		})
	}
}
