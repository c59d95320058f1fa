// Package httperr maps domain errors to HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/2beens/fittrack/internal/nutrition"

	log "github.com/sirupsen/logrus"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Status returns the response status for err.
func Status(err error) int {
	var validationErr *nutrition.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, nutrition.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, nutrition.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Write responds with the status matching err. Validation errors are echoed to the
// client, internal errors are logged and replaced by msg.
func Write(w http.ResponseWriter, err error, msg string) {
	status := Status(err)
	switch status {
	case http.StatusInternalServerError:
		log.Errorf("%s: %s", msg, err)
		http.Error(w, msg, status)
	case http.StatusBadRequest:
		http.Error(w, err.Error(), status)
	default:
		log.Tracef("%s: %s", msg, err)
		http.Error(w, http.StatusText(status), status)
	}
}
