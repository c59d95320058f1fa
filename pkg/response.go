package pkg

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// WriteResponseBytes leaves Content-Type untouched when contentType is empty.
func WriteResponseBytes(w http.ResponseWriter, contentType string, body []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		log.Errorf("write response (%d bytes, status %d): %s", len(body), statusCode, err)
	}
}

func WriteResponseBytesOK(w http.ResponseWriter, contentType string, body []byte) {
	WriteResponseBytes(w, contentType, body, http.StatusOK)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponseBytes(w, ContentType.Text, []byte(message), http.StatusOK)
}

func WriteJSONResponseOK(w http.ResponseWriter, body string) {
	WriteResponseBytes(w, ContentType.JSON, []byte(body), http.StatusOK)
}
