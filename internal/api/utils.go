package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/codepair-io/codepair/internal/pair_errors"
	log "github.com/sirupsen/logrus"
)

func decodeJsonBody(body io.Reader, target any) error {
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid json body, %w", err)
	}
	return nil
}

func respondWithJson(w http.ResponseWriter, statusCode int, responseBytes []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(responseBytes); err != nil {
		log.Errorf("cannot write response, %v", err)
	}
}

func marshalAndRespond(w http.ResponseWriter, statusCode int, response any) {
	responseBytes, err := json.Marshal(response)
	if err != nil {
		log.Errorf("unable to marshal %v, %v", response, err)
		http.Error(w, pair_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}
	respondWithJson(w, statusCode, responseBytes)
}

// handlerError converts service errors into http status codes. Every
// failure surfaces a descriptive message, nothing escapes a handler.
func handlerError(err error, w http.ResponseWriter) {
	var statusCode int
	switch {
	case errors.Is(err, pair_errors.ErrInvalidRequest):
		statusCode = http.StatusBadRequest
	case errors.Is(err, pair_errors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, pair_errors.ErrForbidden):
		statusCode = http.StatusForbidden
	case errors.Is(err, pair_errors.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, pair_errors.ErrUpstream),
		errors.Is(err, pair_errors.ErrMalformedResponse),
		errors.Is(err, pair_errors.ErrSchemaViolation):
		statusCode = http.StatusBadGateway
	default:
		statusCode = http.StatusInternalServerError
	}
	http.Error(w, err.Error(), statusCode)
}

func (a *Api) HandlerReadiness(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, []byte(`{"status": "ok"}`))
}
