package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

// envelope is the uniform response wrapper.
type envelope struct {
	OK    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Error *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{OK: true, Data: data})
}

// writeError maps domain errors onto HTTP status codes. Unrecognized errors
// become opaque 500s; domain messages are safe to show as-is.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal"
	message := "internal error"

	switch {
	case shared.IsNotFound(err):
		status, code, message = http.StatusNotFound, "not_found", err.Error()
	case errors.Is(err, shared.ErrUnauthorized):
		status, code, message = http.StatusUnauthorized, "unauthorized", err.Error()
	case shared.IsValidation(err):
		status, code, message = http.StatusBadRequest, "invalid_input", err.Error()
	case shared.IsAlreadyExists(err):
		status, code, message = http.StatusConflict, "already_exists", err.Error()
	case shared.IsExternalService(err):
		status, code, message = http.StatusBadGateway, "upstream_unavailable", err.Error()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{OK: false, Error: &apiError{Code: code, Message: message}})
}

// writeBadRequest is for malformed JSON and missing fields before a command
// ever gets built.
func writeBadRequest(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(envelope{OK: false, Error: &apiError{Code: "invalid_input", Message: message}})
}
