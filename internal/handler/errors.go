package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tripledger/tripledger/internal/domain"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// listResponse wraps list endpoints in a data envelope.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

// pagedResponse is listResponse plus pagination metadata.
type pagedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination pagination `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("handler: encoding response", "error", err)
	}
}

// respondError writes a structured error body.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeError maps a service error onto the HTTP status grid:
// not found → 404, validation → 422, duplicate name → 409, protected → 403.
// Anything else is logged and returned as an opaque 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrDuplicateName):
		respondError(w, http.StatusConflict, "duplicate_name", unwrapMessage(err))
	case errors.Is(err, domain.ErrProtected):
		respondError(w, http.StatusForbidden, "protected", unwrapMessage(err))
	default:
		slog.ErrorContext(r.Context(), "handler: internal error",
			"method", r.Method, "path", r.URL.Path, "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// badRequest rejects a request before it reaches the service layer
// (malformed body, unparseable parameter).
func badRequest(w http.ResponseWriter, message string) {
	respondError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// notFound writes a 404 with a handler-supplied message. The handler is the
// layer that knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	respondError(w, http.StatusNotFound, "not_found", message)
}

// unwrapMessage extracts the human-readable part from a wrapped service error.
// e.g. "service.TripService.Create: validation error: name is required"
// → "name is required".
func unwrapMessage(err error) string {
	msg := err.Error()
	for strings.HasPrefix(msg, "service.") || strings.HasPrefix(msg, "repo.") {
		i := strings.Index(msg, ": ")
		if i < 0 {
			break
		}
		msg = msg[i+2:]
	}
	for _, sentinel := range []string{"validation error: ", "duplicate name: ", "protected entry: "} {
		msg = strings.TrimPrefix(msg, sentinel)
	}
	return msg
}

// decodeJSON decodes the request body into dst, translating decode failures
// into a single user-facing message.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
