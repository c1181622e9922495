package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nkoval/greencard-days/backend/internal/middleware"
)

// ErrorDetail is the machine-readable part of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope every error response uses, so clients can
// handle all failures with one shape: {"error": {"code": ..., "message": ...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON serializes v with the given status. Encoding failures are logged,
// not surfaced; by the time Encode fails the status line is already written.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("handler: encode response", "error", err)
	}
}

// writeError emits the standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// notFound writes a 404 for a missing resource. The caller supplies the
// human-readable message (e.g. "trip not found") because the handler is the
// layer that knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, "not_found", message)
}

// validationError writes a 422 whose message is extracted from the wrapped
// domain.ErrValidation error.
func validationError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
}

// badRequest writes a 422 for a request rejected before reaching the service
// layer (e.g. missing or malformed body).
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// internalError logs the failure and writes an opaque 500. The real error
// stays in the server log; clients never see internals.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("handler: internal error", "error", err)
	writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "validation error: destination is required" → "destination is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}

// decodeJSON parses the request body into v. Returns a client-facing error
// message on failure; the caller responds with badRequest.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

// authedUser returns the user ID the auth middleware placed in context.
// A missing ID means the route was mounted without the middleware; that is a
// server bug, so respond 500 rather than 401.
func authedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusInternalServerError, "internal_error", "missing authenticated user")
		return uuid.Nil, false
	}
	return id, true
}
