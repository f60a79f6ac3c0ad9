package helpers

import (
	"encoding/json"
	"net/http"
)

// FieldErrors maps a request field to its validation error messages.
type FieldErrors map[string][]string

// ErrorResponse is the body for client-caused and internal errors.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the body for schema/input validation failures:
// a generic message plus a field-level error map.
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes the payload as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteClientError writes a 400 with a plain human-readable message. Used
// for the distinguished client-caused failures (not found, invalid dates).
func WriteClientError(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Message: message})
}

// WriteValidationError writes a 400 with a field-level error map.
func WriteValidationError(w http.ResponseWriter, errs FieldErrors) {
	WriteJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		Message: "Invalid input.",
		Errors:  errs,
	})
}

// WriteInternalError writes a generic 500. No internal detail is leaked.
func WriteInternalError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
}
