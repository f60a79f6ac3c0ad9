package helpers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns per-field error messages; an empty map means valid.
type Validator interface {
	Validate() FieldErrors
}

// DecodeAndValidate decodes the request body into dest (with
// DisallowUnknownFields) and, if dest implements Validator, runs Validate().
// On decode or validation failure it writes a 400 validation error and
// returns false. Callers should return immediately when it returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteValidationError(w, FieldErrors{"body": {err.Error()}})
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteValidationError(w, errs)
			return false
		}
	}
	return true
}

// PathUUID reads the named path parameter and validates it as a UUID. On
// failure it writes a 400 validation error and returns ok=false, so a
// malformed ID never reaches a persistence lookup.
func PathUUID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := r.PathValue(name)
	if _, err := uuid.Parse(raw); err != nil {
		WriteValidationError(w, FieldErrors{name: {"must be a valid UUID"}})
		return "", false
	}
	return raw, true
}
