package api

import (
	"encoding/json"
	"net/http"

	"github.com/depanneo/booking-platform/shared/apperrors"
)

// Envelope is the uniform response body of every marketplace and booking endpoint
type Envelope struct {
	Success bool                   `json:"success"`
	Data    json.RawMessage        `json:"data,omitempty"`
	Message string                 `json:"message,omitempty"`
	Kind    apperrors.Kind         `json:"kind,omitempty"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

// WriteData writes a successful envelope wrapping data
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		WriteError(w, err)
		return
	}

	write(w, status, &Envelope{Success: true, Data: raw})
}

// WriteError writes a failed envelope derived from err
func WriteError(w http.ResponseWriter, err error) {
	write(w, apperrors.HTTPStatus(err), &Envelope{
		Success: false,
		Message: apperrors.UserMessage(err),
		Kind:    apperrors.KindOf(err),
		Errors:  apperrors.FieldErrors(err),
	})
}

// WriteErrorWithData writes a failed envelope that still carries data, e.g. the
// progress of a saga that stopped partway
func WriteErrorWithData(w http.ResponseWriter, err error, data interface{}) {
	raw, _ := json.Marshal(data)
	write(w, apperrors.HTTPStatus(err), &Envelope{
		Success: false,
		Data:    raw,
		Message: apperrors.UserMessage(err),
		Kind:    apperrors.KindOf(err),
		Errors:  apperrors.FieldErrors(err),
	})
}

func write(w http.ResponseWriter, status int, env *Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// WriteErrorStatus writes a failed envelope with an explicit status code, e.g.
// 401 for a missing or invalid bearer token
func WriteErrorStatus(w http.ResponseWriter, status int, err error) {
	write(w, status, &Envelope{
		Success: false,
		Message: apperrors.UserMessage(err),
		Kind:    apperrors.KindOf(err),
		Errors:  apperrors.FieldErrors(err),
	})
}

// DecodeJSON decodes a request body, reporting malformed JSON as a validation error
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.NewValidationError("body", "Corps de requête invalide.")
	}
	return nil
}
