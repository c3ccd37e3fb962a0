// Package httputil centralizes JSON response writing so every handler emits
// the same error envelope.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "assure/pkg/domain-errors"
)

// errorBody is the JSON error envelope: {"error": code, "error_description": msg}.
type errorBody struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeInvalidInput, dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict, dErrors.CodeInvariantViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError translates a coded domain error into an HTTP response. Server
// faults keep their description in the body: the submit contract promises
// callers the underlying fault's message so they can decide whether to retry,
// so internal errors carry the whole chain, cause included.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := errorBody{Error: string(code)}
	var de *dErrors.Error
	if errors.As(err, &de) {
		if code == dErrors.CodeInternal {
			body.Description = de.Error()
		} else {
			body.Description = de.Message
		}
	}
	WriteJSON(w, statusFor(code), body)
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
