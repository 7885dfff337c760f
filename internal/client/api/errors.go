package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a non-2xx API response. Message is a best effort: the body's
// "message" or "error" field when present, otherwise the HTTP status text.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// Unauthorized reports whether the call was rejected for a missing or
// expired credential.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

func newError(status int, body []byte) *Error {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	// A non-JSON error body is fine, the status text covers it.
	_ = json.Unmarshal(body, &payload)

	msg := payload.Message
	if msg == "" {
		msg = payload.Error
	}
	if msg == "" {
		msg = payload.Detail
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{Status: status, Message: msg}
}
