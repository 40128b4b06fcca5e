package gateway

import (
	"encoding/json"
	"net/http"
)

// Error is a rejected gateway call. Message carries the gateway's own
// error text so it can be shown to the shopper verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func newError(status int, raw []byte) *Error {
	var payload struct {
		ErrorMessage string `json:"error_message"`
		Error        string `json:"error"`
	}
	msg := string(raw)
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.ErrorMessage != "" {
			msg = payload.ErrorMessage
		} else if payload.Error != "" {
			msg = payload.Error
		}
	}
	return &Error{Status: status, Message: msg}
}
