package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx response from the server: status code, the best
// human-readable message the body yielded, and the raw body for callers
// that need to inspect it.
type Error struct {
	Status  int
	Message string
	Body    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an HTTP 404 from the server. The
// activity fallback is the one documented caller that branches on it.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func newHTTPError(status int, body []byte) *Error {
	return &Error{
		Status:  status,
		Message: extractMessage(body),
		Body:    string(body),
	}
}

// extractMessage probes the body for an "error" field, then a "message"
// field, then falls back to the raw text.
func extractMessage(body []byte) string {
	var probe struct {
		Error   json.RawMessage `json:"error"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err == nil {
		if msg := rawToString(probe.Error); msg != "" {
			return msg
		}
		if msg := rawToString(probe.Message); msg != "" {
			return msg
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return "request failed"
}

func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
