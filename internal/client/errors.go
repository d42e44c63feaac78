package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

// APIError represents a structured non-2xx response from the server.
// FieldErrors and NonField carry the server's validation detail for
// write-type calls; list and count fetches usually only see Message.
type APIError struct {
	StatusCode  int
	Message     string
	FieldErrors map[string][]string
	NonField    []string
}

func (e *APIError) Error() string {
	if len(e.FieldErrors) == 0 && len(e.NonField) == 0 {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	var parts []string
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	parts = append(parts, e.NonField...)
	for field, msgs := range e.FieldErrors {
		parts = append(parts, field+": "+strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, strings.Join(parts, "; "))
}

// IsTimeout reports whether err represents a request that exceeded its
// deadline, as opposed to a transport failure or an application error.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

// IsNetwork reports whether err is a transport-level failure (no response
// received). Timeouts are reported separately by IsTimeout.
func IsNetwork(err error) bool {
	if IsTimeout(err) {
		return false
	}
	var ue *url.Error
	return errors.As(err, &ue)
}

// errorEnvelope matches the error body shapes the API produces: a plain
// {"error": "..."} for most failures, and validation detail for writes.
type errorEnvelope struct {
	Error          string              `json:"error"`
	Detail         string              `json:"detail"`
	FieldErrors    map[string][]string `json:"field_errors"`
	NonFieldErrors []string            `json:"non_field_errors"`
}

func (env *errorEnvelope) message() string {
	if env.Error != "" {
		return env.Error
	}
	return env.Detail
}
