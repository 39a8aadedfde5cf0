// internal/app/features/httpapi/httpapi.go

// Package httpapi holds the shared JSON response helpers for the API
// surface. Every endpoint answers with the same envelope: a success flag
// plus either the payload fields or a human-readable error reason.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/launchlane/mentorhub/internal/app/system/limits"
	"go.uber.org/zap"
)

// Envelope is the base response shape. Payload fields are flattened next to
// the success flag by the map-based helpers below.
type Envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// OK writes a 200 success envelope with the given extra payload fields.
func OK(w http.ResponseWriter, payload map[string]any) {
	writeJSON(w, http.StatusOK, successBody(payload))
}

// Created writes a 201 success envelope with the given extra payload fields.
func Created(w http.ResponseWriter, payload map[string]any) {
	writeJSON(w, http.StatusCreated, successBody(payload))
}

// Fail writes a failure envelope with the given status and reason string.
// The reason is user-visible; internal detail belongs in the server log.
func Fail(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   reason,
	})
}

func successBody(payload map[string]any) map[string]any {
	body := map[string]any{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// DecodeJSON reads a JSON request body into dst, enforcing the body size
// cap and rejecting unknown top-level syntax errors with a 400-worthy error.
// Callers pass the error straight to Fail with StatusBadRequest.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBodySize)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return errors.New("request body too large")
		}
		if err == io.EOF {
			return errors.New("request body is required")
		}
		return errors.New("invalid JSON body")
	}
	return nil
}

// ErrorLogger pairs server-side logging with client-facing failure
// envelopes so handlers never leak internal error detail to callers.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(log *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: log}
}

// ServerError logs the underlying error and answers 500 with a generic
// reason.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	e.log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	Fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
}

// BadRequest logs at debug level and answers 400 with the given reason.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, r *http.Request, reason string) {
	e.log.Debug("bad request",
		zap.String("reason", reason),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	Fail(w, http.StatusBadRequest, reason)
}
