package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const RequestIDKey contextKey = "requestID"

// RequestIDHeader is echoed on every response.
const RequestIDHeader = "X-Request-ID"

// GetRequestID extracts the request ID from the request context.
func GetRequestID(r *http.Request) string {
	if val, ok := r.Context().Value(RequestIDKey).(string); ok {
		return val
	}
	return ""
}

// RequestIDMiddleware tags each request with an ID, reusing a well-formed
// incoming X-Request-ID and generating a fresh UUID otherwise. The ID is
// stored in the request context and echoed in the response header.
func RequestIDMiddleware() func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		e.Response.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(e.Request.Context(), RequestIDKey, id)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}

// logger returns the app logger annotated with the request ID.
func logger(e *core.RequestEvent) *slog.Logger {
	var l *slog.Logger
	if e.App != nil {
		l = e.App.Logger()
	} else {
		l = slog.Default()
	}
	if e.Request != nil {
		if id := GetRequestID(e.Request); id != "" {
			l = l.With("requestId", id)
		}
	}
	return l
}
