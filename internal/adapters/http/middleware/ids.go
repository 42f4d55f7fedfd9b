// Package middleware holds the gin middleware chain shared by every route.
package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/learning-journal/internal/platform/logging"
)

const (
	// HeaderRequestID identifies one HTTP request.
	HeaderRequestID = "X-Request-ID"

	// HeaderCorrelationID ties together requests belonging to one user
	// action, such as a CLI export followed by an import on another server.
	HeaderCorrelationID = "X-Correlation-ID"

	maxIDLength = 128
)

type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

type idSpec struct {
	header string
	key    idKey
	logAs  func(context.Context, string) context.Context
}

var (
	requestIDs     = idSpec{header: HeaderRequestID, key: requestIDKey, logAs: logging.WithRequestID}
	correlationIDs = idSpec{header: HeaderCorrelationID, key: correlationIDKey, logAs: logging.WithCorrelationID}
)

// RequestID reuses a well-formed incoming X-Request-ID or mints a UUIDv7.
// The ID is echoed on the response and added to the request logger.
func RequestID() gin.HandlerFunc { return propagate(requestIDs) }

// CorrelationID does the same for X-Correlation-ID.
func CorrelationID() gin.HandlerFunc { return propagate(correlationIDs) }

func propagate(spec idSpec) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(spec.header)
		if !wellFormedID(id) {
			id = newID()
		}

		c.Header(spec.header, id)

		ctx := context.WithValue(c.Request.Context(), spec.key, id)
		c.Request = c.Request.WithContext(spec.logAs(ctx, id))

		c.Next()
	}
}

// wellFormedID keeps caller IDs from smuggling spaces, quotes or newlines
// into log lines.
func wellFormedID(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}

	return true
}

func newID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}

	return uuid.NewString()
}

// RequestIDFromContext returns the request ID, or "" outside a request.
// The remote journal client forwards it.
func RequestIDFromContext(ctx context.Context) string { return idFrom(ctx, requestIDKey) }

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string { return idFrom(ctx, correlationIDKey) }

// ContextWithRequestID seeds a request ID outside the HTTP chain, e.g. in
// a CLI command that calls a remote journal.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func idFrom(ctx context.Context, key idKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}
