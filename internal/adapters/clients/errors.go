// Package clients is the outbound HTTP side: a resilient client for talking
// to another journal server.
package clients

import "errors"

// Transport-level failures. Callers translate them into domain errors.
var (
	// ErrCircuitOpen means the breaker rejected the request without sending it.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last error after all attempts failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")

	// ErrServerError marks a 5xx answer that was retried.
	ErrServerError = errors.New("server error")
)
