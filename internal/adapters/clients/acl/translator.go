package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jsamuelsen/learning-journal/internal/adapters/clients"
	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// maxResponseSize bounds how much of a remote body is decoded.
const maxResponseSize = 32 << 20

// BaseAdapter holds the client and the remote name shared by adapters.
type BaseAdapter struct {
	client      *clients.Client
	serviceName string
}

// NewBaseAdapter creates a BaseAdapter.
func NewBaseAdapter(client *clients.Client, serviceName string) BaseAdapter {
	return BaseAdapter{client: client, serviceName: serviceName}
}

// Client returns the underlying HTTP client.
func (a *BaseAdapter) Client() *clients.Client { return a.client }

// ServiceName returns the remote name used in errors.
func (a *BaseAdapter) ServiceName() string { return a.serviceName }

// Target names what a request is about, for NotFound errors.
type Target struct {
	Operation string
	Entity    string
	ID        string
}

// Get sends a GET and returns the body of a 2xx response. The caller
// closes it. Any other outcome is a domain error.
func (a *BaseAdapter) Get(ctx context.Context, path string, target Target) (io.ReadCloser, error) {
	resp, err := a.client.Get(ctx, path)

	return a.body(resp, err, target)
}

// Post sends payload as JSON and returns the body of a 2xx response.
func (a *BaseAdapter) Post(ctx context.Context, path string, payload any, target Target) (io.ReadCloser, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", target.Operation, err)
	}

	resp, err := a.client.Post(ctx, path, raw)

	return a.body(resp, err, target)
}

func (a *BaseAdapter) body(resp *http.Response, err error, target Target) (io.ReadCloser, error) {
	if err != nil {
		return nil, MapHTTPError(nil, err, a.serviceName, target.Operation, target.Entity, target.ID)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		defer func() { _ = resp.Body.Close() }()

		return nil, MapHTTPError(resp, nil, a.serviceName, target.Operation, target.Entity, target.ID)
	}

	return resp.Body, nil
}

// DecodeResponse decodes a JSON body into T and closes it.
func DecodeResponse[T any](body io.ReadCloser) (*T, error) {
	if body == nil {
		return nil, errors.New("response body is nil")
	}
	defer func() { _ = body.Close() }()

	var result T
	if err := json.NewDecoder(io.LimitReader(body, maxResponseSize)).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

// ValidateRequired rejects an empty value.
func ValidateRequired(value, field string) error {
	if value == "" {
		return domain.NewValidationError(field, "is required")
	}

	return nil
}

// ValidatePositive rejects zero and negative values.
func ValidatePositive[T ~int | ~int64](value T, field string) error {
	if value <= 0 {
		return domain.NewValidationError(field, "must be positive")
	}

	return nil
}

// Translator validates one external DTO and converts it.
type Translator[External any, Domain any] func(ext *External) (*Domain, error)

// TranslateSlice translates every item and stops at the first failure.
func TranslateSlice[E any, D any](items []E, translate Translator[E, D]) ([]*D, error) {
	result := make([]*D, 0, len(items))

	for i := range items {
		translated, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		result = append(result, translated)
	}

	return result, nil
}
