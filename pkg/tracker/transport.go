package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response is the outcome of a transport call.
type Response struct {
	OK     bool
	Status int
	Body   []byte
}

// Transport delivers JSON payloads to the tracking backend.
// Implement this interface to use custom HTTP clients.
type Transport interface {
	Send(ctx context.Context, endpoint string, payload any) (*Response, error)
}

// HTTPTransport is the default Transport built on net/http.
type HTTPTransport struct {
	client  *http.Client
	headers map[string]string
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates an HTTPTransport. headers are added to every request.
func NewHTTPTransport(timeout time.Duration, headers map[string]string) *HTTPTransport {
	return &HTTPTransport{
		client:  &http.Client{Timeout: timeout},
		headers: headers,
	}
}

// Send POSTs payload as JSON to endpoint.
func (h *HTTPTransport) Send(ctx context.Context, endpoint string, payload any) (*Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range h.headers {
		req.Header.Set(key, value)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Response{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Body:   body,
	}, nil
}
