package client

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
)

// Transport executes a Request and returns the raw body of a successful
// response. A failed request must be reported as an *HTTPError so the
// client can classify it.
type Transport interface {
	Do(ctx context.Context, req *Request) ([]byte, error)
}

// HTTPError is the failure reported by a Transport. StatusCode is zero if no
// response was received, in which case Err holds the network error.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
}

// Unwrap returns the network error, if any.
func (e *HTTPError) Unwrap() error {
	return e.Err
}

// HTTPTransport sends requests to the ingestion API with resty.
// It never retries.
type HTTPTransport struct {
	rc *resty.Client
}

// TransportConfig configures an HTTPTransport.
type TransportConfig struct {
	Endpoint  string
	APIKey    string
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	Logger    RequestLogger
}

// NewHTTPTransport builds the production transport. The API key is sent as
// the HTTP basic auth username with an empty password.
func NewHTTPTransport(cfg TransportConfig) *HTTPTransport {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	logger := cfg.Logger
	if logger == nil {
		logger = &NoopLogger{}
	}

	rc := resty.New().
		SetBaseURL(endpoint).
		SetBasicAuth(cfg.APIKey, "").
		SetRetryCount(0).
		SetLogger(logger).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.Timeout > 0 {
		rc.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		rc.SetHeader("User-Agent", cfg.UserAgent)
	}
	for k, v := range cfg.Headers {
		rc.SetHeader(k, v)
	}

	return &HTTPTransport{rc: rc}
}

// Do implements Transport.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) ([]byte, error) {
	r := t.rc.R().SetContext(ctx)
	if req.Options.JSON != nil {
		r.SetBody(req.Options.JSON)
	}

	resp, err := r.Execute(req.Method, string(req.Action))
	if err != nil {
		return nil, &HTTPError{
			Method: req.Method,
			URL:    ResolveURL(t.rc.BaseURL, req.Action),
			Err:    err,
		}
	}

	if resp.IsError() {
		return nil, &HTTPError{
			Method:     req.Method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
	}

	return resp.Body(), nil
}

// mockBody is the canned body returned by MockTransport.
var mockBody = []byte(`{"success":true}`)

// MockTransport answers every request with {"success": true} and never
// touches the network, whatever the state of the context. It counts the
// requests it has seen.
type MockTransport struct {
	calls atomic.Int64
}

// Do implements Transport.
func (m *MockTransport) Do(_ context.Context, _ *Request) ([]byte, error) {
	m.calls.Add(1)
	body := make([]byte, len(mockBody))
	copy(body, mockBody)
	return body, nil
}

// Calls returns the number of requests answered so far.
func (m *MockTransport) Calls() int64 {
	return m.calls.Load()
}
