package client

import (
	"strings"
	"time"
)

// Version is reported in the default User-Agent header.
const Version = "0.3.0"

// Option configures a Client.
type Option func(*Options)

// Options holds the configuration assembled by New.
type Options struct {
	endpoint       string
	mock           bool
	transport      Transport
	httpTimeout    time.Duration
	userAgent      string
	requestHeaders map[string]string
	requestLogger  RequestLogger
	clock          func() time.Time
}

func newClientOptions() *Options {
	return &Options{
		endpoint:       DefaultEndpoint,
		httpTimeout:    30 * time.Second,
		userAgent:      "threads-go/" + Version,
		requestHeaders: map[string]string{},
		requestLogger:  &NoopLogger{},
		clock:          time.Now,
	}
}

// WithEndpoint overrides the base URL, e.g. to point at a test server.
// An empty value keeps DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			o.endpoint = endpoint
		}
	}
}

// WithMock enables mock mode: every call succeeds with {"success": true}
// and no request leaves the process.
func WithMock(mock bool) Option {
	return func(o *Options) {
		o.mock = mock
	}
}

// WithTransport replaces the HTTP transport. Mock mode takes precedence.
func WithTransport(t Transport) Option {
	return func(o *Options) {
		if t != nil {
			o.transport = t
		}
	}
}

// WithHTTPTimeout sets the per-request timeout of the HTTP transport.
// Non-positive values are ignored.
func WithHTTPTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.httpTimeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		if ua = strings.TrimSpace(ua); ua != "" {
			o.userAgent = ua
		}
	}
}

// WithRequestHeader adds a header to every request. Content-Type, Accept
// and Authorization are owned by the client and cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, "Authorization") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithRequestLogger sets the logger for requests and failures.
func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

// WithClock sets the source of the current instant used when a call omits
// its timestamp.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.clock = now
		}
	}
}
