package client

import (
	"context"
	"encoding"
	"encoding/json"
	"reflect"
	"time"
)

// Client is an authenticated client for the Threads.io ingestion API.
// Its configuration is fixed by New, so a Client is safe for concurrent use.
type Client struct {
	apiKey    string
	endpoint  string
	mock      bool
	transport Transport
	logger    RequestLogger
	now       func() time.Time
}

// New creates a Client for apiKey. By default requests go to
// DefaultEndpoint over HTTP with basic authentication (apiKey, "").
func New(apiKey string, opts ...Option) *Client {
	o := newClientOptions()
	for _, opt := range opts {
		opt(o)
	}

	c := &Client{
		apiKey:   apiKey,
		endpoint: o.endpoint,
		mock:     o.mock,
		logger:   o.requestLogger,
		now:      o.clock,
	}

	switch {
	case o.mock:
		c.transport = &MockTransport{}
	case o.transport != nil:
		c.transport = o.transport
	default:
		c.transport = NewHTTPTransport(TransportConfig{
			Endpoint:  o.endpoint,
			APIKey:    apiKey,
			Timeout:   o.httpTimeout,
			UserAgent: o.userAgent,
			Headers:   o.requestHeaders,
			Logger:    o.requestLogger,
		})
	}

	return c
}

// APIKey returns the key the client authenticates with.
func (c *Client) APIKey() string {
	return c.apiKey
}

// Endpoint returns the configured base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Mock reports whether the client is in mock mode.
func (c *Client) Mock() bool {
	return c.mock
}

// Identify records traits for userID at the given instant. A zero at means now.
// traits must be a map or a list.
func (c *Client) Identify(ctx context.Context, userID string, at time.Time, traits any) (*Response, error) {
	if err := validateMapping("traits", traits); err != nil {
		return nil, err
	}

	return c.call(ctx, NewRequest(ActionIdentify, map[string]any{
		"userId":    userID,
		"timestamp": c.timestamp(at),
		"traits":    traits,
	}))
}

// Track records event for userID. A zero at means now.
// properties must be a map or a list.
func (c *Client) Track(ctx context.Context, userID, event string, at time.Time, properties any) (*Response, error) {
	if err := validateMapping("properties", properties); err != nil {
		return nil, err
	}

	return c.call(ctx, NewRequest(ActionTrack, map[string]any{
		"userId":     userID,
		"event":      event,
		"timestamp":  c.timestamp(at),
		"properties": properties,
	}))
}

// Page records a view of the page called name. A zero at means now.
// properties must be a map or a list.
//
// Unlike the other actions, the page body also carries the API key as
// "eventKey"; the ingestion API has always received it that way.
func (c *Client) Page(ctx context.Context, userID, name string, properties any, at time.Time) (*Response, error) {
	if err := validateMapping("properties", properties); err != nil {
		return nil, err
	}

	return c.call(ctx, NewRequest(ActionPage, map[string]any{
		"eventKey":   c.apiKey,
		"userId":     userID,
		"name":       name,
		"properties": properties,
		"timestamp":  c.timestamp(at),
	}))
}

// Remove deletes userID. A zero at means now.
func (c *Client) Remove(ctx context.Context, userID string, at time.Time) (*Response, error) {
	return c.call(ctx, NewRequest(ActionRemove, map[string]any{
		"timestamp": c.timestamp(at),
		"userId":    userID,
	}))
}

// call executes req and classifies any failure.
func (c *Client) call(ctx context.Context, req *Request) (*Response, error) {
	c.logger.Debugf("--> %s %s", req.Method, req.Action)

	body, err := c.transport.Do(ctx, req)
	if err != nil {
		e := classify(req, err)
		if isContextError(err) {
			c.logger.Warnf("<-- %s %s: %v", req.Method, req.Action, e)
		} else {
			c.logger.Errorf("<-- %s %s: %v", req.Method, req.Action, e)
		}
		return nil, e
	}

	c.logger.Debugf("<-- %s %s: %d bytes", req.Method, req.Action, len(body))
	return NewResponse(body), nil
}

func (c *Client) timestamp(at time.Time) string {
	if at.IsZero() {
		at = c.now()
	}
	return FormatTimestamp(at)
}

// validateMapping checks that v can be sent as a JSON object or array.
// Nil maps and slices are rejected since they encode as null.
func validateMapping(param string, v any) error {
	if v == nil {
		return plugError("%s must be a map or a list, got nil", param)
	}

	if raw, ok := v.(json.RawMessage); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return plugError("%s is not valid JSON: %v", param, err)
		}
		switch decoded.(type) {
		case map[string]any, []any:
			return nil
		}
		return plugError("%s must be a JSON object or array, got %s", param, jsonTypeName(decoded))
	}

	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Map:
		if !isObjectKey(t.Key()) {
			return plugError("%s must be a map with string, integer or text keys, got %s", param, t)
		}
		if reflect.ValueOf(v).IsNil() {
			return plugError("%s must be a map or a list, got nil %s", param, t)
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return plugError("%s must be a map or a list, got %s", param, t)
		}
		if reflect.ValueOf(v).IsNil() {
			return plugError("%s must be a map or a list, got nil %s", param, t)
		}
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return plugError("%s must be a map or a list, got %s", param, t)
		}
	default:
		return plugError("%s must be a map or a list, got %s", param, t)
	}

	if _, err := json.Marshal(v); err != nil {
		return plugError("%s is not JSON-serializable: %v", param, err)
	}
	return nil
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// isObjectKey reports whether encoding/json writes maps keyed by k as objects.
func isObjectKey(k reflect.Type) bool {
	switch k.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return k.Implements(textMarshalerType)
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	}
	return "value"
}
