package client

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Response wraps the body of a successful API call.
type Response struct {
	body   []byte
	fields map[string]any
}

// NewResponse wraps body. A body that is not a JSON object produces a
// Response without fields whose Success reports false.
func NewResponse(body []byte) *Response {
	r := &Response{body: append([]byte(nil), body...)}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err == nil {
		r.fields = fields
	}
	return r
}

// Body returns a copy of the raw response body.
func (r *Response) Body() []byte {
	return append([]byte(nil), r.body...)
}

// Success reports the API's success indicator. JSON true, the string
// "true" and non-zero numbers count as success.
func (r *Response) Success() bool {
	switch v := r.fields["success"].(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true") || v == "1"
	case float64:
		return v != 0
	}
	return false
}

// Get returns the decoded value of a top-level field.
func (r *Response) Get(key string) (any, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// String returns a top-level field formatted as a string, or "" if absent.
func (r *Response) String(key string) string {
	v, ok := r.fields[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Fields returns a shallow copy of the decoded top-level fields.
func (r *Response) Fields() map[string]any {
	out := make(map[string]any, len(r.fields))
	for k, v := range r.fields {
		out[k] = v
	}
	return out
}

// Decode unmarshals the raw body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// apiErrorMessage extracts a message from an error body of the form
// {"error": "..."} or {"message": "..."}. It returns "" otherwise.
func apiErrorMessage(body []byte) string {
	var payload struct {
		Error   any    `json:"error"`
		Message string `json:"message"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return ""
	}
	switch v := payload.Error.(type) {
	case string:
		if v != "" {
			return v
		}
	case map[string]any:
		if m, ok := v["message"].(string); ok && m != "" {
			return m
		}
	}
	return payload.Message
}
