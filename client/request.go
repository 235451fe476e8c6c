package client

import "net/http"

// RequestOptions carries the body of a Request. JSON holds the parameters
// that the transport serialises as a JSON request body.
type RequestOptions struct {
	JSON map[string]any
}

// Request describes a single API call independent of any transport.
// A Request is built fresh for each call and is not reused.
type Request struct {
	Method  string
	Action  Action
	Options RequestOptions
}

// NewRequest builds a POST request for action with params as its JSON body.
// The params are not validated.
func NewRequest(action Action, params map[string]any) *Request {
	return &Request{
		Method:  http.MethodPost,
		Action:  action,
		Options: RequestOptions{JSON: params},
	}
}
