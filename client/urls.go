// Package client is a Go client for the Threads.io ingestion API.
//
// A Client sends four actions to the API: identify a user, track an event,
// record a page view and remove a user. Each action is an authenticated
// POST with a JSON body; failures come back as *Error values whose Kind
// tells the caller what went wrong.
//
//	c := client.New("my-event-key")
//	resp, err := c.Track(ctx, "user-42", "Signed Up", time.Now(), map[string]any{
//	    "plan": "pro",
//	})
//	if errors.Is(err, client.ErrInvalidKey) {
//	    // stop sending events
//	}
//
// Use WithMock to get a client that never touches the network.
package client

import "fmt"

// DefaultEndpoint is the base URL of the Threads.io ingestion API.
const DefaultEndpoint = "https://input.threads.io/v1/"

// Action is one of the API operations. It doubles as the request path
// relative to the endpoint.
type Action string

// Supported actions.
const (
	ActionIdentify Action = "identify"
	ActionTrack    Action = "track"
	ActionPage     Action = "page"
	ActionRemove   Action = "remove"
)

// Actions returns every supported action in a stable order.
func Actions() []Action {
	return []Action{ActionIdentify, ActionTrack, ActionPage, ActionRemove}
}

// ParseAction returns the Action named by s.
// It returns an error if s is not a supported action.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q; valid actions: identify, track, page, remove", s)
}

// ResolveURL joins the endpoint and the action path.
func ResolveURL(endpoint string, action Action) string {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if endpoint[len(endpoint)-1] != '/' {
		endpoint += "/"
	}
	return endpoint + string(action)
}
