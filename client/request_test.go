package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	t.Parallel()

	params := map[string]any{"userId": "u1"}
	req := NewRequest(ActionTrack, params)

	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, ActionTrack, req.Action)
	assert.Equal(t, params, req.Options.JSON)

	other := NewRequest(ActionTrack, params)
	assert.NotSame(t, req, other)
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	for _, a := range Actions() {
		got, err := ParseAction(string(a))
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	_, err := ParseAction("alias")
	assert.EqualError(t, err, `unknown action "alias"; valid actions: identify, track, page, remove`)
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://input.threads.io/v1/identify", ResolveURL("", ActionIdentify))
	assert.Equal(t, "http://localhost:8080/v1/page", ResolveURL("http://localhost:8080/v1", ActionPage))
	assert.Equal(t, "http://localhost:8080/v1/remove", ResolveURL("http://localhost:8080/v1/", ActionRemove))
}
