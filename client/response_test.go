package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want bool
	}{
		{"bool true", `{"success": true}`, true},
		{"bool false", `{"success": false}`, false},
		{"string true", `{"success": "true"}`, true},
		{"number one", `{"success": 1}`, true},
		{"number zero", `{"success": 0}`, false},
		{"missing", `{"ok": true}`, false},
		{"not json", `OK`, false},
		{"json array", `[true]`, false},
		{"empty", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewResponse([]byte(tt.body)).Success())
		})
	}
}

func TestResponse_Accessors(t *testing.T) {
	t.Parallel()

	body := []byte(`{"success": true, "id": "evt_1", "count": 3, "nested": {"a": 1}}`)
	resp := NewResponse(body)

	assert.Equal(t, body, resp.Body())
	assert.Equal(t, "evt_1", resp.String("id"))
	assert.Equal(t, "3", resp.String("count"))
	assert.Equal(t, "", resp.String("missing"))

	v, ok := resp.Get("nested")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": float64(1)}, v)

	var decoded struct {
		ID    string `json:"id"`
		Count int    `json:"count"`
	}
	require.NoError(t, resp.Decode(&decoded))
	assert.Equal(t, "evt_1", decoded.ID)
	assert.Equal(t, 3, decoded.Count)
}

func TestResponse_IsReadOnly(t *testing.T) {
	t.Parallel()

	body := []byte(`{"success": true}`)
	resp := NewResponse(body)

	body[2] = 'X'
	resp.Body()[0] = '['
	resp.Fields()["success"] = false

	assert.Equal(t, `{"success": true}`, string(resp.Body()))
	assert.True(t, resp.Success())
}

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "userId is required", apiErrorMessage([]byte(`{"error": "userId is required"}`)))
	assert.Equal(t, "bad timestamp", apiErrorMessage([]byte(`{"error": {"message": "bad timestamp"}}`)))
	assert.Equal(t, "nope", apiErrorMessage([]byte(`{"message": "nope"}`)))
	assert.Equal(t, "", apiErrorMessage([]byte(`Bad Request`)))
	assert.Equal(t, "", apiErrorMessage(nil))
}
