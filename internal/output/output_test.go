package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, map[string]any{"success": true, "url": "a&b"}))
	assert.Equal(t, "{\n  \"success\": true,\n  \"url\": \"a&b\"\n}\n", buf.String())
}

func TestFilterFields(t *testing.T) {
	t.Parallel()

	data := map[string]any{"success": true, "id": "x", "count": 2.0}

	assert.Equal(t, data, FilterFields(data, nil))
	assert.Equal(t, map[string]any{"id": "x"}, FilterFields(data, []string{"id", "missing"}))
}

func TestApplyJQ(t *testing.T) {
	t.Parallel()

	data, err := Normalize(map[string]any{"success": true, "items": []int{1, 2}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ApplyJQ(&buf, data, ".items[]"))
	assert.Equal(t, "1\n2\n", buf.String())

	buf.Reset()
	require.NoError(t, ApplyJQ(&buf, data, ".success"))
	assert.Equal(t, "true\n", buf.String())

	assert.ErrorContains(t, ApplyJQ(&buf, data, ".[[["), "parsing jq expression")
	assert.ErrorContains(t, ApplyJQ(&buf, data, ".success | error(\"nope\")"), "jq evaluation")
}

func TestApplyTemplate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ApplyTemplate(&buf, map[string]any{"success": true}, "ok={{.success}}"))
	assert.Equal(t, "ok=true", buf.String())

	assert.ErrorContains(t, ApplyTemplate(&buf, nil, "{{.success"), "parsing template")
}

func TestPrintFields_TSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintFields(&buf, map[string]any{"success": true, "id": "evt", "none": nil}, false)
	assert.Equal(t, "FIELD\tVALUE\nid\tevt\nnone\t\nsuccess\ttrue\n", buf.String())
}

func TestPrintTable_TSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	PrintTable(&buf, []string{"KEY", "VALUE"}, [][]string{{"api_key", "abcd****"}}, false)
	assert.Equal(t, "KEY\tVALUE\napi_key\tabcd****\n", buf.String())
}
