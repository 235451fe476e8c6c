package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAt_MissingFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "threads")
	cfg, err := NewAt(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.FilePath())
	assert.Empty(t, cfg.List())
	assert.DirExists(t, dir)
}

func TestSet_PersistsAndReloads(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewAt(dir)
	require.NoError(t, err)

	require.NoError(t, cfg.Set(KeyAPIKey, "abcdef123456"))
	require.NoError(t, cfg.Set(KeyEndpoint, "http://localhost:9000/v1/"))
	require.NoError(t, cfg.Set(KeyMock, "1"))

	reloaded, err := NewAt(dir)
	require.NoError(t, err)

	assert.Equal(t, "abcdef123456", reloaded.Get(KeyAPIKey))
	assert.Equal(t, "http://localhost:9000/v1/", reloaded.Get(KeyEndpoint))
	assert.Equal(t, "true", reloaded.Get(KeyMock))
}

func TestSet_Validation(t *testing.T) {
	t.Parallel()

	cfg, err := NewAt(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name      string
		key       string
		value     string
		wantError string
	}{
		{"unknown key", "region", "us", `unknown config key "region"; valid keys: api_key, endpoint, mock`},
		{"bad endpoint", KeyEndpoint, "input.threads.io", `invalid endpoint "input.threads.io"; must start with http:// or https://`},
		{"bad mock", KeyMock, "sometimes", `invalid mock value "sometimes"; must be true or false`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, cfg.Set(tt.key, tt.value), tt.wantError)
		})
	}
}

func TestList_MasksAPIKey(t *testing.T) {
	t.Parallel()

	cfg, err := NewAt(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cfg.Set(KeyAPIKey, "abcdef123456"))
	require.NoError(t, cfg.Set(KeyMock, "false"))

	assert.Equal(t, "abcd****", cfg.Display(KeyAPIKey))
	assert.Equal(t, "", cfg.Display(KeyEndpoint))
	assert.Equal(t, []Entry{
		{Key: KeyAPIKey, Value: "abcd****"},
		{Key: KeyMock, Value: "false"},
	}, cfg.List())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	cfg, err := NewAt(t.TempDir())
	require.NoError(t, err)

	_, ok, err := cfg.Lookup(KeyAPIKey, false)
	require.NoError(t, err)
	assert.False(t, ok)

	e, ok, err := cfg.Lookup(KeyEndpoint, false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, Entry{Key: KeyEndpoint, Value: "https://input.threads.io/v1/", Source: "default"}, e)

	require.NoError(t, cfg.Set(KeyAPIKey, "abcdef123456"))

	e, _, err = cfg.Lookup(KeyAPIKey, false)
	require.NoError(t, err)
	assert.Equal(t, Entry{Key: KeyAPIKey, Value: "abcd****", Source: "config"}, e)

	e, _, err = cfg.Lookup(KeyAPIKey, true)
	require.NoError(t, err)
	assert.Equal(t, "abcdef123456", e.Value)

	_, _, err = cfg.Lookup("region", false)
	assert.EqualError(t, err, `unknown config key "region"; valid keys: api_key, endpoint, mock`)

	assert.True(t, IsSensitive(KeyAPIKey))
	assert.False(t, IsSensitive(KeyMock))
}

func TestNewAt_CorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("api_key: [unterminated"), 0o600))

	_, err := NewAt(dir)
	assert.ErrorContains(t, err, "reading config")
}

func TestMask(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "****", mask("abc"))
	assert.Equal(t, "****", mask("abcd"))
	assert.Equal(t, "abcd****", mask("abcde"))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	for _, key := range KnownKeyNames() {
		assert.NotEmpty(t, Describe(key), key)
	}
	assert.Empty(t, Describe("region"))
}
