// Package config manages persistent CLI configuration stored in
// ~/.config/threads/config.yaml. It provides read/write/list operations and
// masks sensitive values in output.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aviadshiber/threads/client"
	"github.com/spf13/viper"
)

// Known configuration keys.
const (
	KeyAPIKey   = "api_key"
	KeyEndpoint = "endpoint"
	KeyMock     = "mock"
)

// sensitiveKeys are masked in list output.
var sensitiveKeys = map[string]bool{
	KeyAPIKey: true,
}

// knownKeys defines the valid configuration keys and their descriptions.
var knownKeys = map[string]string{
	KeyAPIKey:   "Threads.io event key",
	KeyEndpoint: "Ingestion API base URL",
	KeyMock:     "Mock mode: never send requests (true/false)",
}

// defaults are the values the CLI falls back to for unset keys.
var defaults = map[string]string{
	KeyEndpoint: client.DefaultEndpoint,
	KeyMock:     "false",
}

// Config wraps viper to manage threads configuration.
type Config struct {
	v        *viper.Viper
	filePath string
}

// Dir returns the default configuration directory, ~/.config/threads.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, ".config", "threads"), nil
}

// New creates a Config that reads from ~/.config/threads/config.yaml.
func New() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return NewAt(dir)
}

// NewAt creates a Config backed by config.yaml inside dir.
// It creates dir if it does not exist.
func NewAt(dir string) (*Config, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	filePath := filepath.Join(dir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(filePath)
	v.SetConfigType("yaml")

	// Read existing config; ignore file-not-found since we create on first write.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Config{v: v, filePath: filePath}, nil
}

// Get returns the value for a configuration key.
func (c *Config) Get(key string) string {
	return c.v.GetString(key)
}

// Set writes a configuration key-value pair and persists to disk.
func (c *Config) Set(key, value string) error {
	if _, ok := knownKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(KnownKeyNames(), ", "))
	}

	switch key {
	case KeyEndpoint:
		if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return fmt.Errorf("invalid endpoint %q; must start with http:// or https://", value)
		}
	case KeyMock:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid mock value %q; must be true or false", value)
		}
		value = strconv.FormatBool(b)
	}

	c.v.Set(key, value)
	return c.write()
}

// Display returns the value of key as it may be shown to the user:
// sensitive values are masked.
func (c *Config) Display(key string) string {
	val := c.v.GetString(key)
	if val != "" && sensitiveKeys[key] {
		return mask(val)
	}
	return val
}

// Lookup resolves key for display. Unset keys fall back to their default
// with Source "default"; sensitive values are masked unless reveal is set.
// ok is false when the key is unset and has no default.
func (c *Config) Lookup(key string, reveal bool) (Entry, bool, error) {
	if _, known := knownKeys[key]; !known {
		return Entry{}, false, fmt.Errorf("unknown config key %q; valid keys: %s", key, strings.Join(KnownKeyNames(), ", "))
	}

	if val := c.v.GetString(key); val != "" {
		if !reveal {
			val = c.Display(key)
		}
		return Entry{Key: key, Value: val, Source: "config"}, true, nil
	}
	if def, ok := defaults[key]; ok {
		return Entry{Key: key, Value: def, Source: "default"}, true, nil
	}
	return Entry{Key: key}, false, nil
}

// IsSensitive reports whether key is masked when displayed.
func IsSensitive(key string) bool {
	return sensitiveKeys[key]
}

// List returns all set configuration entries as key-value pairs.
// Sensitive values are masked.
func (c *Config) List() []Entry {
	var entries []Entry
	for _, key := range KnownKeyNames() {
		val := c.Display(key)
		if val == "" {
			continue
		}
		entries = append(entries, Entry{Key: key, Value: val})
	}
	return entries
}

// Entry is a single configuration key-value pair.
type Entry struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source string `json:"source,omitempty"`
}

// KnownKeyNames returns sorted known key names.
func KnownKeyNames() []string {
	return []string{KeyAPIKey, KeyEndpoint, KeyMock}
}

// Describe returns the description of a known key, or "".
func Describe(key string) string {
	return knownKeys[key]
}

// FilePath returns the path to the configuration file.
func (c *Config) FilePath() string {
	return c.filePath
}

func (c *Config) write() error {
	return c.v.WriteConfigAs(c.filePath)
}

// mask shows the first 4 characters followed by "****".
func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + "****"
}
