package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aviadshiber/threads/client"
	"github.com/aviadshiber/threads/internal/config"
	"github.com/aviadshiber/threads/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newClient creates a Threads.io client from the current configuration
// state (viper config + env vars + flags).
func newClient() (*client.Client, error) {
	apiKey := viper.GetString(config.KeyAPIKey)
	mock := viper.GetBool(config.KeyMock)

	if apiKey == "" && !mock {
		return nil, fmt.Errorf("API key is required; set via `--api-key`, `THREADS_API_KEY` env, or `threads config set api_key <key>`")
	}

	opts := []client.Option{
		client.WithEndpoint(viper.GetString(config.KeyEndpoint)),
		client.WithMock(mock),
		client.WithUserAgent("threads-cli/" + versionInfo.version),
	}
	if isDebug() {
		opts = append(opts, client.WithRequestLogger(newDebugLogger()))
	}

	return client.New(apiKey, opts...), nil
}

// newDebugLogger returns a zap console logger writing to the error stream.
func newDebugLogger() *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(getIO().ErrOut),
		zapcore.DebugLevel,
	)
	return zap.New(core).Named("threads").Sugar()
}

// parseAt parses the --at flag. An empty value means "now" and yields the
// zero time, which the client replaces with the current instant.
func parseAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := client.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid `--at` value %q; use RFC 3339 with an offset, e.g. 2016-03-01T09:30:00Z", value)
	}
	return t, nil
}

// jsonArg turns a --traits/--properties flag into a value for the client.
// The client rejects anything that is not a JSON object or array.
func jsonArg(value string) any {
	if strings.TrimSpace(value) == "" {
		return map[string]any{}
	}
	return json.RawMessage(value)
}

// handleJSONOutput processes a value through --jq or --template filters, or
// prints it as pretty JSON. It returns true if JSON output was handled
// (i.e., --json was requested), false otherwise.
func handleJSONOutput(cmd *cobra.Command, data any) (bool, error) {
	if !jsonOutputRequested(cmd) {
		return false, nil
	}

	s := getIO()

	normalized, err := output.Normalize(data)
	if err != nil {
		return true, err
	}

	jqExpr, _ := cmd.Flags().GetString("jq")
	tmpl, _ := cmd.Flags().GetString("template")

	switch {
	case jqExpr != "":
		return true, output.ApplyJQ(s.Out, normalized, jqExpr)
	case tmpl != "":
		return true, output.ApplyTemplate(s.Out, normalized, tmpl)
	default:
		return true, output.PrintJSON(s.Out, normalized)
	}
}

// jsonFields returns the field list given to --json, if any.
func jsonFields(cmd *cobra.Command) []string {
	v, _ := cmd.Flags().GetString("json")
	return splitCSV(v)
}

// reportResponse prints the outcome of an action.
func reportResponse(cmd *cobra.Command, c *client.Client, action client.Action, userID string, resp *client.Response) error {
	fields := resp.Fields()

	handled, err := handleJSONOutput(cmd, output.FilterFields(fields, jsonFields(cmd)))
	if err != nil || handled {
		return err
	}

	s := getIO()
	if !resp.Success() {
		return fmt.Errorf("%s for %q was not acknowledged: %s", action, userID, strings.TrimSpace(string(resp.Body())))
	}

	msg := fmt.Sprintf("%s sent for %s", action, s.Bold(userID))
	if c.Mock() {
		msg += " " + s.Muted("(mock)")
	}
	s.Printf("%s\n", s.Success(msg))

	if extra := withoutSuccess(fields); len(extra) > 0 && !s.IsQuiet() {
		output.PrintFields(s.Out, extra, s.IsTerminal())
	}
	return nil
}

func withoutSuccess(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k != "success" {
			out[k] = v
		}
	}
	return out
}

// splitCSV splits a comma-separated string into trimmed, non-empty parts.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
