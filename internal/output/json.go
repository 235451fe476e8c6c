// Package output renders CLI results: pretty JSON, jq-filtered JSON, Go
// templates and tables.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"text/template"

	"github.com/itchyny/gojq"
)

// PrintJSON pretty-prints v as indented JSON to w.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// FilterFields returns a copy of data holding only the given fields.
// With no fields, data is returned unchanged.
func FilterFields(data map[string]any, fields []string) map[string]any {
	if len(fields) == 0 {
		return data
	}
	filtered := make(map[string]any, len(fields))
	for _, f := range fields {
		if val, ok := data[f]; ok {
			filtered[f] = val
		}
	}
	return filtered
}

// ApplyJQ runs a jq expression against data and writes each result to w.
// data must be made of JSON-decoded values (maps, slices, float64, ...).
func ApplyJQ(w io.Writer, data any, expr string) error {
	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("parsing jq expression: %w", err)
	}

	iter := query.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("jq evaluation: %w", err)
		}
		if err := PrintJSON(w, v); err != nil {
			return fmt.Errorf("writing jq result: %w", err)
		}
	}
	return nil
}

// ApplyTemplate renders data through a Go text/template and writes to w.
func ApplyTemplate(w io.Writer, data any, tmpl string) error {
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	_, err = buf.WriteTo(w)
	return err
}

// Normalize round-trips v through encoding/json so that it only contains
// the value types gojq and templates understand.
func Normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding output: %w", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding output: %w", err)
	}
	return out, nil
}
