package urlmap

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gidocs/urlmap/internal/logging"
)

//go:embed urlmap.yaml
var builtinYAML []byte

var (
	// defaultTable is the table parsed from the embedded map
	defaultTable *Table
	// defaultOnce ensures the embedded map is parsed only once
	defaultOnce sync.Once
)

// Format names an encoding of the persisted pair list.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat converts a user-supplied format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON:
		return Format(s), nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected yaml or json)", s)
	}
}

// Default returns the built-in table.
// The embedded map is parsed on first use; it is covered by tests, so a
// parse failure here is a build defect and panics.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("urlmap: embedded map is invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Parse decodes a list of [namespace, base_url] pairs into a table.
// JSON input is accepted because it is valid YAML.
func Parse(data []byte) (*Table, error) {
	var rows [][]string
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse map: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, &EntryError{
				Row:    i,
				Reason: fmt.Sprintf("expected [namespace, base_url], got %d fields", len(row)),
				Err:    ErrInvalidEntry,
			}
		}
		entries = append(entries, Entry{Namespace: row[0], BaseURL: row[1]})
	}

	return New(entries)
}

// LoadFile reads and parses a map file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.Debug("Loaded map file",
		zap.String("path", path),
		zap.Int("entries", t.Len()),
	)
	return t, nil
}

// Marshal encodes a table in the persisted pair form.
// The output parses back into an identical table.
func Marshal(t *Table, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return marshalYAML(t)
	case FormatJSON:
		return marshalJSON(t)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// marshalYAML writes one flow-style pair per row.
func marshalYAML(t *Table) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, e := range t.entries {
		row := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, v := range []string{e.Namespace, e.BaseURL} {
			row.Content = append(row.Content, &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: v,
				Style: yaml.DoubleQuotedStyle,
			})
		}
		doc.Content = append(doc.Content, row)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal map: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal map: %w", err)
	}
	return buf.Bytes(), nil
}

// marshalJSON writes one pair per line, matching the hand-written layout.
func marshalJSON(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, e := range t.entries {
		row, err := json.Marshal([2]string{e.Namespace, e.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal entry %d: %w", i, err)
		}
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		buf.Write(row)
	}
	if len(t.entries) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}
