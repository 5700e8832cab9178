package weights

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/projroot/internal/cue"
)

// ErrBadDocument marks a weights document that is not a flat mapping of
// pattern strings to integers.
var ErrBadDocument = errors.New("invalid weights document")

// pair is one decoded key/value before validation.
type pair struct {
	key   string
	value any
}

// LoadFile reads a weights document, choosing the decoder by extension:
// .yaml/.yml and .toml are supported alongside the canonical JSON form,
// which is also the fallback for unknown extensions.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON decodes a JSON object of pattern→weight, preserving document key
// order. Duplicate keys collapse to the last value, like repeated Set calls.
func ParseJSON(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: top-level value must be an object", ErrBadDocument)
	}

	var pairs []pair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: object key is not a string", ErrBadDocument)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		pairs = append(pairs, pair{key: key, value: normalizeNumber(value)})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing content after object", ErrBadDocument)
	}

	return validated(pairs)
}

// ParseYAML decodes a YAML mapping of pattern→weight, preserving document
// key order via the node API. An empty document is an empty table.
func ParseYAML(data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top-level value must be a mapping", ErrBadDocument)
	}

	var pairs []pair
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := root.Content[i], root.Content[i+1]
		var value any
		if err := valueNode.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		pairs = append(pairs, pair{key: keyNode.Value, value: value})
	}
	return validated(pairs)
}

// ParseTOML decodes a TOML document of pattern→weight. TOML decoding does
// not preserve document order, so new patterns append in sorted order; this
// only affects display, never scores.
func ParseTOML(data []byte) ([]Entry, error) {
	raw := map[string]any{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, pair{key: k, value: raw[k]})
	}
	return validated(pairs)
}

// validated checks the decoded pairs against the weights schema and converts
// them into entries.
func validated(pairs []pair) ([]Entry, error) {
	doc := make(map[string]any, len(pairs))
	for _, p := range pairs {
		doc[p.key] = p.value
	}

	validator := cue.NewValidator()
	if err := validator.LoadSchemas(); err == nil {
		issues, err := validator.ValidateWeights(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
		}
		if len(issues) > 0 {
			msgs := make([]string, len(issues))
			for i, issue := range issues {
				msgs[i] = issue.Message
			}
			return nil, fmt.Errorf("%w: %s", ErrBadDocument, strings.Join(msgs, "; "))
		}
	}

	entries := make([]Entry, 0, len(pairs))
	for _, p := range pairs {
		weight, ok := toInt(p.value)
		if !ok {
			return nil, fmt.Errorf("%w: value for %q is not an integer", ErrBadDocument, p.key)
		}
		entries = append(entries, Entry{Pattern: p.key, Weight: weight})
	}
	return entries, nil
}

// normalizeNumber converts json.Number values into int64 or float64 so the
// schema sees real numbers instead of the decoder's string form.
func normalizeNumber(v any) any {
	n, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := n.Int64(); err == nil {
		return i
	}
	if f, err := n.Float64(); err == nil {
		return f
	}
	return n.String()
}

// toInt accepts the integer types the three decoders produce.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	}
	return 0, false
}
