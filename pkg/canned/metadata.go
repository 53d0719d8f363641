package canned

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var errNotObject = errors.New("metadata must be a JSON object")

// ParseMetadata converts a JSON object into attributes in the order their
// keys appear in the document. Keys are lower-cased and trimmed. Strings are
// kept verbatim, numbers and booleans keep their JSON literal, arrays and
// objects become compact JSON. Null values are dropped. When a key repeats
// the last value wins, keeping the position of the first occurrence.
func ParseMetadata(s string) ([]Attribute, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var res []Attribute
	pos := make(map[string]int)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", tok)
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}

		val, isNull, err := rawToString(raw)
		if err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		if isNull {
			continue
		}

		name := Key(key)
		if name == "" {
			continue
		}
		if i, ok := pos[name]; ok {
			slog.Debug("Duplicate metadata attribute, keeping last value",
				"attribute", name, "old", res[i].Value, "new", val)
			res[i].Value = val
			continue
		}
		pos[name] = len(res)
		res = append(res, Attribute{Name: name, Value: val})
	}

	// closing brace
	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	if _, err = dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after metadata object")
	}
	return res, nil
}

func rawToString(raw json.RawMessage) (string, bool, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false, errors.New("empty value")
	}
	switch raw[0] {
	case 'n':
		return "", true, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false, err
		}
		return s, false, nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return "", false, err
		}
		return buf.String(), false, nil
	default:
		return string(raw), false, nil
	}
}

// Prepare validates records and parses their metadata. It is the first
// phase of reconciliation and runs before any database access.
func Prepare(recs []Record) ([]Analysis, error) {
	res := make([]Analysis, len(recs))
	for i, r := range recs {
		attrs, err := ParseMetadata(r.Metadata)
		if err != nil {
			return nil, MetadataError(i+1, r.URL, err)
		}
		res[i] = Analysis{Record: r, Attributes: attrs}
	}
	return res, nil
}
