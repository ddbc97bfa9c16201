package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/go-conf/format"
	"github.com/signadot/go-conf/source"
)

// ErrParse reports a backend-level failure turning bytes into a tree.
var ErrParse = errors.New("parse error")

// Bytes parses data in the given format into a nested tree. The top
// level of a configuration document must be an object.
func Bytes(data []byte, f format.Format) (map[string]any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}
	var v any
	switch {
	case f.IsJSON():
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("%w: malformed JSON: %v", ErrParse, err)
		}
	case f.IsYAML():
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: malformed YAML: %v", ErrParse, err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, f)
	}
	if v == nil {
		// an empty document is an empty object
		return map[string]any{}, nil
	}
	root, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: top-level value is %s, want an object", ErrParse, typeName(v))
	}
	return root, nil
}

// File reads and parses path into a Data source described by the
// path. Failures come back as a structured source.Error naming the
// file.
func File(path string) (*source.Data, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, source.Error{Message: err.Error()}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, source.Error{Message: fmt.Sprintf("%s: %v", path, err)}
	}
	root, err := Bytes(data, f)
	if err != nil {
		return nil, source.Error{Message: fmt.Sprintf("%s: %v", path, err)}
	}
	return source.NewData(root).WithDescription(path), nil
}

func typeName(v any) string {
	switch v.(type) {
	case bool:
		return "a boolean"
	case string:
		return "a string"
	case float64, int64, uint64, json.Number:
		return "a number"
	case []any:
		return "an array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
