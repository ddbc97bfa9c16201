package source

import (
	"encoding/json"

	"github.com/signadot/go-conf/key"
)

// JSONKey is the reserved key conventionally holding a JSON-encoded
// object whose contents are merged in as an additional nested source:
// $CONF_JSON in the environment, --conf.json on the command line.
var JSONKey = key.MustNew("conf", "json")

// FromJSON reads the value at `at` from src and, when present, parses
// it as a JSON object into a Data source. An absent key yields
// (nil, nil). Malformed JSON or a non-object top level yields a
// structured error carrying the key and source it came from.
func FromJSON(src Source, at key.Key) (*Data, error) {
	raw, ok := src.Get(at)
	if !ok {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, Errorf(src, &at, "Malformed JSON: %v.", err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, Errorf(src, &at, "Expected a JSON object, got %s.", jsonTypeName(v))
	}
	return NewData(obj).WithDescription(src.Description() + " " + at.String()), nil
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64, json.Number:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	default:
		return "an object"
	}
}
