package source

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/signadot/go-conf/key"
)

// Data reads keys out of an already-parsed nested tree: maps with
// string keys, []any arrays, and scalar leaves, as produced by the
// parse package for JSON and YAML documents.
//
// Lookups that run off the tree — a missing field, an out-of-range
// index, a hop through a non-container, or a null anywhere on the
// path — are absent, never errors. A key addressing a map or array
// has no direct string value (Get is absent) but is still present
// for Contains, which is how subtrees are detected.
type Data struct {
	root map[string]any
	desc string
}

var _ Source = (*Data)(nil)

// NewData wraps a parsed tree. The root of the tree is always a map.
func NewData(root map[string]any) *Data {
	return &Data{root: root, desc: "data"}
}

// WithDescription labels the source, typically with the path of the
// file it was parsed from.
func (d *Data) WithDescription(desc string) *Data {
	d.desc = desc
	return d
}

// Root returns the underlying tree. Callers must not modify it.
func (d *Data) Root() map[string]any {
	return d.root
}

func (d *Data) lookup(k key.Key) (any, bool) {
	var cur any = d.root
	for _, s := range k.Segments() {
		if cur == nil {
			return nil, false
		}
		if s.Field != nil {
			m, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			v, ok := m[*s.Field]
			if !ok {
				return nil, false
			}
			cur = v
			continue
		}
		l, ok := cur.([]any)
		if !ok || *s.Index >= len(l) {
			return nil, false
		}
		cur = l[*s.Index]
	}
	if cur == nil {
		// a terminal null holds no value
		return nil, false
	}
	return cur, true
}

func (d *Data) Get(k key.Key) (string, bool) {
	v, ok := d.lookup(k)
	if !ok {
		return "", false
	}
	switch v.(type) {
	case map[string]any, []any:
		// composite values are not stringified
		return "", false
	}
	return scalarString(v), true
}

func (d *Data) Contains(k key.Key) bool {
	_, ok := d.lookup(k)
	return ok
}

func (d *Data) Describe(k key.Key) string {
	return k.String()
}

func (d *Data) Description() string {
	return d.desc
}

// Keys enumerates the scalar leaf keys of the whole tree, map fields
// in sorted order.
func (d *Data) Keys() []key.Key {
	var res []key.Key
	for _, f := range sortedFields(d.root) {
		res = collectKeys(res, key.MustNew(f), d.root[f])
	}
	return res
}

func collectKeys(dst []key.Key, at key.Key, v any) []key.Key {
	switch x := v.(type) {
	case nil:
		return dst
	case map[string]any:
		for _, f := range sortedFields(x) {
			dst = collectKeys(dst, at.Field(f), x[f])
		}
		return dst
	case []any:
		for i, e := range x {
			dst = collectKeys(dst, at.Index(i), e)
		}
		return dst
	default:
		return append(dst, at)
	}
}

func sortedFields(m map[string]any) []string {
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// scalarString renders a scalar leaf in its canonical string form.
func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case json.Number:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
