package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-conf/key"
)

func TestDataGet(t *testing.T) {
	root := map[string]any{
		"a": map[string]any{
			"b": 1,
		},
		"s":     "hello",
		"t":     true,
		"f":     1.5,
		"whole": 2.0,
		"n":     nil,
		"list":  []any{"x", "y"},
		"deep": map[string]any{
			"items": []any{
				map[string]any{"name": "first"},
			},
		},
	}
	d := NewData(root)
	tests := []struct {
		k    key.Key
		want string
		ok   bool
	}{
		{key.MustNew("a", "b"), "1", true},
		{key.MustNew("a"), "", false}, // composite: present but no value
		{key.MustNew("s"), "hello", true},
		{key.MustNew("t"), "true", true},
		{key.MustNew("f"), "1.5", true},
		{key.MustNew("whole"), "2", true},
		{key.MustNew("n"), "", false},
		{key.MustNew("n", "deeper"), "", false},
		{key.MustNew("list", 0), "x", true},
		{key.MustNew("list", 1), "y", true},
		{key.MustNew("list", 2), "", false},
		{key.MustNew("list"), "", false},
		{key.MustNew("deep", "items", 0, "name"), "first", true},
		{key.MustNew("missing"), "", false},
		{key.MustNew("s", "under-scalar"), "", false},
	}
	for _, tt := range tests {
		got, ok := d.Get(tt.k)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Get(%s) = %q, %v; want %q, %v", tt.k, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDataContains(t *testing.T) {
	d := NewData(map[string]any{
		"a":    map[string]any{"b": 1},
		"n":    nil,
		"list": []any{"x"},
	})
	tests := []struct {
		k    key.Key
		want bool
	}{
		{key.MustNew("a"), true},
		{key.MustNew("a", "b"), true},
		{key.MustNew("a", "c"), false},
		{key.MustNew("n"), false},
		{key.MustNew("list"), true},
		{key.MustNew("list", 0), true},
		{key.MustNew("list", 1), false},
		{key.MustNew("missing"), false},
	}
	for _, tt := range tests {
		if got := d.Contains(tt.k); got != tt.want {
			t.Errorf("Contains(%s) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestDataKeys(t *testing.T) {
	d := NewData(map[string]any{
		"b": map[string]any{
			"y": 1,
			"x": 2,
		},
		"a":    "v",
		"list": []any{"p", "q"},
		"n":    nil,
	})
	var got []string
	for _, k := range d.Keys() {
		got = append(got, k.String())
	}
	want := []string{"a", "b.x", "b.y", "list[0]", "list[1]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeData(t *testing.T) {
	base := NewData(map[string]any{
		"a": map[string]any{"x": "1", "y": "2"},
		"b": "base",
		"l": []any{"p", "q"},
	}).WithDescription("base")
	overlay := NewData(map[string]any{
		"a": map[string]any{"y": "3", "z": nil},
		"l": []any{"r"},
	}).WithDescription("overlay")
	merged, err := MergeData(base, overlay)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		k    string
		want string
		ok   bool
	}{
		{"a.x", "1", true},
		{"a.y", "3", true},
		{"b", "base", true},
		{"l[0]", "r", true},
		{"l[1]", "", false},
	}
	for _, tt := range tests {
		k, err := key.Parse(tt.k)
		if err != nil {
			t.Fatal(err)
		}
		got, ok := merged.Get(k)
		if ok != tt.ok || got != tt.want {
			t.Errorf("merged.Get(%s) = %q, %v; want %q, %v", tt.k, got, ok, tt.want, tt.ok)
		}
	}
}
