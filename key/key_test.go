package key

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		parts   []any
		want    string
		wantErr bool
	}{
		{
			name:  "single field",
			parts: []any{"a"},
			want:  "a",
		},
		{
			name:  "nested fields",
			parts: []any{"a", "b", "c"},
			want:  "a.b.c",
		},
		{
			name:  "field then index",
			parts: []any{"a", 0},
			want:  "a[0]",
		},
		{
			name:  "mixed",
			parts: []any{"a", 0, "b"},
			want:  "a[0].b",
		},
		{
			name:  "index then field",
			parts: []any{"a", 2, 3, "x"},
			want:  "a[2][3].x",
		},
		{
			name:    "empty",
			parts:   nil,
			wantErr: true,
		},
		{
			name:    "empty field name",
			parts:   []any{""},
			wantErr: true,
		},
		{
			name:    "field with separator",
			parts:   []any{"a.b"},
			wantErr: true,
		},
		{
			name:    "negative index",
			parts:   []any{"a", -1},
			wantErr: true,
		},
		{
			name:    "unsupported segment type",
			parts:   []any{1.5},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := New(tt.parts...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%v) = %q, want error", tt.parts, k)
				}
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("New(%v) error = %v, want ErrInvalid", tt.parts, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%v) error: %v", tt.parts, err)
			}
			if got := k.String(); got != tt.want {
				t.Errorf("New(%v).String() = %q, want %q", tt.parts, got, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []string{
		"a",
		"a.b",
		"a.b.c",
		"a[0]",
		"a[0].b",
		"a[2][3].x",
		"srv.hosts[10].port",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			k, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", s, err)
			}
			if got := k.String(); got != s {
				t.Errorf("Parse(%q).String() = %q", s, got)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		".",
		".a",
		"a.",
		"a..b",
		"a.[0]",
		"a[0",
		"a[x]",
		"a[-1]",
	}
	for _, s := range tests {
		t.Run(s, func(t *testing.T) {
			if k, err := Parse(s); err == nil {
				t.Errorf("Parse(%q) = %q, want error", s, k)
			}
		})
	}
}

func TestParseSegments(t *testing.T) {
	k, err := Parse("a[0].b")
	if err != nil {
		t.Fatal(err)
	}
	if !k.Equal(MustNew("a", 0, "b")) {
		t.Errorf("Parse(\"a[0].b\") = %v, want [a 0 b]", k.Segments())
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Key
		want bool
	}{
		{MustNew("a"), MustNew("a"), true},
		{MustNew("a"), MustNew("b"), false},
		{MustNew("a", "b"), MustNew("a", "b"), true},
		{MustNew("a", "b"), MustNew("b", "a"), false},
		{MustNew("a", 0), MustNew("a", 0), true},
		{MustNew("a", 0), MustNew("a", 1), false},
		{MustNew("a", 0), MustNew("a", "0"), false},
		{MustNew("a"), MustNew("a", "b"), false},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%q.Equal(%q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAppendDoesNotMutate(t *testing.T) {
	base := MustNew("a")
	k1 := base.Field("b")
	k2 := base.Index(0)
	if base.String() != "a" {
		t.Errorf("base mutated: %q", base)
	}
	if k1.String() != "a.b" {
		t.Errorf("Field: %q", k1)
	}
	if k2.String() != "a[0]" {
		t.Errorf("Index: %q", k2)
	}
	joined := k1.Join(MustNew("c", 1))
	if joined.String() != "a.b.c[1]" {
		t.Errorf("Join: %q", joined)
	}
	if k1.String() != "a.b" {
		t.Errorf("k1 mutated by Join: %q", k1)
	}
}

func TestFieldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Field(\"x.y\") did not panic")
		}
	}()
	MustNew("a").Field("x.y")
}
