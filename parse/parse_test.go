package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/go-conf/format"
	"github.com/signadot/go-conf/key"
	"github.com/signadot/go-conf/source"
)

func TestBytesJSON(t *testing.T) {
	root, err := Bytes([]byte(`{"a":{"b":1.5},"l":["x"]}`), format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	d := source.NewData(root)
	if v, ok := d.Get(key.MustNew("a", "b")); !ok || v != "1.5" {
		t.Errorf("a.b = %q, %v", v, ok)
	}
	if v, ok := d.Get(key.MustNew("l", 0)); !ok || v != "x" {
		t.Errorf("l[0] = %q, %v", v, ok)
	}
}

func TestBytesYAML(t *testing.T) {
	doc := `
srv:
  host: example.com
  ports:
    - 80
    - 443
debug: true
`
	root, err := Bytes([]byte(doc), format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	d := source.NewData(root)
	for _, tt := range []struct {
		k    string
		want string
	}{
		{"srv.host", "example.com"},
		{"srv.ports[0]", "80"},
		{"srv.ports[1]", "443"},
		{"debug", "true"},
	} {
		k, err := key.Parse(tt.k)
		if err != nil {
			t.Fatal(err)
		}
		if v, ok := d.Get(k); !ok || v != tt.want {
			t.Errorf("%s = %q, %v; want %q", tt.k, v, ok, tt.want)
		}
	}
}

func TestBytesEmpty(t *testing.T) {
	root, err := Bytes(nil, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if len(root) != 0 {
		t.Errorf("empty doc = %v", root)
	}
}

func TestBytesMalformed(t *testing.T) {
	if _, err := Bytes([]byte(`{oops`), format.JSONFormat); !errors.Is(err, ErrParse) {
		t.Errorf("malformed JSON err = %v", err)
	}
	if _, err := Bytes([]byte("a: [1,"), format.YAMLFormat); !errors.Is(err, ErrParse) {
		t.Errorf("malformed YAML err = %v", err)
	}
}

func TestBytesNonObjectTopLevel(t *testing.T) {
	_, err := Bytes([]byte(`[1,2]`), format.JSONFormat)
	if err == nil || !strings.Contains(err.Error(), "an array") {
		t.Errorf("err = %v, want mention of the actual type", err)
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf.yaml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.Description() != path {
		t.Errorf("Description = %q, want %q", d.Description(), path)
	}
	if v, ok := d.Get(key.MustNew("a")); !ok || v != "1" {
		t.Errorf("a = %q, %v", v, ok)
	}
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := File(bad)
	if err == nil {
		t.Fatal("want error")
	}
	var cfgErr source.Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error type %T", err)
	}
	if !strings.Contains(cfgErr.Message, "bad.json") {
		t.Errorf("error %q does not name the file", cfgErr.Message)
	}

	if _, err := File(filepath.Join(dir, "conf.toml")); err == nil {
		t.Error("unsupported extension parsed")
	}
	if _, err := File(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file parsed")
	}
}
