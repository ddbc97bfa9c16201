package source

import (
	"strings"
	"testing"

	"github.com/signadot/go-conf/key"
)

func TestFromJSON(t *testing.T) {
	env := NewEnv(map[string]string{
		"CONF_JSON": `{"srv":{"port":8080},"tags":["a","b"]}`,
	})
	d, err := FromJSON(env, JSONKey)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := d.Get(key.MustNew("srv", "port")); !ok || v != "8080" {
		t.Errorf("Get(srv.port) = %q, %v", v, ok)
	}
	if v, ok := d.Get(key.MustNew("tags", 1)); !ok || v != "b" {
		t.Errorf("Get(tags[1]) = %q, %v", v, ok)
	}
}

func TestFromJSONAbsent(t *testing.T) {
	d, err := FromJSON(NewEnv(nil), JSONKey)
	if err != nil {
		t.Fatal(err)
	}
	if d != nil {
		t.Errorf("FromJSON on empty source = %v, want nil", d)
	}
}

func TestFromJSONMalformed(t *testing.T) {
	env := NewEnv(map[string]string{"CONF_JSON": "{not json"})
	_, err := FromJSON(env, JSONKey)
	if err == nil {
		t.Fatal("want error")
	}
	cfgErr, ok := err.(Error)
	if !ok {
		t.Fatalf("error type %T, want source.Error", err)
	}
	if cfgErr.Key == nil || !cfgErr.Key.Equal(JSONKey) {
		t.Errorf("error key = %v, want conf.json", cfgErr.Key)
	}
	if cfgErr.Source != env {
		t.Errorf("error source = %v, want the env source", cfgErr.Source)
	}
}

func TestFromJSONNonObject(t *testing.T) {
	env := NewEnv(map[string]string{"CONF_JSON": `[1,2]`})
	_, err := FromJSON(env, JSONKey)
	if err == nil {
		t.Fatal("want error")
	}
	if !strings.Contains(err.Error(), "an array") {
		t.Errorf("error %q does not name the actual type", err)
	}
}
