package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", JSONFormat, false},
		{"j", JSONFormat, false},
		{"yaml", YAMLFormat, false},
		{"yml", YAMLFormat, false},
		{"y", YAMLFormat, false},
		{"toml", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		f, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFormat(%q) err = %v, want ErrBadFormat", tt.in, err)
			}
			continue
		}
		if err != nil || f != tt.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, f, err, tt.want)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"conf.json", JSONFormat, false},
		{"dir/conf.prod.yaml", YAMLFormat, false},
		{"conf.yml", YAMLFormat, false},
		{"conf.txt", 0, true},
		{"conf", 0, true},
	}
	for _, tt := range tests {
		f, err := FromPath(tt.path)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FromPath(%q) = %v, want error", tt.path, f)
			}
			continue
		}
		if err != nil || f != tt.want {
			t.Errorf("FromPath(%q) = %v, %v; want %v", tt.path, f, err, tt.want)
		}
	}
}
