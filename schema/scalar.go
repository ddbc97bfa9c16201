package schema

import (
	"fmt"
	"net/netip"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/go-conf/key"
	"github.com/signadot/go-conf/source"
)

// Scalar is the leaf form every built-in scalar is made of. It reads
// the raw string at the node's key and applies parse. A missing value
// fails with "Expected a value."; a parse error's message is carried
// into the structured error as-is, so parse should describe the
// expected type and the offending input.
func Scalar[T any](typeName string, parse func(raw string) (T, error)) Node[T] {
	n := &node[T]{}
	n.load = func(src source.Source, at *key.Key) (T, source.Errors) {
		var zero T
		if at == nil {
			return zero, oneError(src, nil, "No key to read a %s value from.", typeName)
		}
		raw, ok := src.Get(*at)
		if !ok {
			return zero, oneError(src, at, "Expected a value.")
		}
		v, err := parse(raw)
		if err != nil {
			return zero, oneError(src, at, "%s", err)
		}
		return v, nil
	}
	return n
}

// String accepts any raw value verbatim.
func String() Node[string] {
	return Scalar("string", func(raw string) (string, error) {
		return raw, nil
	})
}

// Bool accepts case-insensitive "true" and "false".
func Bool() Node[bool] {
	return Scalar("boolean", func(raw string) (bool, error) {
		switch strings.ToLower(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return false, fmt.Errorf("Expected a boolean (true or false), got %q.", raw)
	})
}

// Int accepts base-10 integers.
func Int() Node[int64] {
	return Scalar("integer", func(raw string) (int64, error) {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("Expected an integer, got %q.", raw)
		}
		return v, nil
	})
}

// Float accepts decimal numbers.
func Float() Node[float64] {
	return Scalar("number", func(raw string) (float64, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("Expected a number, got %q.", raw)
		}
		return v, nil
	})
}

// Duration accepts Go duration strings such as "30s" or "5m".
func Duration() Node[time.Duration] {
	return Scalar("duration", func(raw string) (time.Duration, error) {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("Expected a duration such as \"30s\" or \"5m\", got %q.", raw)
		}
		return v, nil
	})
}

// Time accepts RFC 3339 date-times.
func Time() Node[time.Time] {
	return Scalar("date-time", func(raw string) (time.Time, error) {
		v, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("Expected an RFC 3339 date-time, got %q.", raw)
		}
		return v, nil
	})
}

// URL accepts absolute URIs.
func URL() Node[*url.URL] {
	return Scalar("URI", func(raw string) (*url.URL, error) {
		v, err := url.Parse(raw)
		if err != nil || v.Scheme == "" {
			return nil, fmt.Errorf("Expected a URI, got %q.", raw)
		}
		return v, nil
	})
}

// Addr accepts ip:port network addresses.
func Addr() Node[netip.AddrPort] {
	return Scalar("network address", func(raw string) (netip.AddrPort, error) {
		v, err := netip.ParseAddrPort(raw)
		if err != nil {
			return netip.AddrPort{}, fmt.Errorf("Expected a network address (ip:port), got %q.", raw)
		}
		return v, nil
	})
}

// Enum accepts exactly one of names.
func Enum(names ...string) Node[string] {
	allowed := strings.Join(names, ", ")
	return Scalar("enum", func(raw string) (string, error) {
		for _, n := range names {
			if raw == n {
				return n, nil
			}
		}
		return "", fmt.Errorf("Expected one of %s; got %q.", allowed, raw)
	})
}
