// Package debug provides env-gated diagnostics for go-conf. Nothing
// here is part of the library's error channel: load failures are
// always returned to the caller in full, never logged.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lookup bool
	Files  bool
	Load   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lookup = boolEnv("CONF_DEBUG_LOOKUP")
	d.Files = boolEnv("CONF_DEBUG_FILES")
	d.Load = boolEnv("CONF_DEBUG_LOAD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lookup() bool {
	return d.Lookup
}

func Files() bool {
	return d.Files
}

func Load() bool {
	return d.Load
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
