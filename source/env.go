package source

import (
	"strconv"
	"strings"

	"github.com/signadot/go-conf/key"
)

// Env reads keys out of a flat, case-insensitive variable map in the
// style of process environments. Variable names are case-folded to
// upper case at construction; keys map to names by upper-casing the
// field segments and joining everything with '_', indices included:
//
//	foo[0].bar → FOO_0_BAR
type Env struct {
	vars map[string]string
}

var _ Source = (*Env)(nil)

// NewEnv builds an Env source from a name→value map.
func NewEnv(vars map[string]string) *Env {
	folded := make(map[string]string, len(vars))
	for k, v := range vars {
		folded[strings.ToUpper(k)] = v
	}
	return &Env{vars: folded}
}

// NewEnviron builds an Env source from "NAME=value" pairs as returned
// by os.Environ. Pairs without '=' are skipped.
func NewEnviron(pairs []string) *Env {
	vars := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok {
			continue
		}
		vars[name] = value
	}
	return NewEnv(vars)
}

// EnvName renders the variable name addressing k.
func EnvName(k key.Key) string {
	var b strings.Builder
	for i, s := range k.Segments() {
		if i > 0 {
			b.WriteByte('_')
		}
		if s.Index != nil {
			b.WriteString(strconv.Itoa(*s.Index))
			continue
		}
		b.WriteString(strings.ToUpper(*s.Field))
	}
	return b.String()
}

func (e *Env) Get(k key.Key) (string, bool) {
	v, ok := e.vars[EnvName(k)]
	return v, ok
}

// Contains reports an exact variable or any variable that continues
// past the name at a '_' boundary. FOO_0_BAR is contained under FOO,
// but FOOX is not.
func (e *Env) Contains(k key.Key) bool {
	name := EnvName(k)
	if _, ok := e.vars[name]; ok {
		return true
	}
	prefix := name + "_"
	for v := range e.vars {
		if strings.HasPrefix(v, prefix) {
			return true
		}
	}
	return false
}

func (e *Env) Describe(k key.Key) string {
	return "$" + EnvName(k)
}

func (e *Env) Description() string {
	return "environment"
}
