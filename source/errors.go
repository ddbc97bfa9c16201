package source

import (
	"fmt"
	"strings"

	"github.com/signadot/go-conf/key"
)

// Error is one structured configuration failure: what went wrong,
// and where. Source and Key may each be nil when the failure has no
// originating backend or path (e.g. a file-level parse error carries
// a Source but no Key).
type Error struct {
	Message string
	Source  Source
	Key     *key.Key
}

func Errorf(src Source, at *key.Key, format string, args ...any) Error {
	return Error{
		Message: fmt.Sprintf(format, args...),
		Source:  src,
		Key:     at,
	}
}

// Error renders "where: what".
func (e Error) Error() string {
	switch {
	case e.Source != nil && e.Key != nil:
		return e.Source.Describe(*e.Key) + ": " + e.Message
	case e.Key != nil:
		return e.Key.String() + ": " + e.Message
	case e.Source != nil:
		return e.Source.Description() + ": " + e.Message
	default:
		return e.Message
	}
}

// Errors is a non-empty aggregate of configuration failures. A load
// over a schema tree returns every error found anywhere in the tree,
// not only the first.
type Errors []Error

// Error renders a numbered list, one failure per line.
func (es Errors) Error() string {
	if len(es) == 1 {
		return "1 configuration error:\n  1. " + es[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d configuration errors:", len(es))
	for i, e := range es {
		fmt.Fprintf(&b, "\n  %d. %s", i+1, e.Error())
	}
	return b.String()
}
