package source

import (
	"github.com/signadot/go-conf/key"
)

// Source is a read-only view over one configuration backend.
type Source interface {
	// Get returns the raw string value at k, if any.
	Get(k key.Key) (string, bool)

	// Contains reports whether k holds a value or is a path-boundary
	// prefix of a deeper key holding one.
	Contains(k key.Key) bool

	// Describe renders how a human would refer to k in this backend,
	// e.g. "$SRV_PORT" or "--srv.port".
	Describe(k key.Key) string

	// Description names the backend itself, e.g. "environment" or
	// "config.yaml".
	Description() string
}
