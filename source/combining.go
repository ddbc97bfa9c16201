package source

import (
	"strings"

	"github.com/signadot/go-conf/debug"
	"github.com/signadot/go-conf/key"
)

// Combining consults an ordered list of child sources and takes the
// first match. It is itself a Source, so combined sources compose.
//
// Add and AddAll append to the low-priority end and must not be
// called concurrently with reads.
type Combining struct {
	sources []Source
}

var _ Source = (*Combining)(nil)

// NewCombining builds a Combining source, highest precedence first.
func NewCombining(srcs ...Source) *Combining {
	c := &Combining{}
	c.AddAll(srcs...)
	return c
}

// Add appends one source after all existing ones.
func (c *Combining) Add(src Source) {
	c.sources = append(c.sources, src)
}

// AddAll appends srcs, in order, after all existing sources.
func (c *Combining) AddAll(srcs ...Source) {
	c.sources = append(c.sources, srcs...)
}

// Sources returns the children in precedence order.
func (c *Combining) Sources() []Source {
	return c.sources
}

func (c *Combining) Get(k key.Key) (string, bool) {
	for _, src := range c.sources {
		if v, ok := src.Get(k); ok {
			if debug.Lookup() {
				debug.Logf("lookup %s -> %q from %s\n", k, v, src.Description())
			}
			return v, true
		}
	}
	if debug.Lookup() {
		debug.Logf("lookup %s -> absent\n", k)
	}
	return "", false
}

func (c *Combining) Contains(k key.Key) bool {
	for _, src := range c.sources {
		if src.Contains(k) {
			return true
		}
	}
	return false
}

// Describe names the winning backend's view of k: the first child
// whose Get hits describes the key, suffixed with that child's
// description. With no hit anywhere, the key's canonical form stands
// on its own.
func (c *Combining) Describe(k key.Key) string {
	for _, src := range c.sources {
		if _, ok := src.Get(k); ok {
			return src.Describe(k) + " (" + src.Description() + ")"
		}
	}
	return k.String()
}

func (c *Combining) Description() string {
	if len(c.sources) == 0 {
		return "no sources"
	}
	descs := make([]string, len(c.sources))
	for i, src := range c.sources {
		descs[i] = src.Description()
	}
	return strings.Join(descs, ", ")
}
