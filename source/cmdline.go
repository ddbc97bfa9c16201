package source

import (
	"strings"

	"github.com/signadot/go-conf/key"
)

// CommandLine reads keys out of --flag arguments, parsed once at
// construction:
//
//   - "--k=v" binds k to v
//   - "--k" followed by another token binds k to that token
//   - "--k" as the last token is dropped
//   - tokens not starting with "--" that were not consumed as a
//     value are ignored
//
// Flags are looked up by the key's canonical string form, so nested
// and indexed values are addressed as --srv.hosts[0]=....
type CommandLine struct {
	flags map[string]string
}

var _ Source = (*CommandLine)(nil)

// NewCommandLine parses args into a CommandLine source.
func NewCommandLine(args []string) *CommandLine {
	flags := map[string]string{}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		name := arg[2:]
		if eq := strings.IndexByte(name, '='); eq != -1 {
			flags[name[:eq]] = name[eq+1:]
			continue
		}
		if i+1 < len(args) {
			flags[name] = args[i+1]
			i++
		}
	}
	return &CommandLine{flags: flags}
}

func (c *CommandLine) Get(k key.Key) (string, bool) {
	v, ok := c.flags[k.String()]
	return v, ok
}

// Contains reports an exact flag or any flag that continues past the
// key at a '.' or '[' boundary, so --a.b makes key "a" present while
// --ab does not.
func (c *CommandLine) Contains(k key.Key) bool {
	name := k.String()
	if _, ok := c.flags[name]; ok {
		return true
	}
	for f := range c.flags {
		if !strings.HasPrefix(f, name) {
			continue
		}
		rest := f[len(name):]
		if len(rest) > 0 && (rest[0] == '.' || rest[0] == '[') {
			return true
		}
	}
	return false
}

func (c *CommandLine) Describe(k key.Key) string {
	return "--" + k.String()
}

func (c *CommandLine) Description() string {
	return "command line"
}
