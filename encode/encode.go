package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/go-conf/format"
	"github.com/signadot/go-conf/key"
)

// Tree writes a data tree to w in the given format.
func Tree(w io.Writer, root map[string]any, f format.Format) error {
	switch {
	case f.IsJSON():
		d, err := json.MarshalIndent(root, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	case f.IsYAML():
		d, err := yaml.Marshal(root)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %v", format.ErrBadFormat, f)
	}
}

// Entry is one resolved value in a flattened listing.
type Entry struct {
	Key    key.Key
	Value  string
	Origin string
}

// Listing writes entries as "key = value" lines, with the origin as a
// trailing annotation when present.
func Listing(w io.Writer, entries []Entry, opts ...ListingOption) error {
	st := &listState{colors: NoColors()}
	for _, opt := range opts {
		opt(st)
	}
	for _, e := range entries {
		var line string
		if e.Origin != "" {
			line = fmt.Sprintf("%s = %s  # %s\n",
				st.colors.Key("%s", e.Key),
				st.colors.Value("%s", e.Value),
				st.colors.Origin("%s", e.Origin))
		} else {
			line = fmt.Sprintf("%s = %s\n",
				st.colors.Key("%s", e.Key),
				st.colors.Value("%s", e.Value))
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

type listState struct {
	colors *Colors
}

type ListingOption func(*listState)

func ListingColors(c *Colors) ListingOption {
	return func(st *listState) { st.colors = c }
}
