package key

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalid reports a malformed key: no segments, an empty field
// name, a field name containing '.', a negative index, or a segment
// that is neither a string nor an int.
var ErrInvalid = errors.New("invalid key")

// Segment is one hop of a Key: a field name or an array index.
// Exactly one of Field, Index is non-nil.
type Segment struct {
	Field *string
	Index *int
}

// Key addresses a location in a nested configuration tree. The zero
// value is not a valid Key; use New, MustNew or Parse.
type Key struct {
	segs []Segment
}

// New builds a Key from parts, each a string (field name) or an int
// (array index). Validation happens here and only here: no other
// construction path may produce a Key violating the segment
// invariants.
func New(parts ...any) (Key, error) {
	if len(parts) == 0 {
		return Key{}, fmt.Errorf("%w: no segments", ErrInvalid)
	}
	segs := make([]Segment, 0, len(parts))
	for i, part := range parts {
		switch v := part.(type) {
		case string:
			if err := checkField(v); err != nil {
				return Key{}, err
			}
			f := v
			segs = append(segs, Segment{Field: &f})
		case int:
			if v < 0 {
				return Key{}, fmt.Errorf("%w: negative index %d", ErrInvalid, v)
			}
			n := v
			segs = append(segs, Segment{Index: &n})
		default:
			return Key{}, fmt.Errorf("%w: segment %d has type %T, want string or int", ErrInvalid, i, part)
		}
	}
	return Key{segs: segs}, nil
}

// MustNew is New, panicking on error. For keys built from constants.
func MustNew(parts ...any) Key {
	k, err := New(parts...)
	if err != nil {
		panic(err)
	}
	return k
}

func checkField(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty field name", ErrInvalid)
	}
	if strings.ContainsRune(name, '.') {
		return fmt.Errorf("%w: field %q contains separator '.'", ErrInvalid, name)
	}
	return nil
}

// Field returns a new Key with a field segment appended. It panics if
// name is not a valid field name; appending is a tree-construction
// operation and wiring errors are fatal, not load-time errors.
func (k Key) Field(name string) Key {
	if err := checkField(name); err != nil {
		panic(err)
	}
	f := name
	return k.append(Segment{Field: &f})
}

// Index returns a new Key with an array-index segment appended. It
// panics if i is negative.
func (k Key) Index(i int) Key {
	if i < 0 {
		panic(fmt.Errorf("%w: negative index %d", ErrInvalid, i))
	}
	n := i
	return k.append(Segment{Index: &n})
}

// Join returns a new Key with all of o's segments appended.
func (k Key) Join(o Key) Key {
	segs := make([]Segment, 0, len(k.segs)+len(o.segs))
	segs = append(segs, k.segs...)
	segs = append(segs, o.segs...)
	return Key{segs: segs}
}

func (k Key) append(s Segment) Key {
	segs := make([]Segment, 0, len(k.segs)+1)
	segs = append(segs, k.segs...)
	segs = append(segs, s)
	return Key{segs: segs}
}

// Segments returns the key's segments. Callers must not modify the
// returned slice or the values its pointers refer to.
func (k Key) Segments() []Segment {
	return k.segs
}

// Len returns the number of segments.
func (k Key) Len() int {
	return len(k.segs)
}

// Equal reports structural, order-sensitive equality.
func (k Key) Equal(o Key) bool {
	if len(k.segs) != len(o.segs) {
		return false
	}
	for i, s := range k.segs {
		os := o.segs[i]
		if (s.Field == nil) != (os.Field == nil) {
			return false
		}
		if s.Field != nil {
			if *s.Field != *os.Field {
				return false
			}
			continue
		}
		if *s.Index != *os.Index {
			return false
		}
	}
	return true
}

// String renders the canonical form, e.g. "a[0].b".
func (k Key) String() string {
	var b strings.Builder
	for i, s := range k.segs {
		if s.Index != nil {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(*s.Index))
			b.WriteByte(']')
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(*s.Field)
	}
	return b.String()
}

// Parse builds a Key from its canonical form. It is the inverse of
// String for keys rendered by this package.
func Parse(s string) (Key, error) {
	if s == "" {
		return Key{}, fmt.Errorf("%w: empty string", ErrInvalid)
	}
	var segs []Segment
	rest := s
	for len(rest) > 0 {
		switch rest[0] {
		case '.':
			if len(segs) == 0 {
				return Key{}, fmt.Errorf("%w: %q starts with separator", ErrInvalid, s)
			}
			rest = rest[1:]
			if rest == "" {
				return Key{}, fmt.Errorf("%w: %q ends with separator", ErrInvalid, s)
			}
			if rest[0] == '.' || rest[0] == '[' {
				return Key{}, fmt.Errorf("%w: %q has separator not followed by a field", ErrInvalid, s)
			}
		case '[':
			end := strings.IndexByte(rest, ']')
			if end == -1 {
				return Key{}, fmt.Errorf("%w: %q has unterminated index", ErrInvalid, s)
			}
			n, err := strconv.ParseUint(rest[1:end], 10, 31)
			if err != nil {
				return Key{}, fmt.Errorf("%w: bad index in %q: %v", ErrInvalid, s, err)
			}
			idx := int(n)
			segs = append(segs, Segment{Index: &idx})
			rest = rest[end+1:]
		default:
			end := strings.IndexAny(rest, ".[")
			if end == -1 {
				end = len(rest)
			}
			field := rest[:end]
			if err := checkField(field); err != nil {
				return Key{}, err
			}
			f := field
			segs = append(segs, Segment{Field: &f})
			rest = rest[end:]
		}
	}
	if len(segs) == 0 {
		return Key{}, fmt.Errorf("%w: no segments in %q", ErrInvalid, s)
	}
	return Key{segs: segs}, nil
}
