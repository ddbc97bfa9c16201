package schema

import (
	"fmt"

	"github.com/signadot/go-conf/key"
	"github.com/signadot/go-conf/source"
)

// Field is one named property of an Object: a child node rebased
// under the field's name.
type Field struct {
	name string
	node anyNode
}

// F binds child under name. It panics when name is not a valid key
// field or when child is already attached elsewhere.
func F[T any](name string, child Node[T]) Field {
	return Field{
		name: name,
		node: At(key.MustNew(name), child),
	}
}

// Values holds an Object's loaded field values by field name.
type Values map[string]any

// As reads a loaded field value with its concrete type. It panics on
// a missing name or mismatched type: factories only run after every
// field loaded successfully, so either is a programming error.
func As[T any](v Values, name string) T {
	x, ok := v[name]
	if !ok {
		panic(fmt.Sprintf("schema: no object field %q", name))
	}
	t, ok := x.(T)
	if !ok {
		panic(fmt.Sprintf("schema: object field %q holds %T, asked for %T", name, x, t))
	}
	return t
}

// Object loads every field independently — a failure in one field
// never hides another's errors — and applies factory to the collected
// values only when all fields succeeded. A factory error becomes a
// structured error at the object's key. Duplicate field names panic
// at construction.
func Object[T any](factory func(Values) (T, error), fields ...Field) Node[T] {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.name] {
			panic(fmt.Sprintf("schema: duplicate object field %q", f.name))
		}
		seen[f.name] = true
		f.node.claim("Object field " + f.name)
	}
	n := &node[T]{}
	n.load = func(src source.Source, at *key.Key) (T, source.Errors) {
		var zero T
		vals := make(Values, len(fields))
		var errs source.Errors
		for _, f := range fields {
			v, fieldErrs := f.node.loadAny(src, at)
			if len(fieldErrs) > 0 {
				errs = append(errs, fieldErrs...)
				continue
			}
			vals[f.name] = v
		}
		if len(errs) > 0 {
			return zero, errs
		}
		v, err := factory(vals)
		if err != nil {
			return zero, oneError(src, at, "%s", err)
		}
		return v, nil
	}
	return n
}
