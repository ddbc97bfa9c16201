package schema

import (
	"github.com/signadot/go-conf/key"
	"github.com/signadot/go-conf/source"
)

// Optional succeeds with nil when the source does not contain the
// key at all, without invoking child — a missing optional value never
// produces child errors. When the key is present it delegates fully.
func Optional[T any](child Node[T]) Node[*T] {
	child.claim("Optional")
	n := &node[*T]{}
	n.load = func(src source.Source, at *key.Key) (*T, source.Errors) {
		if at != nil && !src.Contains(*at) {
			return nil, nil
		}
		v, errs := child.loadTyped(src, at)
		if len(errs) > 0 {
			return nil, errs
		}
		return &v, nil
	}
	return n
}

// Default is Optional with a stored fallback in place of nil.
func Default[T any](child Node[T], fallback T) Node[T] {
	child.claim("Default")
	n := &node[T]{}
	n.load = func(src source.Source, at *key.Key) (T, source.Errors) {
		if at != nil && !src.Contains(*at) {
			return fallback, nil
		}
		return child.loadTyped(src, at)
	}
	return n
}

// At projects child under a fixed base key: an incoming key is joined
// with base, and at the root base stands alone. Object fields and
// application-wide roots are both built from this form.
func At[T any](base key.Key, child Node[T]) Node[T] {
	child.claim("At(" + base.String() + ")")
	n := &node[T]{}
	n.load = func(src source.Source, at *key.Key) (T, source.Errors) {
		effective := base
		if at != nil {
			effective = at.Join(base)
		}
		return child.loadTyped(src, &effective)
	}
	return n
}

// List probes key[0], key[1], ... for presence; the first absent
// index ends the list. Elements load independently: one bad element
// does not stop the probe, and all element errors are merged in index
// order.
func List[T any](elem Node[T]) Node[[]T] {
	elem.claim("List")
	n := &node[[]T]{}
	n.load = func(src source.Source, at *key.Key) ([]T, source.Errors) {
		if at == nil {
			return nil, oneError(src, nil, "No key to read a list from.")
		}
		res := []T{}
		var errs source.Errors
		for i := 0; ; i++ {
			ek := at.Index(i)
			if !src.Contains(ek) {
				break
			}
			v, elemErrs := elem.loadTyped(src, &ek)
			if len(elemErrs) > 0 {
				errs = append(errs, elemErrs...)
				continue
			}
			res = append(res, v)
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return res, nil
	}
	return n
}
