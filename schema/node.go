package schema

import (
	"fmt"

	"github.com/signadot/go-conf/debug"
	"github.com/signadot/go-conf/key"
	"github.com/signadot/go-conf/source"
)

// Node describes how to derive a value of type T from a Source at a
// key prefix. Nodes form a closed set: only this package implements
// the interface.
type Node[T any] interface {
	anyNode

	// loadTyped loads relative to at; a nil at means the node is the
	// self-contained root of its tree.
	loadTyped(src source.Source, at *key.Key) (T, source.Errors)
}

// anyNode is the type-erased view composite nodes hold children by.
type anyNode interface {
	loadAny(src source.Source, at *key.Key) (any, source.Errors)

	// claim marks the node as attached under owner. Each node may be
	// attached at most once; claiming twice panics.
	claim(owner string)
}

// node is the one concrete Node implementation; every schema form is
// a node with a different load closure.
type node[T any] struct {
	owner string
	load  func(src source.Source, at *key.Key) (T, source.Errors)
}

func (n *node[T]) loadTyped(src source.Source, at *key.Key) (T, source.Errors) {
	return n.load(src, at)
}

func (n *node[T]) loadAny(src source.Source, at *key.Key) (any, source.Errors) {
	v, errs := n.load(src, at)
	if len(errs) > 0 {
		return nil, errs
	}
	return v, nil
}

func (n *node[T]) claim(owner string) {
	if n.owner != "" {
		panic(fmt.Sprintf("schema: node already attached under %s, cannot attach under %s", n.owner, owner))
	}
	n.owner = owner
}

// Load loads a self-contained root node against src. The returned
// error, when non-nil, is a source.Errors carrying every failure
// found in the tree.
func Load[T any](n Node[T], src source.Source) (T, error) {
	return finish(n.loadTyped(src, nil))
}

// LoadAt loads n relative to the base key at.
func LoadAt[T any](n Node[T], src source.Source, at key.Key) (T, error) {
	if debug.Load() {
		debug.Logf("load at %s from %s\n", at, src.Description())
	}
	return finish(n.loadTyped(src, &at))
}

func finish[T any](v T, errs source.Errors) (T, error) {
	if len(errs) > 0 {
		var zero T
		return zero, errs
	}
	return v, nil
}

func oneError(src source.Source, at *key.Key, format string, args ...any) source.Errors {
	return source.Errors{source.Errorf(src, at, format, args...)}
}
