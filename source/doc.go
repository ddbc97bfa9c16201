// Package source abstracts the untyped key-value backends that
// configuration values are read out of.
//
// A Source answers three questions for a key.Key: is there a value at
// this path (Contains), what is it (Get), and how would a human refer
// to it (Describe). Flat backends (environment variables, command-line
// flags) and nested backends (parsed JSON/YAML trees) answer them
// through the same interface, so the schema layer never cares which
// kind it is reading from.
//
// Contains is prefix-aware: it reports true not only for keys holding
// a scalar value but for any key that is a path-boundary prefix of an
// existing deeper key. This is how object and array subtrees are
// detected as present in backends that have no native nesting.
//
// Combining composes sources with first-match-wins precedence and is
// itself a Source. All sources are read-only after construction and
// safe for concurrent reads; Combining additionally allows appending
// children via Add/AddAll, which must complete before any read begins.
package source
