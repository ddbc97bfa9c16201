// Package schema describes how to produce typed values out of a
// source.Source, and validates the whole description at once.
//
// A schema is a tree of nodes built from a closed set of forms:
//
//   - scalars: String, Bool, Int, Float, Duration, Time, URL, Addr,
//     Enum, and the generic Scalar for custom parsers
//   - Optional and Default, which succeed immediately when the key
//     is absent instead of producing a spurious child error
//   - At, which projects a child under a fixed base key
//   - List, whose length is inferred by probing key[0], key[1], ...
//   - Object, which loads named fields independently and applies a
//     factory to the collected values
//
// Loading never stops at the first failure: every error anywhere in
// the tree is collected, with its originating source and key, and the
// aggregate is returned as a source.Errors. A failing subtree yields
// errors only (no partial value), but sibling subtrees still run and
// contribute their own errors. Emitted error and list-element order
// always follows declared/index order.
//
// Trees are built once, are immutable afterwards, carry no per-load
// state, and may be shared across concurrent loads. Wiring mistakes —
// a duplicate Object field name, reusing a node under two parents —
// panic at construction time; they are programming errors, distinct
// from the data-validation errors a load returns.
package schema
