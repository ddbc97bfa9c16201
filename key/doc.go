// Package key provides the path type used to address values in a
// conceptual nested configuration tree.
//
// A Key is an immutable, non-empty ordered sequence of segments. Each
// segment is either a field name (a non-empty string that does not
// contain '.') or a non-negative array index.
//
// # Canonical form
//
// Field segments are joined by '.', index segments are rendered as
// "[n]" immediately following the preceding segment:
//
//   - ["a", "b"]    → "a.b"
//   - ["a", 0, "b"] → "a[0].b"
//
// Parse is the inverse of String for canonical forms.
//
// Keys are value types: equality is structural (Equal), and String()
// can be used where a comparable representation is needed, such as a
// map key.
package key
