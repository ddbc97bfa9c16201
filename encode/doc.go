// Package encode renders resolved configuration for humans and for
// machines: whole data trees as JSON or YAML, and flattened
// key/value/origin listings, optionally colorized for terminals.
package encode
