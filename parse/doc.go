// Package parse turns configuration file bytes into the nested
// map/list/scalar trees that source.Data reads from.
//
// Supported formats are JSON and YAML (see the format package). A
// parse failure or a non-object top level is reported as a structured
// error naming the originating file, through the same error channel
// the schema layer uses.
package parse
