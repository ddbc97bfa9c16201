// Package format names the configuration file formats go-conf reads
// and writes: JSON and YAML (with its .yml alias).
//
// # Related Packages
//
//   - github.com/signadot/go-conf/parse - parse file bytes to data trees
//   - github.com/signadot/go-conf/encode - encode data trees to text
package format
