package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/signadot/go-conf/debug"
	"github.com/signadot/go-conf/format"
	"github.com/signadot/go-conf/parse"
	"github.com/signadot/go-conf/source"
)

// DiscoverFiles probes for configuration files under dir and returns
// the existing ones in precedence order: for each active profile (in
// sorted order) <base>.<profile>.<ext>, then <base>.<ext>, extension
// order json, yaml, yml. The most specific file comes first; callers
// feeding a Combining source preserve this as file precedence.
func DiscoverFiles(dir, base string, profiles []string) []string {
	variants := append([]string(nil), profiles...)
	sort.Strings(variants)

	var res []string
	probe := func(name string) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return
		}
		if debug.Files() {
			debug.Logf("discovered %s\n", path)
		}
		res = append(res, path)
	}
	for _, v := range variants {
		for _, ext := range format.Extensions() {
			probe(fmt.Sprintf("%s.%s.%s", base, v, ext))
		}
	}
	for _, ext := range format.Extensions() {
		probe(fmt.Sprintf("%s.%s", base, ext))
	}
	return res
}

// DiscoverSources parses every discovered file into a Data source,
// keeping probe order. Parse failures do not stop other files from
// loading; all failures come back together.
func DiscoverSources(dir, base string, profiles []string) ([]source.Source, error) {
	var (
		srcs []source.Source
		errs source.Errors
	)
	for _, path := range DiscoverFiles(dir, base, profiles) {
		d, err := parse.File(path)
		if err != nil {
			errs = appendErr(errs, err)
			continue
		}
		srcs = append(srcs, d)
	}
	if len(errs) > 0 {
		return srcs, errs
	}
	return srcs, nil
}
