package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/go-conf/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments, configuration files", cli.ErrUsage)
	}
	from, err := fileListing(args[0])
	if err != nil {
		fmt.Fprintln(cc.Out, err)
		return cli.ExitCodeErr(1)
	}
	to, err := fileListing(args[1])
	if err != nil {
		fmt.Fprintln(cc.Out, err)
		return cli.ExitCodeErr(1)
	}
	colors := cfg.colors(cc)
	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(fromRunes, toRunes, false), lines)
	changed := false
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				changed = true
				fmt.Fprintln(cc.Out, colors.Err("- %s", line))
			case diffpatch.DiffInsert:
				changed = true
				fmt.Fprintln(cc.Out, colors.Value("+ %s", line))
			case diffpatch.DiffEqual:
				fmt.Fprintf(cc.Out, "  %s\n", line)
			}
		}
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// fileListing flattens one configuration file into sorted
// "key = value" lines so the diff tracks keys, not text layout.
func fileListing(path string) (string, error) {
	data, err := parse.File(path)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, k := range data.Keys() {
		v, ok := data.Get(k)
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%s = %s\n", k, v)
	}
	return sb.String(), nil
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
