package main

import (
	"fmt"
	"sort"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-conf"
	"github.com/signadot/go-conf/encode"
	"github.com/signadot/go-conf/source"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: view takes no arguments", cli.ErrUsage)
	}
	srcs, err := conf.DiscoverSources(cfg.dir(), cfg.base(), cfg.Profiles)
	if err != nil {
		fmt.Fprintln(cc.Out, err)
		return cli.ExitCodeErr(1)
	}
	if len(srcs) == 0 {
		fmt.Fprintf(cc.Out, "no configuration files under %s\n", cfg.dir())
		return nil
	}
	if cfg.Merge {
		return viewMerged(cfg, cc, srcs)
	}
	return viewListing(cfg, cc, srcs)
}

// viewMerged folds the discovered files into one document, lowest
// precedence first so later files overlay earlier ones.
func viewMerged(cfg *ViewConfig, cc *cli.Context, srcs []source.Source) error {
	merged := srcs[len(srcs)-1].(*source.Data)
	for i := len(srcs) - 2; i >= 0; i-- {
		var err error
		merged, err = source.MergeData(merged, srcs[i].(*source.Data))
		if err != nil {
			return err
		}
	}
	return encode.Tree(cc.Out, merged.Root(), cfg.outFormat())
}

func viewListing(cfg *ViewConfig, cc *cli.Context, srcs []source.Source) error {
	seen := map[string]bool{}
	var entries []encode.Entry
	for _, src := range srcs {
		for _, k := range src.(*source.Data).Keys() {
			if seen[k.String()] {
				continue
			}
			seen[k.String()] = true
			for _, winner := range srcs {
				v, ok := winner.Get(k)
				if !ok {
					continue
				}
				entries = append(entries, encode.Entry{
					Key:    k,
					Value:  v,
					Origin: winner.Description(),
				})
				break
			}
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key.String() < entries[j].Key.String()
	})
	return encode.Listing(cc.Out, entries, encode.ListingColors(cfg.colors(cc)))
}
