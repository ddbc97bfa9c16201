package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-conf"
)

func files(cfg *FilesConfig, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: files takes no arguments", cli.ErrUsage)
	}
	paths := conf.DiscoverFiles(cfg.dir(), cfg.base(), cfg.Profiles)
	if len(paths) == 0 {
		fmt.Fprintf(cc.Out, "no configuration files under %s\n", cfg.dir())
		return nil
	}
	for _, p := range paths {
		fmt.Fprintln(cc.Out, p)
	}
	return nil
}
