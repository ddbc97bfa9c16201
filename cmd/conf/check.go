package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-conf"
	"github.com/signadot/go-conf/source"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: check takes no arguments", cli.ErrUsage)
	}
	srcs, err := conf.DiscoverSources(cfg.dir(), cfg.base(), cfg.Profiles)
	if err != nil {
		colors := cfg.colors(cc)
		var srcErrs source.Errors
		if errors.As(err, &srcErrs) {
			for i, e := range srcErrs {
				fmt.Fprintf(cc.Out, "%d. %s\n", i+1, colors.Err("%s", e.Error()))
			}
		} else {
			fmt.Fprintln(cc.Out, colors.Err("%s", err.Error()))
		}
		return cli.ExitCodeErr(1)
	}
	if len(srcs) == 0 {
		fmt.Fprintf(cc.Out, "no configuration files under %s\n", cfg.dir())
		return nil
	}
	for _, src := range srcs {
		fmt.Fprintf(cc.Out, "%s: ok\n", src.Description())
	}
	return nil
}
