package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/go-conf/key"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key", cli.ErrUsage)
	}
	k, err := key.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	src, err := cfg.buildSource(args[1:])
	if err != nil {
		fmt.Fprintln(cc.Out, err)
		return cli.ExitCodeErr(1)
	}
	v, ok := src.Get(k)
	if !ok {
		if src.Contains(k) {
			fmt.Fprintf(cc.Out, "%s holds a subtree, not a value\n", k)
			return nil
		}
		fmt.Fprintf(cc.Out, "%s is not set\n", k)
		return cli.ExitCodeErr(1)
	}
	colors := cfg.colors(cc)
	fmt.Fprintf(cc.Out, "%s  %s\n",
		colors.Value("%s", v),
		colors.Origin("# %s", src.Describe(k)))
	return nil
}
