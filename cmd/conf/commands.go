package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "p",
		Aliases:     []string{"profile"},
		Description: "activate a configuration profile (repeatable)",
		Type:        cli.NamedFuncOpt(cfg.profileOpt, "(name)"),
	})

	return cli.NewCommandAt(&cfg.Main, "conf").
		WithSynopsis("conf [opts] command [opts]").
		WithDescription("conf is a tool for inspecting layered configuration.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return confMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ViewCommand(cfg),
			FilesCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg))
}

func (cfg *MainConfig) profileOpt(cc *cli.Context, a string) (any, error) {
	if a == "" {
		return nil, fmt.Errorf("%w: empty profile name", cli.ErrUsage)
	}
	cfg.Profiles = append(cfg.Profiles, a)
	return a, nil
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <key> [-- flags]").
		WithDescription("resolve one key against the combined configuration").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-merge]").
		WithDescription("show the resolved configuration files with value origins").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FilesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Files, "files").
		WithAliases("f").
		WithSynopsis("files").
		WithDescription("show configuration file discovery order").
		WithRun(func(cc *cli.Context, args []string) error {
			return files(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff <file> <file>").
		WithDescription("diff two configuration files by resolved keys").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check").
		WithDescription("parse all discovered configuration files and report errors").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}
