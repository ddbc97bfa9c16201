package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/go-conf"
	"github.com/signadot/go-conf/encode"
	"github.com/signadot/go-conf/format"
	"github.com/signadot/go-conf/source"
)

type MainConfig struct {
	Dir   string `cli:"name=d aliases=dir desc='configuration directory (default .)'"`
	Base  string `cli:"name=b aliases=base desc='configuration file base name (default config)'"`
	J     bool   `cli:"name=j aliases=json desc='output in json'"`
	Y     bool   `cli:"name=y aliases=yaml desc='output in yaml'"`
	Color bool   `cli:"name=color desc='colorize output'"`
	NoEnv bool   `cli:"name=no-env desc='exclude the process environment'"`

	Profiles []string

	Main *cli.Command
}

func (cfg *MainConfig) dir() string {
	if cfg.Dir == "" {
		return "."
	}
	return cfg.Dir
}

func (cfg *MainConfig) base() string {
	if cfg.Base == "" {
		return "config"
	}
	return cfg.Base
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.J {
		return format.JSONFormat
	}
	return format.YAMLFormat
}

// buildSource assembles the combined source the way an application
// embedding the library would: flags passed after the subcommand,
// then the process environment, then discovered files.
func (cfg *MainConfig) buildSource(args []string) (*source.Combining, error) {
	opts := []conf.Option{
		conf.WithArgs(args),
		conf.WithDir(cfg.dir()),
		conf.WithBase(cfg.base()),
		conf.WithProfiles(cfg.Profiles...),
	}
	if !cfg.NoEnv {
		opts = append(opts, conf.WithEnviron(os.Environ()))
	}
	return conf.New(opts...)
}

func (cfg *MainConfig) colors(cc *cli.Context) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return encode.NoColors()
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return encode.NoColors()
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return encode.NoColors()
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ViewConfig struct {
	*MainConfig

	Merge bool `cli:"name=merge desc='render one deep-merged document'"`
	View  *cli.Command
}

type FilesConfig struct {
	*MainConfig

	Files *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
