package main

import (
	"io"
	"os"

	libconfig "github.com/libconfig/go-libconfig"
	"github.com/libconfig/go-libconfig/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='force color output'"`
	Include string `cli:"name=I aliases=include desc='include directory for @include resolution'"`

	Main *cli.Command
}

func (cfg *MainConfig) load(path string) (*libconfig.Config, error) {
	c := libconfig.New()
	if cfg.Include != "" {
		c.SetIncludeDir(cfg.Include)
	}
	if err := c.ReadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	var res []encode.Option
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Every string `cli:"name=every desc='poll interval, e.g. 2s' default=2s"`
	Limit int    `cli:"name=n desc='stop after this many polls (0 = forever)'"`

	Watch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='expression over the configuration values'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='RFC 6902 patch file (JSON)'"`

	Patch *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Format string `cli:"name=O aliases=ofmt desc='output format: json or yaml' default=json"`

	Export *cli.Command
}
